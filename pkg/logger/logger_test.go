package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	t.Parallel()

	lggr, err := New(zapcore.InfoLevel)
	require.NoError(t, err)
	assert.Empty(t, lggr.Name())
}

func TestNamed(t *testing.T) {
	t.Parallel()

	lggr := Test(t)
	named := lggr.Named("decoder")
	assert.Equal(t, "decoder", named.Name())

	nested := named.Named("abi")
	assert.Equal(t, "decoder.abi", nested.Name())
}

func TestNop(t *testing.T) {
	t.Parallel()

	lggr := Nop()
	lggr.Infow("discarded", "key", "value")
	assert.NoError(t, lggr.Sync())
}
