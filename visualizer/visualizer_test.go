package visualizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clearsign-labs/clearsign/fields"
	"github.com/clearsign-labs/clearsign/pkg/logger"
)

// fakeVisualizer claims elements per canHandle and renders a fixed text
// field, or declines with nil when out is empty.
type fakeVisualizer struct {
	canHandle bool
	out       string
	handled   int
	visited   int
}

func (f *fakeVisualizer) CanHandle(_ *Call) bool {
	f.handled++

	return f.canHandle
}

func (f *fakeVisualizer) Visualize(_ *Context) fields.Field {
	f.visited++
	if f.out == "" {
		return nil
	}

	return fields.NewText("Result", f.out)
}

func singleCallContext(data []byte) *Context {
	return &Context{
		Calls: []Call{{ChainID: 1, To: "0x1111111111111111111111111111111111111111", Data: data}},
	}
}

func TestVisualizeWithAny(t *testing.T) {
	t.Parallel()

	t.Run("first claiming visualizer wins", func(t *testing.T) {
		t.Parallel()

		skipped := &fakeVisualizer{canHandle: false, out: "skipped"}
		winner := &fakeVisualizer{canHandle: true, out: "winner"}
		shadowed := &fakeVisualizer{canHandle: true, out: "shadowed"}

		out := VisualizeWithAny([]Visualizer{skipped, winner, shadowed}, singleCallContext([]byte{0x01}))
		require.NotNil(t, out)
		assert.Equal(t, "winner", out.GetFallbackText())
		assert.Zero(t, skipped.visited)
		assert.Zero(t, shadowed.visited)
	})

	t.Run("claim but decline continues the chain", func(t *testing.T) {
		t.Parallel()

		decliner := &fakeVisualizer{canHandle: true}
		winner := &fakeVisualizer{canHandle: true, out: "winner"}

		out := VisualizeWithAny([]Visualizer{decliner, winner}, singleCallContext([]byte{0x01}))
		require.NotNil(t, out)
		assert.Equal(t, "winner", out.GetFallbackText())
		assert.Equal(t, 1, decliner.visited)
	})

	t.Run("all decline yields nil", func(t *testing.T) {
		t.Parallel()

		out := VisualizeWithAny([]Visualizer{
			&fakeVisualizer{canHandle: false},
			&fakeVisualizer{canHandle: true},
		}, singleCallContext([]byte{0x01}))
		assert.Nil(t, out)
	})

	t.Run("index out of range yields nil", func(t *testing.T) {
		t.Parallel()

		ctx := &Context{Index: 5, Calls: []Call{{}}}
		assert.Nil(t, VisualizeWithAny([]Visualizer{&fakeVisualizer{canHandle: true, out: "x"}}, ctx))
	})
}

func TestChain_Visualize(t *testing.T) {
	t.Parallel()

	t.Run("registration order is priority", func(t *testing.T) {
		t.Parallel()

		chain := NewChain(logger.Test(t))
		chain.Register(&fakeVisualizer{canHandle: true, out: "first"})
		chain.Register(&fakeVisualizer{canHandle: true, out: "second"})

		out := chain.Visualize(singleCallContext([]byte{0x01}))
		assert.Equal(t, "first", out.GetFallbackText())
	})

	t.Run("falls back to raw hex", func(t *testing.T) {
		t.Parallel()

		chain := NewChain(logger.Test(t))
		chain.Register(&fakeVisualizer{canHandle: false})

		out := chain.Visualize(singleCallContext([]byte{0x12, 0x34, 0x56, 0x78, 0xab, 0xcd, 0xef}))
		require.NotNil(t, out)
		assert.Equal(t, "Contract Call Data", out.GetLabel())
		assert.Equal(t, "0x12345678abcdef", out.GetFallbackText())
	})

	t.Run("empty data falls back to 0x", func(t *testing.T) {
		t.Parallel()

		chain := NewChain(logger.Test(t))

		out := chain.Visualize(singleCallContext(nil))
		require.NotNil(t, out)
		assert.Equal(t, "0x", out.GetFallbackText())
	})
}

func TestFallback(t *testing.T) {
	t.Parallel()

	out := Fallback([]byte{0x12, 0x34, 0x56, 0x78, 0xab, 0xcd, 0xef})
	assert.Equal(t, "Contract Call Data", out.GetLabel())
	assert.Equal(t, "Contract Call Data: 0x12345678abcdef", out.Describe(nil))

	empty := Fallback(nil)
	assert.Equal(t, "Contract Call Data: 0x", empty.Describe(nil))
}
