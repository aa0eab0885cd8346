package visualizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clearsign-labs/clearsign/decoder"
	"github.com/clearsign-labs/clearsign/descriptor"
	"github.com/clearsign-labs/clearsign/pkg/logger"
)

type treeResolver struct {
	tree map[string]any
}

func (r *treeResolver) Resolve(_ string, _ *descriptor.Format, _ []byte) (map[string]any, error) {
	return r.tree, nil
}

func TestDeclarative(t *testing.T) {
	t.Parallel()

	format := &descriptor.Format{
		ID:       "erc20-transfer",
		Selector: "0xa9059cbb",
		Fields: []descriptor.FieldSpec{
			{Label: "Recipient", Path: "to", Format: "addressName"},
			{Label: "Amount", Path: "amount", Format: "tokenAmount"},
		},
	}
	table := descriptor.SelectorTable{"0xa9059cbb": {format}}
	resolver := &treeResolver{tree: map[string]any{
		"to":     "0x1111111111111111111111111111111111111111",
		"amount": uint64(500),
	}}
	engine := decoder.New(table, resolver, logger.Test(t))
	viz := NewDeclarative(engine)

	t.Run("declines short data", func(t *testing.T) {
		t.Parallel()

		assert.False(t, viz.CanHandle(&Call{Data: []byte{0xa9, 0x05}}))
	})

	t.Run("claims selector-shaped data", func(t *testing.T) {
		t.Parallel()

		assert.True(t, viz.CanHandle(&Call{Data: []byte{0xa9, 0x05, 0x9c, 0xbb}}))
	})

	t.Run("unknown selector declines at visualize time", func(t *testing.T) {
		t.Parallel()

		ctx := singleCallContext([]byte{0xde, 0xad, 0xbe, 0xef})
		assert.Nil(t, viz.Visualize(ctx))
	})

	t.Run("known selector renders a decoded list", func(t *testing.T) {
		t.Parallel()

		ctx := singleCallContext([]byte{0xa9, 0x05, 0x9c, 0xbb, 0x00})
		out := viz.Visualize(ctx)
		require.NotNil(t, out)
		assert.Equal(t, "List", out.GetType())
		assert.Equal(t, "Decoded Input", out.GetLabel())
		assert.Equal(t, "Decoded 2 field(s)", out.GetFallbackText())
	})
}
