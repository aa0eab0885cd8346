package formats

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clearsign-labs/clearsign/descriptor"
)

func TestLookup(t *testing.T) {
	t.Parallel()

	t.Run("erc20 transfer", func(t *testing.T) {
		t.Parallel()

		candidates := Lookup("0xa9059cbb")
		require.Len(t, candidates, 1)
		assert.Equal(t, "erc20-transfer", candidates[0].ID)
		require.Len(t, candidates[0].Fields, 2)
		assert.Equal(t, "Recipient", candidates[0].Fields[0].Label)
		assert.Equal(t, "Amount", candidates[0].Fields[1].Label)
	})

	t.Run("uniswap exact input single", func(t *testing.T) {
		t.Parallel()

		candidates := Lookup("0x04e45aaf")
		require.Len(t, candidates, 1)
		assert.Equal(t, "uniswap-v3-exact-input-single", candidates[0].ID)
	})

	t.Run("unknown selector", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, Lookup("0xdeadbeef"))
	})
}

// The checked-in artifact must stay in sync with the descriptor files it
// was generated from.
func TestGeneratedTableMatchesDescriptors(t *testing.T) {
	t.Parallel()

	loaded, err := descriptor.LoadTable(os.DirFS("../descriptors"))
	require.NoError(t, err)
	require.Equal(t, Table().Selectors(), loaded.Selectors())

	for selector, formats := range Table() {
		fromDisk := loaded.Lookup(selector)
		require.Len(t, fromDisk, len(formats), "selector %s", selector)
		for i, format := range formats {
			assert.Equal(t, fromDisk[i].ID, format.ID)
			assert.Equal(t, fromDisk[i].Selector, format.Selector)
			assert.Equal(t, fromDisk[i].Fields, format.Fields)
		}
	}
}
