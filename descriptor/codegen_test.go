package descriptor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	t.Parallel()

	entries := []Entry{
		{
			Selector: "0xa9059cbb",
			FormatID: "erc20-transfer",
			Source:   "erc20.json",
			Fields: []FieldSpec{
				{Label: "Recipient", Path: "to", Format: "addressName"},
			},
		},
		{
			Selector: "0x04e45aaf",
			FormatID: "exact-input-single",
			Source:   "router.json",
			Fields: []FieldSpec{
				{Label: "Send", Path: "params.amountIn", Format: "tokenAmount"},
			},
		},
	}

	src, err := Generate("formats", entries)
	require.NoError(t, err)

	want := `// Code generated by descriptor-gen. DO NOT EDIT.

package formats

import "github.com/clearsign-labs/clearsign/descriptor"

var fields0 = []descriptor.FieldSpec{
	{Label: "Recipient", Path: "to", Format: "addressName"},
}

var format0 = descriptor.Format{ID: "erc20-transfer", Selector: "0xa9059cbb", Source: "erc20.json", Fields: fields0}

var fields1 = []descriptor.FieldSpec{
	{Label: "Send", Path: "params.amountIn", Format: "tokenAmount"},
}

var format1 = descriptor.Format{ID: "exact-input-single", Selector: "0x04e45aaf", Source: "router.json", Fields: fields1}

var selectorTable = descriptor.SelectorTable{
	"0x04e45aaf": {&format1},
	"0xa9059cbb": {&format0},
}
`
	assert.Equal(t, want, string(src))
}

func TestGenerate_CollisionSharesSelector(t *testing.T) {
	t.Parallel()

	entries := []Entry{
		{Selector: "0xa9059cbb", FormatID: "first", Source: "a.json"},
		{Selector: "0xa9059cbb", FormatID: "second", Source: "b.json"},
	}

	src, err := Generate("formats", entries)
	require.NoError(t, err)
	assert.Contains(t, string(src), `"0xa9059cbb": {&format0, &format1},`)
}

func TestGenerate_Deterministic(t *testing.T) {
	t.Parallel()

	entries := []Entry{
		{Selector: "0xa9059cbb", FormatID: "transfer", Source: "a.json"},
		{Selector: "0x095ea7b3", FormatID: "approve", Source: "a.json"},
	}

	first, err := Generate("formats", entries)
	require.NoError(t, err)

	for range 10 {
		again, err := Generate("formats", entries)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}
