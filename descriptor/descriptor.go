// Package descriptor turns JSON display-descriptor files into an immutable
// selector-indexed table of display formats.
//
// Descriptors declare, per function selector, which fields of a decoded
// contract call should be shown to a signer and under what label:
//
//	{ "display": { "formats": {
//	    "transfer(address,uint256)": {
//	        "$id": "erc20-transfer",
//	        "fields": [ { "label": "Recipient", "path": "to" } ]
//	    }
//	}}}
//
// The table is built once, either ahead of time by tools/descriptor-gen
// (emitting a generated Go source file) or at process start via LoadTable,
// and is read-only afterward, so any number of concurrent decode calls may
// share it without synchronization.
package descriptor

// FieldSpec is one display rule: which value of the decoded call to show
// and under what label.
type FieldSpec struct {
	// Label is the display string shown to the signer.
	Label string
	// Path addresses the decoded argument tree, dot-delimited,
	// e.g. "params.amountIn".
	Path string
	// Format optionally hints the display variant, e.g. "tokenAmount".
	Format string
}

// Format is the compiled form of one descriptor entry. Instances are owned
// by the table and shared read-only for the process lifetime.
type Format struct {
	// ID is the descriptor's $id, used for diagnostics and dedup.
	ID string
	// Selector is the normalized 4-byte selector this format matches.
	Selector string
	// Source is the descriptor file the format came from.
	Source string
	Fields []FieldSpec
}

// Entry is one display rule extracted from a descriptor file, before
// grouping by selector.
type Entry struct {
	Selector string
	FormatID string
	Source   string
	Fields   []FieldSpec
}

// SelectorTable maps normalized selectors to their candidate formats.
// Multiple formats under one selector means independently authored
// descriptors collided; decode time disambiguates (first match wins).
type SelectorTable map[string][]*Format

// Lookup returns the candidate formats for a selector, or nil when the
// selector is unknown. Lookup never fails.
func (t SelectorTable) Lookup(selector string) []*Format {
	return t[selector]
}

// Selectors returns the number of distinct selectors in the table.
func (t SelectorTable) Selectors() int {
	return len(t)
}

// NewTable groups compiled entries by selector, preserving entry order
// within each selector group.
func NewTable(entries []Entry) SelectorTable {
	table := make(SelectorTable)
	for _, e := range entries {
		f := &Format{
			ID:       e.FormatID,
			Selector: e.Selector,
			Source:   e.Source,
			Fields:   e.Fields,
		}
		table[e.Selector] = append(table[e.Selector], f)
	}

	return table
}
