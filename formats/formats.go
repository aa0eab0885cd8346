// Package formats exposes the selector table compiled ahead of time from
// the repository's descriptor set under descriptors/. The table is static
// data: lookups are O(1) hashing with no parsing at runtime, and any number
// of concurrent readers may share it.
package formats

import "github.com/clearsign-labs/clearsign/descriptor"

//go:generate go run ../tools/descriptor-gen --dir ../descriptors --out formats_gen.go --pkg formats

// Lookup returns the candidate formats for a normalized selector, or nil
// when the selector is unknown. It never fails.
func Lookup(selector string) []*descriptor.Format {
	return selectorTable.Lookup(selector)
}

// Table returns the compiled selector table for injection into the decode
// engine.
func Table() descriptor.SelectorTable {
	return selectorTable
}
