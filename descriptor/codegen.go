package descriptor

import (
	"fmt"
	"go/format"
	"sort"
	"strconv"
	"strings"
)

// Generate emits a standalone Go source file holding the compiled selector
// table as static data: one field slice and Format per entry, one grouping
// per selector, and a top-level map. The output contains no residual JSON
// parsing and is byte-for-byte deterministic for a given entry list.
func Generate(pkg string, entries []Entry) ([]byte, error) {
	var b strings.Builder
	b.WriteString("// Code generated by descriptor-gen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&b, "package %s\n\n", pkg)
	b.WriteString("import \"github.com/clearsign-labs/clearsign/descriptor\"\n\n")

	selectors := make(map[string][]int)
	for i, e := range entries {
		fmt.Fprintf(&b, "var fields%d = []descriptor.FieldSpec{\n", i)
		for _, f := range e.Fields {
			fmt.Fprintf(&b, "\t{Label: %s, Path: %s, Format: %s},\n",
				strconv.Quote(f.Label), strconv.Quote(f.Path), strconv.Quote(f.Format))
		}
		b.WriteString("}\n\n")
		fmt.Fprintf(&b, "var format%d = descriptor.Format{ID: %s, Selector: %s, Source: %s, Fields: fields%d}\n\n",
			i, strconv.Quote(e.FormatID), strconv.Quote(e.Selector), strconv.Quote(e.Source), i)
		selectors[e.Selector] = append(selectors[e.Selector], i)
	}

	keys := make([]string, 0, len(selectors))
	for sel := range selectors {
		keys = append(keys, sel)
	}
	sort.Strings(keys)

	b.WriteString("var selectorTable = descriptor.SelectorTable{\n")
	for _, sel := range keys {
		refs := make([]string, len(selectors[sel]))
		for j, i := range selectors[sel] {
			refs[j] = fmt.Sprintf("&format%d", i)
		}
		fmt.Fprintf(&b, "\t%s: {%s},\n", strconv.Quote(sel), strings.Join(refs, ", "))
	}
	b.WriteString("}\n")

	src, err := format.Source([]byte(b.String()))
	if err != nil {
		return nil, fmt.Errorf("generated source does not compile: %w", err)
	}

	return src, nil
}
