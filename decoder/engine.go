// Package decoder matches raw calldata against the compiled descriptor
// table and projects ABI-decoded argument values into labeled display
// fields. It is one visualizer among several in the dispatch chain and is
// independent of any hand-written protocol decoder.
package decoder

import (
	"github.com/clearsign-labs/clearsign/descriptor"
	"github.com/clearsign-labs/clearsign/fields"
	"github.com/clearsign-labs/clearsign/pkg/logger"
)

// ArgumentResolver decodes raw argument bytes into a path-addressable value
// tree for a given selector. It is a collaborator of the engine, typically
// backed by an ABI database; see ABIResolver.
//
// The candidate format is passed through so resolvers may vary the assumed
// argument layout per format; selector-keyed resolvers can ignore it.
type ArgumentResolver interface {
	Resolve(selector string, format *descriptor.Format, argData []byte) (map[string]any, error)
}

// Engine decodes selector-addressed calldata using an immutable selector
// table. It holds no mutable state; concurrent use is safe.
type Engine struct {
	table    descriptor.SelectorTable
	resolver ArgumentResolver
	lggr     logger.Logger
}

func New(table descriptor.SelectorTable, resolver ArgumentResolver, lggr logger.Logger) *Engine {
	return &Engine{
		table:    table,
		resolver: resolver,
		lggr:     lggr.Named("decoder"),
	}
}

// DecodeCalldata projects calldata into labeled fields. It returns nil when
// no declarative match exists: short input, unknown selector, or every
// candidate format failing. The caller decides whether to fall back.
//
// Candidate formats are tried in table order. A format whose argument
// decode fails is skipped; a format that decodes but resolves none of its
// field paths is skipped; the first format yielding at least one resolved
// field wins and its fields become the output. An individual unresolvable
// path only drops that field, not the format.
func (e *Engine) DecodeCalldata(data []byte) []fields.Field {
	selector, ok := descriptor.SelectorFromCalldata(data)
	if !ok {
		return nil
	}
	formats := e.table.Lookup(selector)
	if len(formats) == 0 {
		return nil
	}
	argData := data[descriptor.SelectorLength:]

	for _, format := range formats {
		tree, err := e.resolver.Resolve(selector, format, argData)
		if err != nil {
			e.lggr.Debugw("argument decode failed, trying next format",
				"selector", selector, "format", format.ID, "err", err)

			continue
		}
		out := make([]fields.Field, 0, len(format.Fields))
		for _, spec := range format.Fields {
			value, found := project(tree, spec.Path)
			if !found {
				e.lggr.Debugw("field path did not resolve, dropping field",
					"selector", selector, "format", format.ID, "path", spec.Path)

				continue
			}
			out = append(out, renderValue(spec, value))
		}
		if len(out) > 0 {
			return out
		}
	}

	return nil
}
