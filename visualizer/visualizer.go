// Package visualizer dispatches transaction elements across an ordered
// chain of decoders: hand-written protocol visualizers first, then the
// declarative descriptor engine, then nothing — callers apply the raw-hex
// Fallback when the whole chain declines.
package visualizer

import (
	"math/big"

	"github.com/clearsign-labs/clearsign/fields"
	"github.com/clearsign-labs/clearsign/pkg/logger"
)

// Call is one transaction element: a contract call, instruction, or
// command addressed to a target on a chain.
type Call struct {
	ChainID uint64
	To      string
	Value   *big.Int
	Data    []byte
}

// Context is the element under inspection plus its surroundings. Some
// protocols reference earlier elements (e.g. the amount produced by a
// prior split step), so the full call list and inputs travel along.
type Context struct {
	Sender string
	Index  int
	Calls  []Call
	Inputs []any
}

// Call returns the element under inspection, or nil when Index is out of
// range.
func (c *Context) Call() *Call {
	if c == nil || c.Index < 0 || c.Index >= len(c.Calls) {
		return nil
	}

	return &c.Calls[c.Index]
}

// Visualizer is a decoder capable of claiming and rendering one
// transaction element. CanHandle is a cheap applicability check;
// Visualize may still decline by returning nil (e.g. an unsupported
// sub-case), in which case the dispatch chain moves on.
//
// Implementations are stateless or hold only immutable configuration.
type Visualizer interface {
	CanHandle(call *Call) bool
	Visualize(ctx *Context) fields.Field
}

// VisualizeWithAny tries visualizers in the given priority order and
// returns the first produced field, or nil when none produces output.
func VisualizeWithAny(visualizers []Visualizer, ctx *Context) fields.Field {
	call := ctx.Call()
	if call == nil {
		return nil
	}
	for _, v := range visualizers {
		if !v.CanHandle(call) {
			continue
		}
		if out := v.Visualize(ctx); out != nil {
			return out
		}
	}

	return nil
}

// Chain holds the process-wide visualizer list. Registration order is
// dispatch priority; register everything at initialization, then treat the
// chain as read-only.
type Chain struct {
	lggr        logger.Logger
	visualizers []Visualizer
}

func NewChain(lggr logger.Logger) *Chain {
	return &Chain{lggr: lggr.Named("visualizer")}
}

// Register appends a visualizer to the chain.
func (c *Chain) Register(v Visualizer) {
	c.visualizers = append(c.visualizers, v)
}

// Visualize runs the dispatch chain, falling back to the raw-hex rendering
// of the element's data when every visualizer declines. It never returns
// nil for a valid element.
func (c *Chain) Visualize(ctx *Context) fields.Field {
	if out := VisualizeWithAny(c.visualizers, ctx); out != nil {
		return out
	}
	call := ctx.Call()
	if call == nil {
		return Fallback(nil)
	}
	c.lggr.Debugw("no visualizer matched, using fallback", "to", call.To, "dataLen", len(call.Data))

	return Fallback(call.Data)
}
