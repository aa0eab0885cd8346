package visualizer

import (
	"fmt"

	"github.com/clearsign-labs/clearsign/decoder"
	"github.com/clearsign-labs/clearsign/descriptor"
	"github.com/clearsign-labs/clearsign/fields"
)

// Declarative adapts the descriptor decode engine into the dispatch chain.
// It claims any selector-shaped element; the engine decides whether a
// declarative match actually exists.
type Declarative struct {
	engine *decoder.Engine
}

var _ Visualizer = (*Declarative)(nil)

func NewDeclarative(engine *decoder.Engine) *Declarative {
	return &Declarative{engine: engine}
}

func (d *Declarative) CanHandle(call *Call) bool {
	return len(call.Data) >= descriptor.SelectorLength
}

func (d *Declarative) Visualize(ctx *Context) fields.Field {
	decoded := d.engine.DecodeCalldata(ctx.Call().Data)
	if len(decoded) == 0 {
		return nil
	}
	list := fields.NewList("Decoded Input", fmt.Sprintf("Decoded %d field(s)", len(decoded)), decoded...)

	return list
}
