package uniswap

import (
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/clearsign-labs/clearsign/descriptor"
	"github.com/clearsign-labs/clearsign/fields"
	"github.com/clearsign-labs/clearsign/registry"
	"github.com/clearsign-labs/clearsign/visualizer"
)

// The router overloads execute: with a deadline for time-bound execution
// and without one.
var (
	executeSelector = mustSelector("execute(bytes,bytes[],uint256)")
	executeArgs     = mustArguments(
		abi.ArgumentMarshaling{Name: "commands", Type: "bytes"},
		abi.ArgumentMarshaling{Name: "inputs", Type: "bytes[]"},
		abi.ArgumentMarshaling{Name: "deadline", Type: "uint256"},
	)

	executeNoDeadlineSelector = mustSelector("execute(bytes,bytes[])")
	executeNoDeadlineArgs     = mustArguments(
		abi.ArgumentMarshaling{Name: "commands", Type: "bytes"},
		abi.ArgumentMarshaling{Name: "inputs", Type: "bytes[]"},
	)
)

// RouterVisualizer decodes Universal Router execute calls, expanding each
// packed command byte into a named, parameter-decoded step. It only claims
// calls whose target is registered as a UniswapUniversalRouter deployment,
// so an unrelated contract reusing the execute selector falls through to
// the rest of the chain. A nil registry claims nothing.
type RouterVisualizer struct {
	registry *registry.ContractTypeRegistry
}

var _ visualizer.Visualizer = (*RouterVisualizer)(nil)

func NewRouterVisualizer(reg *registry.ContractTypeRegistry) *RouterVisualizer {
	return &RouterVisualizer{registry: reg}
}

func (v *RouterVisualizer) CanHandle(call *visualizer.Call) bool {
	selector, ok := descriptor.SelectorFromCalldata(call.Data)
	if !ok || (selector != executeSelector && selector != executeNoDeadlineSelector) {
		return false
	}
	if v.registry == nil {
		return false
	}

	return v.registry.Is(call.ChainID, call.To, registry.UniswapUniversalRouter)
}

func (v *RouterVisualizer) Visualize(ctx *visualizer.Context) fields.Field {
	call := ctx.Call()
	selector, ok := descriptor.SelectorFromCalldata(call.Data)
	if !ok {
		return nil
	}
	argData := call.Data[descriptor.SelectorLength:]

	var commands []byte
	var inputs [][]byte
	var deadline *big.Int
	switch selector {
	case executeSelector:
		vals, err := executeArgs.Unpack(argData)
		if err != nil {
			return nil
		}
		commands, inputs, deadline = vals[0].([]byte), vals[1].([][]byte), vals[2].(*big.Int)
	case executeNoDeadlineSelector:
		vals, err := executeNoDeadlineArgs.Unpack(argData)
		if err != nil {
			return nil
		}
		commands, inputs = vals[0].([]byte), vals[1].([][]byte)
	default:
		return nil
	}

	details := []fields.Field{
		fields.NewText("Commands", hexutil.Encode(commands)),
	}
	details = append(details, describeCommands(commands, inputs)...)
	if deadline != nil {
		details = append(details, fields.NewText("Deadline", formatDeadline(deadline)))
	}

	subtitle := fmt.Sprintf("Execute %d router command(s)", len(commands))
	expanded := fields.NewList("Details", subtitle, details...)

	return fields.NewPreview("Uniswap Universal Router", subtitle, nil, &expanded)
}

// formatDeadline renders a unix deadline as UTC time when it fits the
// range, otherwise as its decimal value.
func formatDeadline(deadline *big.Int) string {
	if deadline.IsInt64() {
		return time.Unix(deadline.Int64(), 0).UTC().Format(time.RFC3339)
	}

	return deadline.String()
}

func mustSelector(sig string) string {
	selector, ok := descriptor.NormalizeSelector(sig)
	if !ok {
		panic("invalid signature: " + sig)
	}

	return selector
}

func mustArguments(params ...abi.ArgumentMarshaling) abi.Arguments {
	args := make(abi.Arguments, 0, len(params))
	for _, p := range params {
		typ, err := abi.NewType(p.Type, "", p.Components)
		if err != nil {
			panic(err)
		}
		args = append(args, abi.Argument{Name: p.Name, Type: typ})
	}

	return args
}
