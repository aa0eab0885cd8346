// Package erc20 is a hand-written visualizer for ERC-20 token calls. It
// sits ahead of the declarative engine in the dispatch chain and renders
// the common mutating calls as preview fields.
package erc20

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	"github.com/clearsign-labs/clearsign/descriptor"
	"github.com/clearsign-labs/clearsign/fields"
	"github.com/clearsign-labs/clearsign/registry"
	"github.com/clearsign-labs/clearsign/visualizer"
)

var (
	addressType = mustType("address")
	uint256Type = mustType("uint256")

	transferArgs = abi.Arguments{
		{Name: "to", Type: addressType},
		{Name: "amount", Type: uint256Type},
	}
	transferFromArgs = abi.Arguments{
		{Name: "from", Type: addressType},
		{Name: "to", Type: addressType},
		{Name: "amount", Type: uint256Type},
	}
	approveArgs = abi.Arguments{
		{Name: "spender", Type: addressType},
		{Name: "amount", Type: uint256Type},
	}

	transferSelector     = mustSelector("transfer(address,uint256)")
	transferFromSelector = mustSelector("transferFrom(address,address,uint256)")
	approveSelector      = mustSelector("approve(address,uint256)")
)

// Visualizer decodes ERC-20 transfer, transferFrom and approve calls.
// With a registry it only claims calls to addresses tagged ERC20Token;
// without one it matches on selector alone.
type Visualizer struct {
	registry *registry.ContractTypeRegistry
}

var _ visualizer.Visualizer = (*Visualizer)(nil)

func New(reg *registry.ContractTypeRegistry) *Visualizer {
	return &Visualizer{registry: reg}
}

func (v *Visualizer) CanHandle(call *visualizer.Call) bool {
	selector, ok := descriptor.SelectorFromCalldata(call.Data)
	if !ok {
		return false
	}
	if v.registry != nil && !v.registry.Is(call.ChainID, call.To, registry.ERC20Token) {
		return false
	}
	switch selector {
	case transferSelector, transferFromSelector, approveSelector:
		return true
	}

	return false
}

func (v *Visualizer) Visualize(ctx *visualizer.Context) fields.Field {
	call := ctx.Call()
	selector, ok := descriptor.SelectorFromCalldata(call.Data)
	if !ok {
		return nil
	}
	argData := call.Data[descriptor.SelectorLength:]

	switch selector {
	case transferSelector:
		vals, err := transferArgs.Unpack(argData)
		if err != nil {
			return nil
		}
		to, amount := vals[0].(common.Address), vals[1].(*big.Int)

		return preview("ERC20 Transfer",
			fmt.Sprintf("Transfer %s tokens to %s", amount, to.Hex()),
			fields.NewAddress("Recipient", to.Hex()),
			fields.NewAmount("Amount", amount.String()),
		)
	case transferFromSelector:
		vals, err := transferFromArgs.Unpack(argData)
		if err != nil {
			return nil
		}
		from, to, amount := vals[0].(common.Address), vals[1].(common.Address), vals[2].(*big.Int)

		return preview("ERC20 TransferFrom",
			fmt.Sprintf("Transfer %s tokens from %s to %s", amount, from.Hex(), to.Hex()),
			fields.NewAddress("Sender", from.Hex()),
			fields.NewAddress("Recipient", to.Hex()),
			fields.NewAmount("Amount", amount.String()),
		)
	case approveSelector:
		vals, err := approveArgs.Unpack(argData)
		if err != nil {
			return nil
		}
		spender, amount := vals[0].(common.Address), vals[1].(*big.Int)

		return preview("ERC20 Approve",
			fmt.Sprintf("Approve %s to spend %s tokens", spender.Hex(), amount),
			fields.NewAddress("Spender", spender.Hex()),
			fields.NewAmount("Amount", amount.String()),
		)
	}

	return nil
}

func preview(label, subtitle string, details ...fields.Field) fields.Field {
	expanded := fields.NewList("Details", subtitle, details...)

	return fields.NewPreview(label, subtitle, nil, &expanded)
}

func mustType(t string) abi.Type {
	typ, err := abi.NewType(t, "", nil)
	if err != nil {
		panic(err)
	}

	return typ
}

func mustSelector(sig string) string {
	selector, ok := descriptor.NormalizeSelector(sig)
	if !ok {
		panic("invalid signature: " + sig)
	}

	return selector
}
