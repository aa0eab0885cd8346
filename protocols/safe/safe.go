// Package safe is a hand-written visualizer for Safe (Gnosis Safe) proxy
// calls. It renders execTransaction and the owner-management functions as
// preview fields so a signer sees the wrapped action instead of raw bytes.
package safe

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/params"

	"github.com/clearsign-labs/clearsign/descriptor"
	"github.com/clearsign-labs/clearsign/fields"
	"github.com/clearsign-labs/clearsign/registry"
	"github.com/clearsign-labs/clearsign/visualizer"
)

const signatureLength = 65

var (
	addressType = mustType("address")
	uint256Type = mustType("uint256")
	uint8Type   = mustType("uint8")
	bytesType   = mustType("bytes")

	execTransactionArgs = abi.Arguments{
		{Name: "to", Type: addressType},
		{Name: "value", Type: uint256Type},
		{Name: "data", Type: bytesType},
		{Name: "operation", Type: uint8Type},
		{Name: "safeTxGas", Type: uint256Type},
		{Name: "baseGas", Type: uint256Type},
		{Name: "gasPrice", Type: uint256Type},
		{Name: "gasToken", Type: addressType},
		{Name: "refundReceiver", Type: addressType},
		{Name: "signatures", Type: bytesType},
	}
	addOwnerArgs = abi.Arguments{
		{Name: "owner", Type: addressType},
		{Name: "threshold", Type: uint256Type},
	}
	removeOwnerArgs = abi.Arguments{
		{Name: "prevOwner", Type: addressType},
		{Name: "owner", Type: addressType},
		{Name: "threshold", Type: uint256Type},
	}
	swapOwnerArgs = abi.Arguments{
		{Name: "prevOwner", Type: addressType},
		{Name: "oldOwner", Type: addressType},
		{Name: "newOwner", Type: addressType},
	}
	changeThresholdArgs = abi.Arguments{
		{Name: "threshold", Type: uint256Type},
	}

	execTransactionSelector = mustSelector("execTransaction(address,uint256,bytes,uint8,uint256,uint256,uint256,address,address,bytes)")
	addOwnerSelector        = mustSelector("addOwnerWithThreshold(address,uint256)")
	removeOwnerSelector     = mustSelector("removeOwner(address,address,uint256)")
	swapOwnerSelector       = mustSelector("swapOwner(address,address,address)")
	changeThresholdSelector = mustSelector("changeThreshold(uint256)")
)

// Visualizer decodes Safe execTransaction, addOwnerWithThreshold,
// removeOwner, swapOwner and changeThreshold calls. With a registry it only
// claims calls to addresses tagged SafeProxy; without one it matches on
// selector alone.
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
	if v.registry != nil && !v.registry.Is(call.ChainID, call.To, registry.SafeProxy) {
		return false
	}
	switch selector {
	case execTransactionSelector, addOwnerSelector, removeOwnerSelector,
		swapOwnerSelector, changeThresholdSelector:
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
	case execTransactionSelector:
		return visualizeExecTransaction(argData)
	case addOwnerSelector:
		return visualizeAddOwner(argData)
	case removeOwnerSelector:
		return visualizeRemoveOwner(argData)
	case swapOwnerSelector:
		return visualizeSwapOwner(argData)
	case changeThresholdSelector:
		return visualizeChangeThreshold(argData)
	}

	return nil
}

func visualizeExecTransaction(argData []byte) fields.Field {
	vals, err := execTransactionArgs.Unpack(argData)
	if err != nil {
		return nil
	}
	to := vals[0].(common.Address)
	value := vals[1].(*big.Int)
	data := vals[2].([]byte)
	operation := vals[3].(uint8)
	gasToken := vals[7].(common.Address)
	signatures := vals[9].([]byte)

	details := []fields.Field{
		fields.NewAddress("Target", to.Hex()),
	}
	if value.Sign() > 0 {
		amount := fields.NewAmount("Value", formatEther(value))
		amount.Abbreviation = "ETH"
		details = append(details, amount)
	}
	details = append(details, fields.NewText("Operation Type", operationName(operation)))
	if gasToken != (common.Address{}) {
		details = append(details, fields.NewText("Gas Token", gasToken.Hex()))
	}
	if len(signatures) > 0 {
		details = append(details, fields.NewText("Signatures",
			fmt.Sprintf("%d provided", len(signatures)/signatureLength)))
	}
	if len(data) > 0 {
		details = append(details, fields.NewText("Data", fmt.Sprintf("%d bytes", len(data))))
	}

	var subtitle string
	switch {
	case value.Sign() > 0 && len(data) == 0:
		subtitle = fmt.Sprintf("Send %s ETH to %s", formatEther(value), to.Hex())
	case value.Sign() > 0:
		subtitle = fmt.Sprintf("Execute transaction with %s ETH to %s", formatEther(value), to.Hex())
	default:
		subtitle = fmt.Sprintf("Execute transaction to %s", to.Hex())
	}

	return preview("Safe: Execute Transaction", subtitle, details...)
}

func visualizeAddOwner(argData []byte) fields.Field {
	vals, err := addOwnerArgs.Unpack(argData)
	if err != nil {
		return nil
	}
	owner, threshold := vals[0].(common.Address), vals[1].(*big.Int)

	return preview("Safe: Add Owner",
		fmt.Sprintf("Add owner %s with threshold %s", owner.Hex(), threshold),
		fields.NewAddress("New Owner", owner.Hex()),
		fields.NewNumber("New Threshold", threshold.String()),
	)
}

func visualizeRemoveOwner(argData []byte) fields.Field {
	vals, err := removeOwnerArgs.Unpack(argData)
	if err != nil {
		return nil
	}
	prevOwner := vals[0].(common.Address)
	owner := vals[1].(common.Address)
	threshold := vals[2].(*big.Int)

	return preview("Safe: Remove Owner",
		fmt.Sprintf("Remove owner %s with new threshold %s", owner.Hex(), threshold),
		fields.NewAddress("Previous Owner", prevOwner.Hex()),
		fields.NewAddress("Owner to Remove", owner.Hex()),
		fields.NewNumber("New Threshold", threshold.String()),
	)
}

func visualizeSwapOwner(argData []byte) fields.Field {
	vals, err := swapOwnerArgs.Unpack(argData)
	if err != nil {
		return nil
	}
	prevOwner := vals[0].(common.Address)
	oldOwner := vals[1].(common.Address)
	newOwner := vals[2].(common.Address)

	return preview("Safe: Swap Owner",
		fmt.Sprintf("Swap owner %s with %s", oldOwner.Hex(), newOwner.Hex()),
		fields.NewAddress("Previous Owner", prevOwner.Hex()),
		fields.NewAddress("Old Owner", oldOwner.Hex()),
		fields.NewAddress("New Owner", newOwner.Hex()),
	)
}

func visualizeChangeThreshold(argData []byte) fields.Field {
	vals, err := changeThresholdArgs.Unpack(argData)
	if err != nil {
		return nil
	}
	threshold := vals[0].(*big.Int)

	details := []fields.Field{
		fields.NewNumber("New Threshold", threshold.String()),
	}
	if threshold.Cmp(big.NewInt(1)) == 0 {
		details = append(details, fields.NewText("Warning",
			"Setting threshold to 1 allows single signature control"))
	}

	return preview("Safe: Change Threshold",
		fmt.Sprintf("Change threshold to %s", threshold), details...)
}

func operationName(operation uint8) string {
	switch operation {
	case 0:
		return "Call"
	case 1:
		return "DelegateCall"
	}

	return "Unknown"
}

// formatEther renders a wei value as a decimal ETH amount with trailing
// zeros trimmed.
func formatEther(wei *big.Int) string {
	s := new(big.Rat).SetFrac(wei, big.NewInt(params.Ether)).FloatString(18)
	s = strings.TrimRight(s, "0")

	return strings.TrimSuffix(s, ".")
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
