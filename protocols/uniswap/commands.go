package uniswap

import (
	"fmt"
	"math/big"
	"strconv"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/clearsign-labs/clearsign/fields"
)

// Universal Router command bytes, from the router's Commands.sol.
// https://github.com/Uniswap/universal-router/blob/main/contracts/libraries/Commands.sol
const (
	cmdV3SwapExactIn            = 0x00
	cmdV3SwapExactOut           = 0x01
	cmdPermit2TransferFrom      = 0x02
	cmdPermit2PermitBatch       = 0x03
	cmdSweep                    = 0x04
	cmdTransfer                 = 0x05
	cmdPayPortion               = 0x06
	cmdV2SwapExactIn            = 0x08
	cmdV2SwapExactOut           = 0x09
	cmdPermit2Permit            = 0x0a
	cmdWrapEth                  = 0x0b
	cmdUnwrapWeth               = 0x0c
	cmdPermit2TransferFromBatch = 0x0d
	cmdBalanceCheckERC20        = 0x0e
	cmdV4Swap                   = 0x10
	cmdV3PositionManagerPermit  = 0x11
	cmdV3PositionManagerCall    = 0x12
	cmdV4InitializePool         = 0x13
	cmdV4PositionManagerCall    = 0x14
	cmdExecuteSubPlan           = 0x21
)

var commandNames = map[byte]string{
	cmdV3SwapExactIn:            "V3 Swap Exact In",
	cmdV3SwapExactOut:           "V3 Swap Exact Out",
	cmdPermit2TransferFrom:      "Permit2 Transfer From",
	cmdPermit2PermitBatch:       "Permit2 Permit Batch",
	cmdSweep:                    "Sweep",
	cmdTransfer:                 "Transfer",
	cmdPayPortion:               "Pay Portion",
	cmdV2SwapExactIn:            "V2 Swap Exact In",
	cmdV2SwapExactOut:           "V2 Swap Exact Out",
	cmdPermit2Permit:            "Permit2 Permit",
	cmdWrapEth:                  "Wrap ETH",
	cmdUnwrapWeth:               "Unwrap WETH",
	cmdPermit2TransferFromBatch: "Permit2 Transfer From Batch",
	cmdBalanceCheckERC20:        "Balance Check ERC20",
	cmdV4Swap:                   "V4 Swap",
	cmdV3PositionManagerPermit:  "V3 Position Manager Permit",
	cmdV3PositionManagerCall:    "V3 Position Manager Call",
	cmdV4InitializePool:         "V4 Initialize Pool",
	cmdV4PositionManagerCall:    "V4 Position Manager Call",
	cmdExecuteSubPlan:           "Execute Sub Plan",
}

// Per-command input layouts, from the router's Dispatcher.sol. Only the
// leading parameters each summary needs are declared; trailing parameters
// (payer flags) decode fine without them since ABI offsets are absolute.
var (
	v3SwapArgs = mustArguments(
		abi.ArgumentMarshaling{Name: "recipient", Type: "address"},
		abi.ArgumentMarshaling{Name: "amountA", Type: "uint256"},
		abi.ArgumentMarshaling{Name: "amountB", Type: "uint256"},
		abi.ArgumentMarshaling{Name: "path", Type: "bytes"},
	)
	v2SwapExactInArgs = mustArguments(
		abi.ArgumentMarshaling{Name: "recipient", Type: "address"},
		abi.ArgumentMarshaling{Name: "amountIn", Type: "uint256"},
		abi.ArgumentMarshaling{Name: "amountOutMinimum", Type: "uint256"},
		abi.ArgumentMarshaling{Name: "path", Type: "address[]"},
	)
	v2SwapExactOutArgs = mustArguments(
		abi.ArgumentMarshaling{Name: "recipient", Type: "address"},
		abi.ArgumentMarshaling{Name: "amountOut", Type: "uint256"},
		abi.ArgumentMarshaling{Name: "amountInMaximum", Type: "uint256"},
		abi.ArgumentMarshaling{Name: "path", Type: "address[]"},
	)
	payPortionArgs = mustArguments(
		abi.ArgumentMarshaling{Name: "token", Type: "address"},
		abi.ArgumentMarshaling{Name: "recipient", Type: "address"},
		abi.ArgumentMarshaling{Name: "bips", Type: "uint256"},
	)
	wrapEthArgs = mustArguments(
		abi.ArgumentMarshaling{Name: "recipient", Type: "address"},
		abi.ArgumentMarshaling{Name: "amountMin", Type: "uint256"},
	)
	sweepArgs = mustArguments(
		abi.ArgumentMarshaling{Name: "token", Type: "address"},
		abi.ArgumentMarshaling{Name: "recipient", Type: "address"},
		abi.ArgumentMarshaling{Name: "amountMin", Type: "uint256"},
	)
	transferArgs = mustArguments(
		abi.ArgumentMarshaling{Name: "token", Type: "address"},
		abi.ArgumentMarshaling{Name: "recipient", Type: "address"},
		abi.ArgumentMarshaling{Name: "value", Type: "uint256"},
	)
	permit2TransferFromArgs = mustArguments(
		abi.ArgumentMarshaling{Name: "token", Type: "address"},
		abi.ArgumentMarshaling{Name: "recipient", Type: "address"},
		abi.ArgumentMarshaling{Name: "amount", Type: "uint160"},
	)
)

// A V3 path is at least tokenIn (20) + fee (3) + tokenOut (20).
const v3PathMinLen = 43

// describeCommands turns the packed command byte string and its parallel
// input list into one display field per command. Unknown command bytes are
// skipped, matching the router's own dispatch; a known command with
// undecodable or missing input degrades to hex, never to an error.
func describeCommands(commands []byte, inputs [][]byte) []fields.Field {
	type step struct {
		id   byte
		name string
	}
	steps := make([]step, 0, len(commands))
	for _, id := range commands {
		if name, ok := commandNames[id]; ok {
			steps = append(steps, step{id: id, name: name})
		}
	}

	out := make([]fields.Field, 0, len(steps))
	for i, s := range steps {
		label := fmt.Sprintf("Command %d (%s)", i+1, s.name)
		if i >= len(inputs) {
			out = append(out, fields.NewText(label, "no input"))

			continue
		}
		out = append(out, describeCommand(label, s.id, inputs[i]))
	}

	return out
}

func describeCommand(label string, id byte, input []byte) fields.Field {
	switch id {
	case cmdV3SwapExactIn, cmdV3SwapExactOut:
		return v3Swap(label, id, input)
	case cmdV2SwapExactIn:
		return v2SwapExactIn(label, input)
	case cmdV2SwapExactOut:
		return v2SwapExactOut(label, input)
	case cmdPayPortion:
		return payPortion(label, input)
	case cmdWrapEth:
		return wrapEth(label, input)
	case cmdUnwrapWeth:
		return unwrapWeth(label, input)
	case cmdSweep:
		return sweep(label, input)
	case cmdTransfer:
		return transfer(label, input)
	case cmdPermit2TransferFrom:
		return permit2TransferFrom(label, input)
	}

	return rawInput(label, input)
}

func rawInput(label string, input []byte) fields.Field {
	return fields.NewText(label, "input "+hexutil.Encode(input))
}

func v3Swap(label string, id byte, input []byte) fields.Field {
	vals, err := v3SwapArgs.Unpack(input)
	if err != nil {
		return rawInput(label, input)
	}
	amountA := vals[1].(*big.Int)
	amountB := vals[2].(*big.Int)
	path := vals[3].([]byte)
	if len(path) < v3PathMinLen {
		return fields.NewText(label, "invalid swap path")
	}
	tokenIn := common.BytesToAddress(path[:20])
	fee := uint32(path[20])<<16 | uint32(path[21])<<8 | uint32(path[22])
	tokenOut := common.BytesToAddress(path[23:43])

	var text string
	if id == cmdV3SwapExactIn {
		text = fmt.Sprintf("Swap %s %s for >=%s %s via V3 (%s%% fee)",
			amountA, tokenIn.Hex(), amountB, tokenOut.Hex(), feePercent(fee))
	} else {
		// Exact out: amountA is the output amount, amountB the input cap.
		text = fmt.Sprintf("Swap <=%s %s for %s %s via V3 (%s%% fee)",
			amountB, tokenIn.Hex(), amountA, tokenOut.Hex(), feePercent(fee))
	}

	return fields.NewText(label, text)
}

func v2SwapExactIn(label string, input []byte) fields.Field {
	vals, err := v2SwapExactInArgs.Unpack(input)
	if err != nil {
		return rawInput(label, input)
	}
	amountIn := vals[1].(*big.Int)
	amountOutMin := vals[2].(*big.Int)
	path := vals[3].([]common.Address)
	if len(path) == 0 {
		return fields.NewText(label, "empty swap path")
	}

	return fields.NewText(label, fmt.Sprintf("Swap %s %s for >=%s %s via V2 (%d hop(s))",
		amountIn, path[0].Hex(), amountOutMin, path[len(path)-1].Hex(), len(path)-1))
}

func v2SwapExactOut(label string, input []byte) fields.Field {
	vals, err := v2SwapExactOutArgs.Unpack(input)
	if err != nil {
		return rawInput(label, input)
	}
	amountOut := vals[1].(*big.Int)
	amountInMax := vals[2].(*big.Int)
	path := vals[3].([]common.Address)
	if len(path) == 0 {
		return fields.NewText(label, "empty swap path")
	}

	return fields.NewText(label, fmt.Sprintf("Swap <=%s %s for %s %s via V2 (%d hop(s))",
		amountInMax, path[0].Hex(), amountOut, path[len(path)-1].Hex(), len(path)-1))
}

func payPortion(label string, input []byte) fields.Field {
	vals, err := payPortionArgs.Unpack(input)
	if err != nil {
		return rawInput(label, input)
	}
	token := vals[0].(common.Address)
	recipient := vals[1].(common.Address)
	bips := vals[2].(*big.Int)

	return fields.NewText(label, fmt.Sprintf("Pay %s of token %s to %s",
		bipsPercent(bips), token.Hex(), recipient.Hex()))
}

func wrapEth(label string, input []byte) fields.Field {
	vals, err := wrapEthArgs.Unpack(input)
	if err != nil {
		return rawInput(label, input)
	}
	recipient := vals[0].(common.Address)
	amount := vals[1].(*big.Int)

	return fields.NewText(label, fmt.Sprintf("Wrap %s ETH to WETH for %s", amount, recipient.Hex()))
}

func unwrapWeth(label string, input []byte) fields.Field {
	vals, err := wrapEthArgs.Unpack(input)
	if err != nil {
		return rawInput(label, input)
	}
	recipient := vals[0].(common.Address)
	amountMin := vals[1].(*big.Int)

	return fields.NewText(label, fmt.Sprintf("Unwrap >=%s WETH to ETH for %s", amountMin, recipient.Hex()))
}

func sweep(label string, input []byte) fields.Field {
	vals, err := sweepArgs.Unpack(input)
	if err != nil {
		return rawInput(label, input)
	}
	token := vals[0].(common.Address)
	recipient := vals[1].(common.Address)
	amountMin := vals[2].(*big.Int)

	return fields.NewText(label, fmt.Sprintf("Sweep >=%s of token %s to %s",
		amountMin, token.Hex(), recipient.Hex()))
}

func transfer(label string, input []byte) fields.Field {
	vals, err := transferArgs.Unpack(input)
	if err != nil {
		return rawInput(label, input)
	}
	token := vals[0].(common.Address)
	recipient := vals[1].(common.Address)
	value := vals[2].(*big.Int)

	return fields.NewText(label, fmt.Sprintf("Transfer %s of token %s to %s",
		value, token.Hex(), recipient.Hex()))
}

func permit2TransferFrom(label string, input []byte) fields.Field {
	vals, err := permit2TransferFromArgs.Unpack(input)
	if err != nil {
		return rawInput(label, input)
	}
	token := vals[0].(common.Address)
	recipient := vals[1].(common.Address)
	amount := vals[2].(*big.Int)

	return fields.NewText(label, fmt.Sprintf("Transfer %s of token %s to %s via Permit2",
		amount, token.Hex(), recipient.Hex()))
}

// feePercent renders a V3 pool fee (hundredths of a bip) as a percentage,
// e.g. 3000 -> "0.3".
func feePercent(fee uint32) string {
	return strconv.FormatFloat(float64(fee)/10000, 'f', -1, 64)
}

// bipsPercent renders basis points as a percentage, e.g. 2500 -> "25%".
func bipsPercent(bips *big.Int) string {
	if bips.IsInt64() {
		return strconv.FormatFloat(float64(bips.Int64())/100, 'f', -1, 64) + "%"
	}

	return bips.String() + " bips"
}
