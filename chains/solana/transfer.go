package solana

import (
	"encoding/binary"
	"fmt"

	"github.com/clearsign-labs/clearsign/fields"
	"github.com/clearsign-labs/clearsign/visualizer"
)

const (
	discriminatorLen = 4
	transferDataLen  = discriminatorLen + 8
)

// TransferVisualizer decodes native system-program transfers. The element's
// To field carries the program ID, Data the raw instruction bytes
// (little-endian u32 discriminator followed by u64 lamports), and the
// context Inputs the instruction's account addresses in order.
type TransferVisualizer struct {
	config *ProgramConfig
}

var _ visualizer.Visualizer = (*TransferVisualizer)(nil)

func NewTransferVisualizer() *TransferVisualizer {
	return &TransferVisualizer{config: SystemProgram()}
}

func (v *TransferVisualizer) CanHandle(call *visualizer.Call) bool {
	return call.To == v.config.ProgramID.String() && len(call.Data) >= discriminatorLen
}

func (v *TransferVisualizer) Visualize(ctx *visualizer.Context) fields.Field {
	call := ctx.Call()
	if len(call.Data) < transferDataLen {
		return nil
	}
	fn, err := v.config.Function("transfer")
	if err != nil {
		return nil
	}
	if binary.LittleEndian.Uint32(call.Data[:discriminatorLen]) != fn.Discriminator {
		return nil
	}
	lamports := binary.LittleEndian.Uint64(call.Data[discriminatorLen:transferDataLen])

	from, ok := v.account(ctx, fn, "funding_account")
	if !ok {
		return nil
	}
	to, ok := v.account(ctx, fn, "recipient_account")
	if !ok {
		return nil
	}

	subtitle := fmt.Sprintf("Transfer %d lamports to %s", lamports, to)
	expanded := fields.NewList("Details", subtitle,
		fields.NewAddress("From", from),
		fields.NewAddress("To", to),
		fields.NewAmount("Amount (lamports)", fmt.Sprintf("%d", lamports)),
	)

	return fields.NewPreview("System Transfer", subtitle, nil, &expanded)
}

func (v *TransferVisualizer) account(ctx *visualizer.Context, fn *FunctionSpec, param string) (string, bool) {
	idx, err := fn.ParamIndex(param)
	if err != nil || idx >= len(ctx.Inputs) {
		return "", false
	}
	addr, ok := ctx.Inputs[idx].(string)

	return addr, ok
}
