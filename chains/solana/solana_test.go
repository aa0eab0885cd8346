package solana

import (
	"encoding/binary"
	"testing"

	solanago "github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clearsign-labs/clearsign/fields"
	"github.com/clearsign-labs/clearsign/visualizer"
)

const (
	fundingAccount   = "9aE476sH92Vz7DMPyq5WLPkrKWivxeuTKEFKd2sZZcde"
	recipientAccount = "4fYNw3dojWmQ4dXtSGE9epjRGy9pFSx62YypT7avPYvA"
)

func transferData(lamports uint64) []byte {
	data := make([]byte, transferDataLen)
	binary.LittleEndian.PutUint32(data[:discriminatorLen], system.Instruction_Transfer)
	binary.LittleEndian.PutUint64(data[discriminatorLen:], lamports)

	return data
}

func transferContext(data []byte) *visualizer.Context {
	return &visualizer.Context{
		Calls:  []visualizer.Call{{To: solanago.SystemProgramID.String(), Data: data}},
		Inputs: []any{fundingAccount, recipientAccount},
	}
}

func TestProgramConfig(t *testing.T) {
	t.Parallel()

	cfg := SystemProgram()
	assert.Equal(t, solanago.SystemProgramID, cfg.ProgramID)

	fn, err := cfg.Function("transfer")
	require.NoError(t, err)
	assert.Equal(t, uint32(system.Instruction_Transfer), fn.Discriminator)

	idx, err := fn.ParamIndex("funding_account")
	require.NoError(t, err)
	assert.Equal(t, 0, idx)

	idx, err = fn.ParamIndex("recipient_account")
	require.NoError(t, err)
	assert.Equal(t, 1, idx)

	_, err = fn.ParamIndex("nonexistent")
	assert.ErrorContains(t, err, "unsupported parameter name")

	_, err = cfg.Function("mint")
	assert.ErrorContains(t, err, "unsupported function name")
}

func TestTransferVisualizer_CanHandle(t *testing.T) {
	t.Parallel()

	v := NewTransferVisualizer()

	t.Run("system program instruction", func(t *testing.T) {
		t.Parallel()

		call := &visualizer.Call{To: solanago.SystemProgramID.String(), Data: transferData(1)}
		assert.True(t, v.CanHandle(call))
	})

	t.Run("other program", func(t *testing.T) {
		t.Parallel()

		call := &visualizer.Call{To: fundingAccount, Data: transferData(1)}
		assert.False(t, v.CanHandle(call))
	})

	t.Run("data shorter than discriminator", func(t *testing.T) {
		t.Parallel()

		call := &visualizer.Call{To: solanago.SystemProgramID.String(), Data: []byte{0x02}}
		assert.False(t, v.CanHandle(call))
	})
}

func TestTransferVisualizer_Visualize(t *testing.T) {
	t.Parallel()

	v := NewTransferVisualizer()

	t.Run("transfer instruction", func(t *testing.T) {
		t.Parallel()

		out := v.Visualize(transferContext(transferData(1_500_000_000)))
		require.NotNil(t, out)
		assert.Equal(t, "System Transfer", out.GetLabel())

		description := out.Describe(&fields.Context{})
		assert.Contains(t, description, "From: "+fundingAccount)
		assert.Contains(t, description, "To: "+recipientAccount)
		assert.Contains(t, description, "Amount (lamports): 1500000000")
	})

	t.Run("wrong discriminator declines", func(t *testing.T) {
		t.Parallel()

		data := transferData(100)
		binary.LittleEndian.PutUint32(data[:discriminatorLen], system.Instruction_CreateAccount)
		assert.Nil(t, v.Visualize(transferContext(data)))
	})

	t.Run("truncated data declines", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, v.Visualize(transferContext(transferData(100)[:6])))
	})

	t.Run("missing account inputs decline", func(t *testing.T) {
		t.Parallel()

		ctx := &visualizer.Context{
			Calls:  []visualizer.Call{{To: solanago.SystemProgramID.String(), Data: transferData(100)}},
			Inputs: []any{fundingAccount},
		}
		assert.Nil(t, v.Visualize(ctx))
	})
}
