// Package solana visualizes Solana instructions, a chain family with
// native instruction encodings rather than ABI calldata. Program layouts
// are declared as plain configuration: an ordered list of function
// descriptors with named parameter indices.
package solana

import (
	"fmt"

	solanago "github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"
)

// ParamSpec names one positional account parameter of an instruction.
type ParamSpec struct {
	Name  string
	Index int
}

// FunctionSpec describes one instruction of a program: its discriminator
// and the named positions of the accounts it consumes.
type FunctionSpec struct {
	Name          string
	Discriminator uint32
	Params        []ParamSpec
}

// ParamIndex resolves a parameter name to its account index.
func (f *FunctionSpec) ParamIndex(name string) (int, error) {
	for _, p := range f.Params {
		if p.Name == name {
			return p.Index, nil
		}
	}

	return 0, fmt.Errorf("unsupported parameter name: %s", name)
}

// ProgramConfig declares the decodable surface of one on-chain program.
// Construct once at initialization and treat as read-only.
type ProgramConfig struct {
	ProgramID solanago.PublicKey
	Functions []FunctionSpec
}

// Function resolves a function name to its descriptor.
func (c *ProgramConfig) Function(name string) (*FunctionSpec, error) {
	for i := range c.Functions {
		if c.Functions[i].Name == name {
			return &c.Functions[i], nil
		}
	}

	return nil, fmt.Errorf("unsupported function name: %s", name)
}

// SystemProgram returns the config for the native system program's
// supported instructions.
func SystemProgram() *ProgramConfig {
	return &ProgramConfig{
		ProgramID: solanago.SystemProgramID,
		Functions: []FunctionSpec{
			{
				Name:          "transfer",
				Discriminator: system.Instruction_Transfer,
				Params: []ParamSpec{
					{Name: "funding_account", Index: 0},
					{Name: "recipient_account", Index: 1},
				},
			},
		},
	}
}
