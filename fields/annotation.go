package fields

import (
	"fmt"
	"strconv"
	"strings"

	chainsel "github.com/smartcontractkit/chain-selectors"
)

// Annotation returns a short note about the address if it is known,
// otherwise "".
func (a Address) Annotation(ctx *Context) string {
	known, err := ContextGet[map[uint64]map[string]string](ctx, KnownAddressesKey)
	if err != nil {
		return ""
	}
	for chainID, addresses := range known {
		for addr, tag := range addresses {
			if strings.EqualFold(addr, a.Address) {
				return fmt.Sprintf("%s on %s", tag, chainNameByID(chainID))
			}
		}
	}

	return ""
}

// chainNameByID resolves an EVM chain ID to its canonical name, falling
// back to the decimal ID for chains the selector database does not know.
func chainNameByID(chainID uint64) string {
	id := strconv.FormatUint(chainID, 10)
	details, err := chainsel.GetChainDetailsByChainIDAndFamily(id, chainsel.FamilyEVM)
	if err != nil || details.ChainName == "" {
		return id
	}

	return details.ChainName
}
