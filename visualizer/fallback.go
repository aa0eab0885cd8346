package visualizer

import (
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/clearsign-labs/clearsign/fields"
)

// Fallback renders raw call data as hex so the signer is never shown
// nothing. It succeeds for any byte sequence; empty input renders as "0x".
func Fallback(data []byte) fields.Field {
	return fields.NewText("Contract Call Data", hexutil.Encode(data))
}
