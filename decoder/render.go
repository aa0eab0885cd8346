package decoder

import (
	"fmt"
	"math/big"
	"reflect"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/clearsign-labs/clearsign/descriptor"
	"github.com/clearsign-labs/clearsign/fields"
)

// renderValue turns one projected value into a display field. The
// FieldSpec's format hint picks the variant when present; otherwise the
// decoded Go type decides. Integers render base-10, addresses in their
// EIP-55 checksummed form, byte slices as 0x hex.
func renderValue(spec descriptor.FieldSpec, value any) fields.Field {
	switch spec.Format {
	case "amount", "tokenAmount":
		return fields.NewAmount(spec.Label, decimalString(value))
	case "addressName", "addressOrName":
		return fields.NewAddress(spec.Label, addressString(value))
	case "raw":
		return fields.NewText(spec.Label, fmt.Sprintf("%v", value))
	}

	switch v := value.(type) {
	case common.Address:
		return fields.NewAddress(spec.Label, v.Hex())
	case *big.Int:
		return fields.NewNumber(spec.Label, v.String())
	case []byte:
		return fields.NewText(spec.Label, hexutil.Encode(v))
	case bool:
		return fields.NewText(spec.Label, fmt.Sprintf("%t", v))
	case string:
		return fields.NewText(spec.Label, v)
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return fields.NewNumber(spec.Label, fmt.Sprintf("%d", rv.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return fields.NewNumber(spec.Label, fmt.Sprintf("%d", rv.Uint()))
	case reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return fields.NewText(spec.Label, hexutil.Encode(fixedBytes(rv)))
		}
	}

	return fields.NewText(spec.Label, fmt.Sprintf("%v", value))
}

func decimalString(value any) string {
	switch v := value.(type) {
	case *big.Int:
		return v.String()
	default:
		rv := reflect.ValueOf(value)
		switch rv.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return fmt.Sprintf("%d", rv.Int())
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			return fmt.Sprintf("%d", rv.Uint())
		}

		return fmt.Sprintf("%v", value)
	}
}

func addressString(value any) string {
	switch v := value.(type) {
	case common.Address:
		return v.Hex()
	case [20]byte:
		return common.Address(v).Hex()
	case string:
		return v
	default:
		return fmt.Sprintf("%v", value)
	}
}

func fixedBytes(rv reflect.Value) []byte {
	out := make([]byte, rv.Len())
	for i := range rv.Len() {
		out[i] = byte(rv.Index(i).Uint())
	}

	return out
}
