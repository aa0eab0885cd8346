package descriptor

import (
	"encoding/hex"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"
)

// SelectorLength is the size in bytes of a calldata function selector.
const SelectorLength = 4

// NormalizeSelector turns a descriptor format key into a canonical 4-byte
// calldata selector: lowercase, 0x-prefixed, 8 hex digits.
//
// Accepted inputs:
//   - an existing selector, e.g. "0x0123ABCD" (case-insensitive)
//   - a function signature, e.g. "transfer(address,uint256)", hashed with
//     Keccak-256 and truncated to the first 4 bytes
//
// Any other form (e.g. an EIP-712 primary type like "mint") returns false.
// The function is pure: the same input always yields the same result.
func NormalizeSelector(key string) (string, bool) {
	k := strings.TrimSpace(key)
	if len(k) == 2+2*SelectorLength && strings.HasPrefix(k, "0x") && isHex(k[2:]) {
		return strings.ToLower(k), true
	}
	l := strings.Index(k, "(")
	r := strings.LastIndex(k, ")")
	// The signature must end at the closing parenthesis; trailing junk would
	// otherwise hash to a wrong selector instead of failing the build.
	if l > 0 && r > l && r == len(k)-1 {
		// Canonical signatures carry no whitespace; strip any to be safe.
		sig := strings.Map(dropSpace, k[:r+1])
		digest := crypto.Keccak256([]byte(sig))

		return "0x" + hex.EncodeToString(digest[:SelectorLength]), true
	}

	return "", false
}

// SelectorFromCalldata hex-encodes the first 4 bytes of calldata using the
// exact normalization NormalizeSelector applies, so build-time and run-time
// selector spaces agree bit for bit.
func SelectorFromCalldata(data []byte) (string, bool) {
	if len(data) < SelectorLength {
		return "", false
	}

	return "0x" + hex.EncodeToString(data[:SelectorLength]), true
}

func isHex(s string) bool {
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return false
		}
	}

	return true
}

func dropSpace(r rune) rune {
	switch r {
	case ' ', '\t', '\n', '\r':
		return -1
	}

	return r
}
