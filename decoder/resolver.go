package decoder

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"

	"github.com/clearsign-labs/clearsign/descriptor"
)

// ABIResolver is an ArgumentResolver backed by a function-shape database.
// Shapes are registered from full contract ABI JSON or from individual
// signature strings, then looked up by selector at decode time.
//
// Registration happens at initialization; the resolver is read-only
// afterward and safe for concurrent use.
type ABIResolver struct {
	methods map[string]abi.Arguments
}

var _ ArgumentResolver = (*ABIResolver)(nil)

func NewABIResolver() *ABIResolver {
	return &ABIResolver{methods: make(map[string]abi.Arguments)}
}

// RegisterABI adds every function of a contract ABI JSON document to the
// shape database, keyed by its 4-byte selector.
func (r *ABIResolver) RegisterABI(abiJSON string) error {
	parsed, err := abi.JSON(strings.NewReader(abiJSON))
	if err != nil {
		return fmt.Errorf("failed to parse ABI: %w", err)
	}
	for _, method := range parsed.Methods {
		r.methods[selectorHex(method.ID)] = method.Inputs
	}

	return nil
}

// RegisterSignatures adds function signature strings to the shape
// database. Parameter names are optional; tuples use parenthesized
// component lists:
//
//	transfer(address to, uint256 amount)
//	process((uint256 a, uint256 b) data, bytes payload)
func (r *ABIResolver) RegisterSignatures(sigs ...string) error {
	for _, sig := range sigs {
		name, inputs, err := parseSignature(sig)
		if err != nil {
			return fmt.Errorf("failed to parse signature %q: %w", sig, err)
		}
		method := abi.NewMethod(name, name, abi.Function, "", false, false, inputs, nil)
		r.methods[selectorHex(method.ID)] = method.Inputs
	}

	return nil
}

// Resolve decodes argument bytes for a selector into a named value tree.
// The candidate format is ignored; shapes are keyed by selector alone.
func (r *ABIResolver) Resolve(selector string, _ *descriptor.Format, argData []byte) (map[string]any, error) {
	args, ok := r.methods[strings.ToLower(selector)]
	if !ok {
		return nil, fmt.Errorf("no known argument shape for selector %s", selector)
	}
	tree := make(map[string]any)
	if err := args.UnpackIntoMap(tree, argData); err != nil {
		return nil, fmt.Errorf("failed to unpack arguments for selector %s: %w", selector, err)
	}

	return tree, nil
}

func selectorHex(id []byte) string {
	return "0x" + hex.EncodeToString(id[:descriptor.SelectorLength])
}

// parseSignature splits "name(type name, ...)" into the function name and
// its input arguments. Unnamed parameters get positional names arg0, arg1,
// ... so the unpacked tree stays path-addressable.
func parseSignature(sig string) (string, abi.Arguments, error) {
	s := strings.TrimSpace(sig)
	l := strings.Index(s, "(")
	if l <= 0 || !strings.HasSuffix(s, ")") {
		return "", nil, fmt.Errorf("not a function signature: %q", sig)
	}
	name := s[:l]
	params, err := splitTopLevel(s[l+1 : len(s)-1])
	if err != nil {
		return "", nil, err
	}

	args := make(abi.Arguments, 0, len(params))
	for i, p := range params {
		m, err := parseParam(p, i)
		if err != nil {
			return "", nil, err
		}
		if m.Name == "" {
			m.Name = fmt.Sprintf("arg%d", i)
		}
		typ, err := abi.NewType(m.Type, "", m.Components)
		if err != nil {
			return "", nil, fmt.Errorf("bad parameter type %q: %w", m.Type, err)
		}
		args = append(args, abi.Argument{Name: m.Name, Type: typ})
	}

	return name, args, nil
}

// parseParam parses one parameter declaration, recursing into tuples.
func parseParam(p string, idx int) (abi.ArgumentMarshaling, error) {
	p = strings.TrimSpace(p)
	if p == "" {
		return abi.ArgumentMarshaling{}, fmt.Errorf("empty parameter at position %d", idx)
	}

	if strings.HasPrefix(p, "(") {
		closing := matchingParen(p)
		if closing < 0 {
			return abi.ArgumentMarshaling{}, fmt.Errorf("unbalanced parentheses in %q", p)
		}
		inner, err := splitTopLevel(p[1:closing])
		if err != nil {
			return abi.ArgumentMarshaling{}, err
		}
		components := make([]abi.ArgumentMarshaling, 0, len(inner))
		for i, c := range inner {
			comp, err := parseParam(c, i)
			if err != nil {
				return abi.ArgumentMarshaling{}, err
			}
			if comp.Name == "" {
				// Tuple components must be named to unpack into a struct.
				comp.Name = fmt.Sprintf("f%d", i)
			}
			components = append(components, comp)
		}
		suffix, name := splitSuffixAndName(p[closing+1:])

		return abi.ArgumentMarshaling{
			Name:       name,
			Type:       "tuple" + suffix,
			Components: components,
		}, nil
	}

	tokens := strings.Fields(p)
	m := abi.ArgumentMarshaling{Type: tokens[0]}
	if len(tokens) > 1 {
		m.Name = tokens[1]
	}

	return m, nil
}

// splitSuffixAndName separates array brackets from the optional parameter
// name following a tuple, e.g. "[2] data" -> ("[2]", "data").
func splitSuffixAndName(rest string) (string, string) {
	i := 0
	for i < len(rest) && (rest[i] == '[' || rest[i] == ']' || (rest[i] >= '0' && rest[i] <= '9')) {
		i++
	}

	return rest[:i], strings.TrimSpace(rest[i:])
}

// splitTopLevel splits a parameter list on commas outside parentheses and
// brackets. An empty list yields no parameters.
func splitTopLevel(s string) ([]string, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var parts []string
	depth, start := 0, 0
	for i, c := range s {
		switch c {
		case '(', '[':
			depth++
		case ')', ']':
			depth--
			if depth < 0 {
				return nil, fmt.Errorf("unbalanced parentheses in %q", s)
			}
		case ',':
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	if depth != 0 {
		return nil, fmt.Errorf("unbalanced parentheses in %q", s)
	}
	parts = append(parts, s[start:])

	return parts, nil
}

func matchingParen(s string) int {
	depth := 0
	for i, c := range s {
		switch c {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}

	return -1
}
