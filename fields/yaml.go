package fields

import (
	"fmt"

	"github.com/goccy/go-yaml"
)

// ToYAML marshals a field tree into YAML for structured consumers.
// Byte slices render as 0x-prefixed hex.
func ToYAML(f Field) (string, error) {
	out, err := yaml.MarshalWithOptions(toPlain(f), customMarshallers...)
	if err != nil {
		return "", fmt.Errorf("failed to marshal field %q: %w", f.GetLabel(), err)
	}

	return string(out), nil
}

// toPlain converts a Field into plain maps so the YAML encoder does not
// depend on the concrete variant types.
func toPlain(f Field) map[string]any {
	m := map[string]any{
		"type":     f.GetType(),
		"label":    f.GetLabel(),
		"fallback": f.GetFallbackText(),
	}
	switch v := f.(type) {
	case Text:
		m["text"] = v.Text
	case Address:
		m["address"] = v.Address
		if v.Name != "" {
			m["name"] = v.Name
		}
	case Amount:
		m["amount"] = v.Amount
		if v.Abbreviation != "" {
			m["abbreviation"] = v.Abbreviation
		}
	case Number:
		m["value"] = v.Value
	case List:
		m["fields"] = plainList(v.Fields)
	case Preview:
		m["title"] = v.Title
		m["subtitle"] = v.Subtitle
		if v.Condensed != nil {
			m["condensed"] = plainList(v.Condensed.Fields)
		}
		if v.Expanded != nil {
			m["expanded"] = plainList(v.Expanded.Fields)
		}
	}

	return m
}

func plainList(fs []Field) []map[string]any {
	out := make([]map[string]any, len(fs))
	for i, f := range fs {
		out[i] = toPlain(f)
	}

	return out
}

var customMarshallers = []yaml.EncodeOption{
	yaml.CustomMarshaler(func(value []byte) ([]byte, error) { return fmt.Appendf(nil, "0x%x", value), nil }),
	yaml.CustomMarshaler(func(value [4]byte) ([]byte, error) { return fmt.Appendf(nil, "0x%x", value), nil }),
	yaml.CustomMarshaler(func(value [20]byte) ([]byte, error) { return fmt.Appendf(nil, "0x%x", value), nil }),
	yaml.CustomMarshaler(func(value [32]byte) ([]byte, error) { return fmt.Appendf(nil, "0x%x", value), nil }),
}
