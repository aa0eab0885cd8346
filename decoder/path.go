package decoder

import (
	"reflect"
	"strconv"
	"strings"
)

// project resolves a dot-delimited path against a decoded argument tree.
//
// Convention: a segment names a map entry (argument name) or, matched
// case-insensitively, an exported struct field (ABI tuples unpack into
// anonymous structs with camel-cased field names); an all-digit segment
// indexes an array or slice. Any unresolved segment fails the whole path.
func project(tree map[string]any, path string) (any, bool) {
	var current any = tree
	for _, segment := range strings.Split(path, ".") {
		if segment == "" {
			return nil, false
		}
		next, ok := step(current, segment)
		if !ok {
			return nil, false
		}
		current = next
	}

	return current, true
}

func step(value any, segment string) (any, bool) {
	if m, ok := value.(map[string]any); ok {
		if v, ok := m[segment]; ok {
			return v, true
		}
		for k, v := range m {
			if strings.EqualFold(k, segment) {
				return v, true
			}
		}

		return nil, false
	}

	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		idx, err := strconv.Atoi(segment)
		if err != nil || idx < 0 || idx >= rv.Len() {
			return nil, false
		}

		return rv.Index(idx).Interface(), true
	case reflect.Struct:
		field := rv.FieldByNameFunc(func(name string) bool {
			return strings.EqualFold(name, segment)
		})
		if !field.IsValid() || !field.CanInterface() {
			return nil, false
		}

		return field.Interface(), true
	default:
		return nil, false
	}
}
