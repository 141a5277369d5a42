// Package myconfig holds configuration trees as an explicit tagged union so that walks
// over decoded YAML never rely on dynamic type checks of arbitrary values.
package myconfig

import (
	"fmt"
	"sort"
)

type Kind int

const (
	KindScalar Kind = iota
	KindSequence
	KindMapping
)

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Value is one node of a configuration tree. Only the fields belonging to Kind are used.
type Value struct {
	Kind    Kind
	Scalar  any
	Items   []Value
	Keys    []string
	Entries map[string]Value
}

func Scalar(v any) Value {
	return Value{Kind: KindScalar, Scalar: v}
}

func Sequence(items ...Value) Value {
	return Value{Kind: KindSequence, Items: items}
}

func NewMapping() Value {
	return Value{Kind: KindMapping, Entries: map[string]Value{}}
}

// Set adds or replaces a mapping entry, keeping first-insertion order of keys.
func (v *Value) Set(key string, entry Value) {
	if v.Kind != KindMapping {
		panic(fmt.Sprintf("myconfig: Set on %s value", v.Kind))
	}
	if v.Entries == nil {
		v.Entries = map[string]Value{}
	}
	if _, exists := v.Entries[key]; !exists {
		v.Keys = append(v.Keys, key)
	}
	v.Entries[key] = entry
}

func (v Value) Get(key string) (Value, bool) {
	if v.Kind != KindMapping {
		return Value{}, false
	}
	entry, found := v.Entries[key]
	return entry, found
}

func (v Value) IsNil() bool {
	return v.Kind == KindScalar && v.Scalar == nil
}

// UnsupportedTypeError reports a Go value that has no configuration shape.
type UnsupportedTypeError struct {
	Path string
	Type string
}

func (e UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported configuration value of type %s at %q", e.Type, e.Path)
}

// FromAny converts a decoded document (as produced by yaml.v3 into any) into a tree.
// Mapping keys are visited in sorted order so conversion is deterministic.
func FromAny(in any) (Value, error) {
	return fromAny("", in)
}

func fromAny(path string, in any) (Value, error) {
	switch typed := in.(type) {
	case Value:
		return typed, nil
	case nil, string, bool, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return Scalar(typed), nil
	case []any:
		items := make([]Value, 0, len(typed))
		for idx, item := range typed {
			v, err := fromAny(fmt.Sprintf("%s[%d]", path, idx), item)
			if err != nil {
				return Value{}, err
			}
			items = append(items, v)
		}
		return Sequence(items...), nil
	case []string:
		items := make([]Value, 0, len(typed))
		for _, item := range typed {
			items = append(items, Scalar(item))
		}
		return Sequence(items...), nil
	case map[string]any:
		m := NewMapping()
		for _, key := range sortedKeys(typed) {
			v, err := fromAny(join(path, key), typed[key])
			if err != nil {
				return Value{}, err
			}
			m.Set(key, v)
		}
		return m, nil
	case map[any]any:
		converted := make(map[string]any, len(typed))
		for key, item := range typed {
			converted[fmt.Sprint(key)] = item
		}
		return fromAny(path, converted)
	default:
		return Value{}, UnsupportedTypeError{Path: path, Type: fmt.Sprintf("%T", in)}
	}
}

// ToAny converts a tree back into plain Go values.
func ToAny(v Value) any {
	switch v.Kind {
	case KindSequence:
		out := make([]any, 0, len(v.Items))
		for _, item := range v.Items {
			out = append(out, ToAny(item))
		}
		return out
	case KindMapping:
		out := make(map[string]any, len(v.Keys))
		for _, key := range v.Keys {
			out[key] = ToAny(v.Entries[key])
		}
		return out
	default:
		return v.Scalar
	}
}

// Merge overlays override onto base. Mappings merge key by key, anything else is replaced.
func Merge(base Value, override Value) Value {
	if base.Kind != KindMapping || override.Kind != KindMapping {
		return override
	}
	merged := NewMapping()
	for _, key := range base.Keys {
		merged.Set(key, base.Entries[key])
	}
	for _, key := range override.Keys {
		if existing, found := merged.Entries[key]; found {
			merged.Set(key, Merge(existing, override.Entries[key]))
			continue
		}
		merged.Set(key, override.Entries[key])
	}
	return merged
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func join(path string, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}
