package myconfig

import (
	"fmt"
	"net/url"
)

// Transform replaces every scalar in the tree, in place, with fn's result.
// Sequences and mappings are descended into at any depth.
func Transform(v *Value, fn func(path string, scalar any) any) {
	transform("", v, fn)
}

func transform(path string, v *Value, fn func(path string, scalar any) any) {
	switch v.Kind {
	case KindScalar:
		v.Scalar = fn(path, v.Scalar)
	case KindSequence:
		for idx := range v.Items {
			transform(fmt.Sprintf("%s[%d]", path, idx), &v.Items[idx], fn)
		}
	case KindMapping:
		for _, key := range v.Keys {
			entry := v.Entries[key]
			transform(join(path, key), &entry, fn)
			v.Entries[key] = entry
		}
	}
}

// Flatten renders the tree in the dotted/indexed notation used by go-playground/form.
// Nil scalars are left out so that they count as absent.
func Flatten(v Value) url.Values {
	values := url.Values{}
	flatten("", v, values)
	return values
}

func flatten(path string, v Value, values url.Values) {
	switch v.Kind {
	case KindScalar:
		if v.Scalar == nil {
			return
		}
		values.Add(path, fmt.Sprint(v.Scalar))
	case KindSequence:
		for idx, item := range v.Items {
			flatten(fmt.Sprintf("%s[%d]", path, idx), item, values)
		}
	case KindMapping:
		for _, key := range v.Keys {
			flatten(join(path, key), v.Entries[key], values)
		}
	}
}
