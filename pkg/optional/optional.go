// Package optional provides a tri-state wrapper for JSON request fields so that
// handlers can tell an omitted key apart from an explicit null.
package optional

import (
	"bytes"
	"encoding/json"
)

// Value holds a field that may be absent, explicitly null, or set.
type Value[T any] struct {
	present bool
	null    bool
	val     T
}

// Of returns a present, non-null value.
func Of[T any](v T) Value[T] {
	return Value[T]{present: true, val: v}
}

// Null returns a present value that was explicitly set to null.
func Null[T any]() Value[T] {
	return Value[T]{present: true, null: true}
}

// Present reports whether the key appeared in the payload at all.
func (v Value[T]) Present() bool { return v.present }

// IsNull reports whether the key was present with a JSON null.
func (v Value[T]) IsNull() bool { return v.present && v.null }

// Get returns the wrapped value and true when present and non-null.
func (v Value[T]) Get() (T, bool) {
	if !v.present || v.null {
		var zero T
		return zero, false
	}
	return v.val, true
}

// Ptr returns nil for absent or null values, otherwise a pointer to a copy.
func (v Value[T]) Ptr() *T {
	if !v.present || v.null {
		return nil
	}
	cp := v.val
	return &cp
}

// UnmarshalJSON marks the value present; encoding/json calls it for null too.
func (v *Value[T]) UnmarshalJSON(data []byte) error {
	v.present = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		v.null = true
		var zero T
		v.val = zero
		return nil
	}
	v.null = false
	return json.Unmarshal(data, &v.val)
}

// MarshalJSON encodes absent and null values as null.
func (v Value[T]) MarshalJSON() ([]byte, error) {
	if !v.present || v.null {
		return []byte("null"), nil
	}
	return json.Marshal(v.val)
}
