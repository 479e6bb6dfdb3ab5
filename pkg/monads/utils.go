package monads

import (
	"reflect"

	"github.com/google/go-cmp/cmp"
)

// IsNil reports whether v is nil or the nil value of a nil-able kind
// (pointer, interface, map, slice, chan, func).
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	if nilableKind(rv.Kind()) {
		return rv.IsNil()
	}
	return false
}

// IsNilable reports whether absence of a T can be represented as nil.
func IsNilable[T any]() bool {
	return nilableKind(reflect.TypeFor[T]().Kind())
}

func nilableKind(k reflect.Kind) bool {
	switch k {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice,
		reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return true
	}
	return false
}

// Equal compares two values structurally. Pointers are followed, unexported
// fields are compared and an Equal(T) bool method takes precedence.
func Equal[T any](a, b T) bool {
	return cmp.Equal(a, b, cmp.Exporter(func(reflect.Type) bool { return true }))
}
