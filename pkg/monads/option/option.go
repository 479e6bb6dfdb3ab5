package option

import (
	"fmt"

	"github.com/ib-77/monads/pkg/monads"
)

// NoneString is the textual form of an empty container.
const NoneString = "None"

// Option is either a value of type T or nothing. The zero value is None.
type Option[T any] struct {
	value T
	ok    bool
}

// Some wraps value. It panics with ErrInvalidArgument when value is nil.
func Some[T any](value T) Option[T] {
	if monads.IsNil(value) {
		panic(monads.ArgumentNil("value"))
	}
	return Option[T]{value: value, ok: true}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

// FromNullable wraps value, treating nil as None.
func FromNullable[T any](value T) Option[T] {
	if monads.IsNil(value) {
		return None[T]()
	}
	return Option[T]{value: value, ok: true}
}

func FromPtr[T any](ptr *T) Option[T] {
	if ptr == nil {
		return None[T]()
	}
	return FromNullable(*ptr)
}

// FromOk mirrors the comma-ok idiom of map lookups and type assertions.
func FromOk[T any](value T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return FromNullable(value)
}

// Some and None let the zero Option act as a factory for Optional algorithms.
func (Option[T]) Some(value T) Option[T] {
	return Some(value)
}

func (Option[T]) None() Option[T] {
	return None[T]()
}

func (o Option[T]) HasValue() bool {
	return o.ok
}

func (o Option[T]) IsNone() bool {
	return !o.ok
}

// Value returns the held value or ErrInvalidState when o is None.
func (o Option[T]) Value() (T, error) {
	if !o.ok {
		var zero T
		return zero, monads.NoValue("option has no value")
	}
	return o.value, nil
}

func (o Option[T]) MustValue() T {
	v, err := o.Value()
	if err != nil {
		panic(err)
	}
	return v
}

func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

func (o Option[T]) ValueOrDefault(fallback T) T {
	if o.ok {
		return o.value
	}
	return fallback
}

func (o Option[T]) ValueOrElse(fallback func() T) T {
	if o.ok {
		return o.value
	}
	if fallback == nil {
		panic(monads.ArgumentNil("fallback"))
	}
	return fallback()
}

// IntoNullable returns the held value, or the zero value of T when o is None.
func (o Option[T]) IntoNullable() T {
	return o.value
}

// ToPtr returns a pointer to a copy of the value, nil when o is None.
func (o Option[T]) ToPtr() *T {
	if !o.ok {
		return nil
	}
	v := o.value
	return &v
}

func (o Option[T]) Inspect(some func(T), none func()) {
	if some == nil {
		panic(monads.ArgumentNil("some"))
	}
	if none == nil {
		panic(monads.ArgumentNil("none"))
	}
	if o.ok {
		some(o.value)
	} else {
		none()
	}
}

func (o Option[T]) InspectSome(some func(T)) {
	if some == nil {
		panic(monads.ArgumentNil("some"))
	}
	if o.ok {
		some(o.value)
	}
}

func (o Option[T]) InspectNone(none func()) {
	if none == nil {
		panic(monads.ArgumentNil("none"))
	}
	if !o.ok {
		none()
	}
}

// Filter keeps the value only when predicate holds for it.
func (o Option[T]) Filter(predicate func(T) bool) Option[T] {
	if predicate == nil {
		panic(monads.ArgumentNil("predicate"))
	}
	if o.ok && predicate(o.value) {
		return o
	}
	return None[T]()
}

func (o Option[T]) Or(other Option[T]) Option[T] {
	if o.ok {
		return o
	}
	return other
}

// Equal reports whether both options are None or both hold equal values.
func (o Option[T]) Equal(other Option[T]) bool {
	if o.ok != other.ok {
		return false
	}
	return !o.ok || monads.Equal(o.value, other.value)
}

func (o Option[T]) String() string {
	if !o.ok {
		return NoneString
	}
	return fmt.Sprint(o.value)
}

// Bind applies f to the value and wraps the outcome, or returns None when o
// is None. A nil outcome of f also yields None.
func Bind[T, R any](o Option[T], f func(T) R) Option[R] {
	if f == nil {
		panic(monads.ArgumentNil("f"))
	}
	if !o.ok {
		return None[R]()
	}
	return FromNullable(f(o.value))
}

// AndThen chains a function that itself returns an Option.
func AndThen[T, R any](o Option[T], f func(T) Option[R]) Option[R] {
	if f == nil {
		panic(monads.ArgumentNil("f"))
	}
	if !o.ok {
		return None[R]()
	}
	return f(o.value)
}

// Map invokes exactly one of the branches and returns its outcome.
func Map[T, R any](o Option[T], some func(T) R, none func() R) R {
	if some == nil {
		panic(monads.ArgumentNil("some"))
	}
	if none == nil {
		panic(monads.ArgumentNil("none"))
	}
	if o.ok {
		return some(o.value)
	}
	return none()
}
