package option

import (
	"fmt"

	"github.com/ib-77/monads/pkg/monads"
)

// Nullable is an optional value whose absence is the nil value of T. T must
// be a nil-able kind; constructing a Nullable of any other T panics with a
// *monads.TypeArgumentError.
type Nullable[T any] struct {
	value T
}

// NullableOf wraps value, treating nil as absence.
func NullableOf[T any](value T) Nullable[T] {
	checkNilable[T]()
	return Nullable[T]{value: value}
}

// ToNullable converts o. It panics like NullableOf when T is not nil-able.
func ToNullable[T any](o Option[T]) Nullable[T] {
	return NullableOf(o.IntoNullable())
}

func checkNilable[T any]() {
	if !monads.IsNilable[T]() {
		panic(typeArgumentError[T]())
	}
}

func typeArgumentError[T any]() *monads.TypeArgumentError {
	return monads.NewTypeArgumentError[T]("T",
		"type argument is not compliant with the container constraints: absence must be representable as nil")
}

func (Nullable[T]) checkTypeArgument() error {
	if !monads.IsNilable[T]() {
		return typeArgumentError[T]()
	}
	return nil
}

func (Nullable[T]) Some(value T) Nullable[T] {
	checkNilable[T]()
	if monads.IsNil(value) {
		panic(monads.ArgumentNil("value"))
	}
	return Nullable[T]{value: value}
}

func (Nullable[T]) None() Nullable[T] {
	checkNilable[T]()
	return Nullable[T]{}
}

func (n Nullable[T]) HasValue() bool {
	return !monads.IsNil(n.value)
}

func (n Nullable[T]) Value() (T, error) {
	if !n.HasValue() {
		var zero T
		return zero, monads.NoValue("nullable has no value")
	}
	return n.value, nil
}

func (n Nullable[T]) MustValue() T {
	v, err := n.Value()
	if err != nil {
		panic(err)
	}
	return v
}

func (n Nullable[T]) ValueOrDefault(fallback T) T {
	if n.HasValue() {
		return n.value
	}
	return fallback
}

func (n Nullable[T]) IntoNullable() T {
	return n.value
}

func (n Nullable[T]) Option() Option[T] {
	return FromNullable(n.value)
}

func (n Nullable[T]) Inspect(some func(T), none func()) {
	n.Option().Inspect(some, none)
}

func (n Nullable[T]) InspectSome(some func(T)) {
	n.Option().InspectSome(some)
}

func (n Nullable[T]) InspectNone(none func()) {
	n.Option().InspectNone(none)
}

func (n Nullable[T]) Equal(other Nullable[T]) bool {
	return n.Option().Equal(other.Option())
}

func (n Nullable[T]) String() string {
	if !n.HasValue() {
		return NoneString
	}
	return fmt.Sprint(n.value)
}
