package option

import "github.com/ib-77/monads/pkg/monads"

// Valued is the read side of an optional container.
type Valued[T any] interface {
	// HasValue reports whether a value is held; Value never fails when it is true
	HasValue() bool
	// Value returns the held value or an ErrInvalidState error
	Value() (T, error)
	// ValueOrDefault returns the held value or fallback
	ValueOrDefault(fallback T) T
}

// Inspectable runs side effects depending on presence of a value.
type Inspectable[T any] interface {
	Inspect(some func(T), none func())
	InspectSome(some func(T))
	InspectNone(none func())
}

// Optional is the capability shared by every optional container. Some and
// None are called on the zero value of Self, so algorithms can build
// containers of any conforming type without knowing it concretely.
type Optional[T any, Self any] interface {
	Valued[T]
	Inspectable[T]
	Some(value T) Self
	None() Self
}

// constrained is implemented by families whose type parameter carries a
// requirement the compiler cannot check.
type constrained interface {
	checkTypeArgument() error
}

func checkFamily[O any]() {
	var zero O
	if c, ok := any(zero).(constrained); ok {
		if err := c.checkTypeArgument(); err != nil {
			panic(err)
		}
	}
}

// New builds a populated O.
func New[O Optional[T, O], T any](value T) O {
	var zero O
	return zero.Some(value)
}

// Empty builds an empty O.
func Empty[O Optional[T, O], T any]() O {
	var zero O
	return zero.None()
}

// BindAs applies f to the value of o and wraps the outcome in the container
// family OR. The type argument of OR is validated before f runs, on both the
// populated and the empty path.
func BindAs[OR Optional[R, OR], T, R any](o Valued[T], f func(T) R) OR {
	if f == nil {
		panic(monads.ArgumentNil("f"))
	}
	checkFamily[OR]()

	var zero OR
	if !o.HasValue() {
		return zero.None()
	}
	v, _ := o.Value()
	r := f(v)
	if monads.IsNil(r) {
		return zero.None()
	}
	return zero.Some(r)
}

// MapAs is Map over any Valued container.
func MapAs[T, R any](o Valued[T], some func(T) R, none func() R) R {
	if some == nil {
		panic(monads.ArgumentNil("some"))
	}
	if none == nil {
		panic(monads.ArgumentNil("none"))
	}
	if v, err := o.Value(); err == nil {
		return some(v)
	}
	return none()
}

// ValueOf collects the values of every populated container, in order.
func ValueOf[T any](items ...Valued[T]) []T {
	values := make([]T, 0, len(items))
	for _, it := range items {
		if v, err := it.Value(); err == nil {
			values = append(values, v)
		}
	}
	return values
}

var (
	_ Optional[int, Option[int]]       = Option[int]{}
	_ Optional[*int, Nullable[*int]]   = Nullable[*int]{}
	_ Optional[error, Nullable[error]] = Nullable[error]{}
)
