package result

import (
	"errors"
	"fmt"

	"github.com/ib-77/monads/pkg/monads"
	"github.com/ib-77/monads/pkg/monads/option"
)

type Result[T any, E error] struct {
	value  T
	err    E
	ok     bool
	failed bool
}

var errZeroResult = monads.NoValue("zero result")

// zero reports a Result built by neither Ok nor Err.
func (r Result[T, E]) zero() bool {
	return !r.ok && !r.failed
}

// Ok wraps a value. It panics with ErrInvalidArgument when value is nil.
func Ok[T any, E error](value T) Result[T, E] {
	if monads.IsNil(value) {
		panic(monads.ArgumentNil("value"))
	}
	return Result[T, E]{value: value, ok: true}
}

// Err wraps an error. It panics with ErrInvalidArgument when err is nil.
func Err[T any, E error](err E) Result[T, E] {
	if monads.IsNil(err) {
		panic(monads.ArgumentNil("err"))
	}
	return Result[T, E]{err: err, failed: true}
}

// FromPair converts the usual (value, error) return into a Result.
func FromPair[T any](value T, err error) Result[T, error] {
	if err != nil {
		return Err[T](err)
	}
	if monads.IsNil(value) {
		return Err[T](monads.ArgumentNil("value"))
	}
	return Ok[T, error](value)
}

func (r Result[T, E]) IsOk() bool {
	return r.ok
}

func (r Result[T, E]) IsErr() bool {
	return !r.ok
}

// Unwrap returns the value, or the stored error itself when r is an Err.
func (r Result[T, E]) Unwrap() (T, error) {
	if r.ok {
		return r.value, nil
	}
	var zero T
	if r.zero() {
		return zero, errZeroResult
	}
	return zero, r.err
}

func (r Result[T, E]) MustUnwrap() T {
	v, err := r.Unwrap()
	if err != nil {
		panic(err)
	}
	return v
}

// Expect is Unwrap with a caller supplied diagnostic: on Err the returned
// error carries message and does not wrap the stored error.
func (r Result[T, E]) Expect(message string) (T, error) {
	if r.ok {
		return r.value, nil
	}
	var zero T
	return zero, errors.New(message)
}

func (r Result[T, E]) UnwrapOr(fallback T) T {
	if r.ok {
		return r.value
	}
	return fallback
}

func (r Result[T, E]) UnwrapOrElse(onErr func(E) T) T {
	if onErr == nil {
		panic(monads.ArgumentNil("onErr"))
	}
	if r.ok {
		return r.value
	}
	if r.zero() {
		panic(errZeroResult)
	}
	return onErr(r.err)
}

func (r Result[T, E]) IsOkAnd(predicate func(T) bool) bool {
	if predicate == nil {
		panic(monads.ArgumentNil("predicate"))
	}
	return r.ok && predicate(r.value)
}

func (r Result[T, E]) IsErrAnd(predicate func(E) bool) bool {
	if predicate == nil {
		panic(monads.ArgumentNil("predicate"))
	}
	return r.failed && predicate(r.err)
}

// Ok returns the value as an Option, None when r is an Err.
func (r Result[T, E]) Ok() option.Option[T] {
	if !r.ok {
		return option.None[T]()
	}
	return option.Some(r.value)
}

// Err returns the error as an Option, None when r is Ok.
func (r Result[T, E]) Err() option.Option[E] {
	if !r.failed {
		return option.None[E]()
	}
	return option.Some(r.err)
}

// Inspect calls op with the value when r is Ok and returns r.
func (r Result[T, E]) Inspect(op func(T)) Result[T, E] {
	if op == nil {
		panic(monads.ArgumentNil("op"))
	}
	if r.ok {
		op(r.value)
	}
	return r
}

// InspectErr calls op with the error when r is an Err and returns r.
func (r Result[T, E]) InspectErr(op func(E)) Result[T, E] {
	if op == nil {
		panic(monads.ArgumentNil("op"))
	}
	if r.failed {
		op(r.err)
	}
	return r
}

func (r Result[T, E]) String() string {
	if r.ok {
		return fmt.Sprintf("Ok(%v)", r.value)
	}
	if r.zero() {
		return "Err(<nil>)"
	}
	return fmt.Sprintf("Err(%v)", r.err)
}
