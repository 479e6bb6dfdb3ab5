package result

import "github.com/ib-77/monads/pkg/monads"

// Map transforms the value of an Ok result; an Err is carried through with
// the very same error.
func Map[T, U any, E error](r Result[T, E], f func(T) U) Result[U, E] {
	if f == nil {
		panic(monads.ArgumentNil("f"))
	}
	if !r.ok {
		return Result[U, E]{err: r.err, failed: r.failed}
	}
	return Ok[U, E](f(r.value))
}

// MapErr transforms the error of an Err result; an Ok is carried through.
func MapErr[T any, E, F error](r Result[T, E], f func(E) F) Result[T, F] {
	if f == nil {
		panic(monads.ArgumentNil("f"))
	}
	if r.ok {
		return Result[T, F]{value: r.value, ok: true}
	}
	if r.zero() {
		return Result[T, F]{}
	}
	return Err[T](f(r.err))
}

// AndThen chains a computation that itself returns a Result.
func AndThen[T, U any, E error](r Result[T, E], f func(T) Result[U, E]) Result[U, E] {
	if f == nil {
		panic(monads.ArgumentNil("f"))
	}
	if !r.ok {
		return Result[U, E]{err: r.err, failed: r.failed}
	}
	return f(r.value)
}

// MapOr returns f(value) when r is Ok, otherwise def.
func MapOr[T, U any, E error](r Result[T, E], f func(T) U, def U) U {
	if f == nil {
		panic(monads.ArgumentNil("f"))
	}
	if r.ok {
		return f(r.value)
	}
	return def
}

// MapOrElse returns f(value) when r is Ok, otherwise onErr(error).
// It panics with ErrInvalidState on the zero Result.
func MapOrElse[T, U any, E error](r Result[T, E], f func(T) U, onErr func(E) U) U {
	if f == nil {
		panic(monads.ArgumentNil("f"))
	}
	if onErr == nil {
		panic(monads.ArgumentNil("onErr"))
	}
	if r.ok {
		return f(r.value)
	}
	if r.zero() {
		panic(errZeroResult)
	}
	return onErr(r.err)
}

// Fold collapses r by calling exactly one of onOk and onErr.
func Fold[T, U any, E error](r Result[T, E], onOk func(T) U, onErr func(E) U) U {
	return MapOrElse(r, onOk, onErr)
}
