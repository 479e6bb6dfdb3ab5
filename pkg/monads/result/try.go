package result

import (
	"errors"
	"fmt"

	"github.com/ib-77/monads/pkg/monads"
)

// TryExecute runs f and lifts its outcome into a Result.
//
// A value becomes Ok. A failure that matches E (by errors.As) becomes Err.
// Any other failure, including a panic or a nil value, produces no Result:
// it is returned as a *monads.UnexpectedError whose Cause is that failure.
func TryExecute[T any, E error](f func() (T, error)) (Result[T, E], error) {
	if f == nil {
		panic(monads.ArgumentNil("f"))
	}

	v, err := invoke(f)
	if err != nil {
		var expected E
		if errors.As(err, &expected) && !monads.IsNil(expected) {
			return Err[T](expected), nil
		}
		return Result[T, E]{}, monads.NewUnexpectedError(err)
	}
	if monads.IsNil(v) {
		return Result[T, E]{}, monads.NewUnexpectedError(monads.ArgumentNil("computed value"))
	}
	return Ok[T, E](v), nil
}

// MustTryExecute is TryExecute that panics with the unexpected failure.
func MustTryExecute[T any, E error](f func() (T, error)) Result[T, E] {
	r, err := TryExecute[T, E](f)
	if err != nil {
		panic(err)
	}
	return r
}

func invoke[T any](f func() (T, error)) (v T, err error) {
	defer func() {
		if p := recover(); p != nil {
			if e, ok := p.(error); ok {
				err = e
			} else {
				err = fmt.Errorf("panic: %v", p)
			}
		}
	}()
	return f()
}
