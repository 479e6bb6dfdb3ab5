package monads

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/google/uuid"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrInvalidState    = errors.New("invalid state")
	ErrTypeArgument    = errors.New("invalid type argument")
	ErrUnexpected      = errors.New("unexpected failure")
)

// ArgumentNil builds the fault raised when a required argument is absent.
func ArgumentNil(param string) error {
	return fmt.Errorf("%w: %s is nil", ErrInvalidArgument, param)
}

// NoValue builds the fault raised when an accessor is used on an empty container.
func NoValue(what string) error {
	return fmt.Errorf("%w: %s", ErrInvalidState, what)
}

// TypeArgumentError is raised when a generic operation is instantiated with a
// type argument that violates the constraints of the container family.
// It matches both ErrTypeArgument and ErrInvalidArgument.
type TypeArgumentError struct {
	Message string
	Param   string
	Type    string
	Cause   error
}

func NewTypeArgumentError[T any](param, message string) *TypeArgumentError {
	return &TypeArgumentError{
		Message: message,
		Param:   param,
		Type:    reflect.TypeFor[T]().String(),
	}
}

func (e *TypeArgumentError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = ErrTypeArgument.Error()
	}
	if e.Param != "" {
		msg = fmt.Sprintf("%s (%s = %s)", msg, e.Param, e.Type)
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *TypeArgumentError) Is(target error) bool {
	return target == ErrTypeArgument || target == ErrInvalidArgument
}

func (e *TypeArgumentError) Unwrap() error {
	return e.Cause
}

// UnexpectedError wraps a failure a computation was not declared to produce.
// ID identifies the incident so it can be traced across logs.
type UnexpectedError struct {
	ID      uuid.UUID
	Message string
	Cause   error
}

func NewUnexpectedError(cause error) *UnexpectedError {
	return &UnexpectedError{
		ID:      uuid.New(),
		Message: "unexpected failure encountered",
		Cause:   cause,
	}
}

func (e *UnexpectedError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("%s [%s]", e.Message, e.ID)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Message, e.ID, e.Cause)
}

func (e *UnexpectedError) Is(target error) bool {
	return target == ErrUnexpected
}

func (e *UnexpectedError) Unwrap() error {
	return e.Cause
}
