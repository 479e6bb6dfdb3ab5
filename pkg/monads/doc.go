// Package monads holds what the option and result packages share: the fault
// kinds raised by their combinators and the nil probes used by the strict
// constructors.
//
// Key constructs:
// - ErrInvalidArgument/ErrInvalidState: sentinel fault kinds
// - TypeArgumentError: a type parameter the container family cannot represent
// - UnexpectedError: envelope for failures a lifted computation did not declare
// - IsNil/IsNilable: absence checks for values and type parameters
package monads
