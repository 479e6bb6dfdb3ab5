// Package result provides Result[T, E], the outcome of an operation that
// either produced a value of type T or failed with an error of type E.
//
// A Result is built by exactly one of Ok or Err and never changes afterwards.
// Combinators that change a type parameter are package-level functions,
// because Go methods cannot declare type parameters of their own.
//
// Key operations:
// - Ok/Err: construct a Result (both reject nil inputs)
// - Unwrap/Expect/UnwrapOr: extract the value
// - Ok()/Err(): project into option.Option
// - Map/MapErr/AndThen: transform one slot, carry the other through unchanged
// - MapOr/MapOrElse/Fold: collapse into a plain value
// - Inspect/InspectErr: side effects that return the same Result
// - TryExecute: lift a (T, error) computation, separating declared failures
//   from unexpected ones
package result
