// Package option provides Option[T], a value of type T or nothing, together
// with Nullable[T] for types whose absence is their nil value and the
// Optional capability both of them implement.
//
// Options are immutable once constructed and safe to share between goroutines.
//
// Key operations:
// - Some/None: construct an Option (Some rejects nil values)
// - FromNullable/FromPtr/FromOk: convert raw Go values into an Option
// - Bind/AndThen: transform the value, short-circuiting on None
// - Map: collapse the Option into a value via some/none branches
// - Inspect/InspectSome/InspectNone: run side effects on one branch
// - New/Empty/BindAs/MapAs: algorithms written over any Optional container
package option
