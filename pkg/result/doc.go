// Package result provides an immutable two-variant Result[T, E] representing
// the outcome of an operation that may succeed with a value of T or fail with
// an error of E, plus the standard combinator algebra over it. It is a
// disciplined alternative to signalling failure through panics.
//
// Highlights:
// - Ok/Err: construct either variant
// - Match/Fold: collapse to a single value, exactly one branch runs
// - Map/MapErr/FlatMap: transform and chain without nested conditionals
// - UnwrapOr/UnwrapOrElse: defaulting on the failure path
// - OnOk/OnErr: side-effect taps that leave the result untouched
// - Try: lift a conventional (T, error) return into a Result
//
// Map, MapErr, FlatMap, Match and Fold are package functions rather than
// methods because Go methods cannot introduce the extra type parameter for
// the output type.
//
// Unwrap and UnwrapErr panic when called on the opposite variant. That is a
// logic bug in the caller, not a recoverable failure; guard with IsOk/IsErr
// or consume through Match when the variant is not already established.
package result
