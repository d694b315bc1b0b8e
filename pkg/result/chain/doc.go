// Package chain provides a minimal fluent Chain[T, E] for synchronous
// composition of result.Result values.
//
// It keeps the API surface very small:
// - From/FromValue: create a Chain
// - Then/Try: compose result-returning or error-returning functions
// - Map/MapErr: transform the success or failure payload
// - Ensure: trigger side effects without changing the result
// - Finally/UnwrapOr: reduce to a concrete value
//
// Type-preserving steps are methods; steps that change the success type are
// package functions of the same name. All steps short-circuit on failure and
// run in the caller's stack, each at most once.
package chain
