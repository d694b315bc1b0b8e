package chain

import (
	"github.com/YoungMayor/mayr-go-result/pkg/result"
)

// Chain wraps a result.Result to enable fluent composition
type Chain[T, E any] struct {
	res result.Result[T, E]
}

// From creates a new chain from an existing result
func From[T, E any](r result.Result[T, E]) Chain[T, E] {
	return Chain[T, E]{res: r}
}

// FromValue creates a new chain from a successful value
func FromValue[T, E any](value T) Chain[T, E] {
	return Chain[T, E]{res: result.Ok[T, E](value)}
}

// Result returns the underlying result.Result
func (c Chain[T, E]) Result() result.Result[T, E] {
	return c.res
}

// Then composes a function that already returns a Result of the same shape,
// short-circuiting on failure.
func (c Chain[T, E]) Then(onOk func(value T) result.Result[T, E]) Chain[T, E] {
	if c.res.IsErr() {
		return c
	}
	return Chain[T, E]{res: onOk(c.res.Unwrap())}
}

// Map transforms the successful value to a new value of the same type
func (c Chain[T, E]) Map(onOk func(value T) T) Chain[T, E] {
	return Chain[T, E]{res: result.Map(c.res, onOk)}
}

// MapErr transforms the failure value to a new value of the same type
func (c Chain[T, E]) MapErr(onErr func(err E) E) Chain[T, E] {
	return Chain[T, E]{res: result.MapErr(c.res, onErr)}
}

// Ensure triggers side effects for success/failure without changing the
// result. Either callback may be nil.
func (c Chain[T, E]) Ensure(onOk func(value T), onErr func(err E)) Chain[T, E] {
	if onOk != nil {
		c.res.OnOk(onOk)
	}
	if onErr != nil {
		c.res.OnErr(onErr)
	}
	return c
}

// UnwrapOr collapses the chain to the successful value or def
func (c Chain[T, E]) UnwrapOr(def T) T {
	return c.res.UnwrapOr(def)
}

// Then chains a function that can change the success type
func Then[T, E, U any](c Chain[T, E], onOk func(value T) result.Result[U, E]) Chain[U, E] {
	return Chain[U, E]{res: result.FlatMap(c.res, onOk)}
}

// Map chains a pure transformation to a new success type
func Map[T, E, U any](c Chain[T, E], onOk func(value T) U) Chain[U, E] {
	return Chain[U, E]{res: result.Map(c.res, onOk)}
}

// Try chains a function that returns (U, error); only usable when the chain
// carries error failures
func Try[T, U any](c Chain[T, error], tryOnOk func(value T) (U, error)) Chain[U, error] {
	return Then(c, func(value T) result.Result[U, error] {
		return result.Try(tryOnOk(value))
	})
}

// Finally collapses the chain to a final value, delegating to result.Match
func Finally[T, E, R any](c Chain[T, E], onOk func(value T) R, onErr func(err E) R) R {
	return result.Match(c.res, onOk, onErr)
}
