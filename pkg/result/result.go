package result

import (
	"fmt"
	"reflect"
	"time"

	"github.com/google/uuid"
)

// Result holds exactly one of two payloads: a success value of type T or a
// failure value of type E. The variant and payload are fixed at construction.
type Result[T, E any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       E
	isOk      bool
}

func Ok[T, E any](value T) Result[T, E] {
	return Result[T, E]{
		value:     value,
		isOk:      true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Err[T, E any](err E) Result[T, E] {
	return Result[T, E]{
		err:       err,
		isOk:      false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func (r Result[T, E]) IsOk() bool {
	return r.isOk
}

func (r Result[T, E]) IsErr() bool {
	return !r.isOk
}

// Unwrap returns the success payload. Calling it on an Err result is a
// contract violation in the caller and panics.
func (r Result[T, E]) Unwrap() T {
	if !r.isOk {
		panic(fmt.Sprintf("result: Unwrap called on Err(%v)", r.err))
	}
	return r.value
}

// UnwrapErr returns the failure payload. Calling it on an Ok result panics.
func (r Result[T, E]) UnwrapErr() E {
	if r.isOk {
		panic(fmt.Sprintf("result: UnwrapErr called on Ok(%v)", r.value))
	}
	return r.err
}

// UnwrapOr returns the success payload, or def when the result is Err.
func (r Result[T, E]) UnwrapOr(def T) T {
	if r.isOk {
		return r.value
	}
	return def
}

// UnwrapOrElse returns the success payload, or the value computed from the
// failure payload. Use it when the default is expensive or error-dependent.
func (r Result[T, E]) UnwrapOrElse(compute func(err E) T) T {
	if r.isOk {
		return r.value
	}
	return compute(r.err)
}

// OnOk invokes callback with the success payload, iff the result is Ok.
func (r Result[T, E]) OnOk(callback func(value T)) {
	if r.isOk {
		callback(r.value)
	}
}

// OnErr invokes callback with the failure payload, iff the result is Err.
func (r Result[T, E]) OnErr(callback func(err E)) {
	if !r.isOk {
		callback(r.err)
	}
}

// Equal reports whether both results hold the same variant and equal
// payloads. Construction metadata (id, createdAt) does not participate.
func (r Result[T, E]) Equal(other Result[T, E]) bool {
	if r.isOk != other.isOk {
		return false
	}
	if r.isOk {
		return reflect.DeepEqual(r.value, other.value)
	}
	return reflect.DeepEqual(r.err, other.err)
}

func (r Result[T, E]) String() string {
	if r.isOk {
		return fmt.Sprintf("Ok(%v)", r.value)
	}
	return fmt.Sprintf("Err(%v)", r.err)
}

func (r Result[T, E]) Id() uuid.UUID {
	return r.id
}

// CreatedAt time of construction (UTC)
func (r Result[T, E]) CreatedAt() time.Time {
	return r.createdAt
}
