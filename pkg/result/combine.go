package result

// Match invokes exactly one of the two callbacks with the held payload and
// returns the callback's result. A panic raised inside a callback propagates
// to the caller unchanged.
func Match[T, E, R any](r Result[T, E], onOk func(value T) R, onErr func(err E) R) R {
	if r.isOk {
		return onOk(r.value)
	}
	return onErr(r.err)
}

// Fold is Match under the name callers coming from fold-style APIs expect.
func Fold[T, E, R any](r Result[T, E], onOk func(value T) R, onErr func(err E) R) R {
	return Match(r, onOk, onErr)
}

// Map transforms the success payload, carrying a failure through untouched.
// The transform runs at most once, only on the success path.
func Map[T, E, U any](r Result[T, E], transform func(value T) U) Result[U, E] {
	if r.isOk {
		return Ok[U, E](transform(r.value))
	}
	return Err[U, E](r.err)
}

// MapErr transforms the failure payload, carrying a success through
// untouched.
func MapErr[T, E, F any](r Result[T, E], transform func(err E) F) Result[T, F] {
	if r.isOk {
		return Ok[T, F](r.value)
	}
	return Err[T, F](transform(r.err))
}

// FlatMap chains a fallible follow-up operation. On success it returns
// whatever transform produces; on failure it short-circuits without invoking
// transform. FlatMap can turn a success into a failure, never the reverse.
func FlatMap[T, E, U any](r Result[T, E], transform func(value T) Result[U, E]) Result[U, E] {
	if r.isOk {
		return transform(r.value)
	}
	return Err[U, E](r.err)
}

// Try lifts a conventional (value, error) return into a Result. A nil error,
// including a typed nil hidden behind the interface, yields Ok.
func Try[T any](value T, err error) Result[T, error] {
	if IsNil(err) {
		return Ok[T, error](value)
	}
	return Err[T, error](err)
}
