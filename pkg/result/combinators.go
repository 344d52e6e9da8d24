package result

import "reflect"

// Map transforms the success value with onSuccess. A failure passes through
// unchanged and onSuccess is not invoked.
func Map[T, U, E any](r Result[T, E], onSuccess func(v T) U) Result[U, E] {
	if r.IsSuccess() {
		return Success[U, E](onSuccess(r.Value()))
	}
	return FailureFrom[U](r)
}

// MapFailure transforms the failure error with onFailure. A success passes
// through unchanged and onFailure is not invoked.
func MapFailure[F, T, E any](r Result[T, E], onFailure func(err E) F) Result[T, F] {
	if r.IsSuccess() {
		return SuccessFrom[F](r)
	}
	return Failure[T, F](onFailure(r.Err()))
}

// And returns other if r is a success, otherwise r's failure re-wrapped
// under other's value type. other is already constructed by the caller;
// use AndThen when the computation must not run on a failure.
func And[U, T, E any](r Result[T, E], other Result[U, E]) Result[U, E] {
	if r.IsSuccess() {
		return other
	}
	return FailureFrom[U](r)
}

// AndThen applies onSuccess to the success value and returns its result.
// A failure passes through unchanged and onSuccess is not invoked.
func AndThen[T, U, E any](r Result[T, E], onSuccess func(v T) Result[U, E]) Result[U, E] {
	if r.IsSuccess() {
		return onSuccess(r.Value())
	}
	return FailureFrom[U](r)
}

// Or returns other if r is a failure, otherwise r's success re-wrapped
// under other's failure type. other is already constructed by the caller;
// use OrElse when the computation must not run on a success.
func Or[F, T, E any](r Result[T, E], other Result[T, F]) Result[T, F] {
	if r.IsSuccess() {
		return SuccessFrom[F](r)
	}
	return other
}

// OrElse applies onFailure to the failure error and returns its result.
// A success passes through unchanged and onFailure is not invoked.
func OrElse[F, T, E any](r Result[T, E], onFailure func(err E) Result[T, F]) Result[T, F] {
	if r.IsSuccess() {
		return SuccessFrom[F](r)
	}
	return onFailure(r.Err())
}

// Finally collapses r to a concrete value via the matching handler.
func Finally[T, E, U any](r Result[T, E], onSuccess func(v T) U, onFailure func(err E) U) U {
	if r.IsSuccess() {
		return onSuccess(r.Value())
	}
	return onFailure(r.Err())
}

// Equal reports whether a and b hold the same variant with structurally
// equal active payloads. The inactive type parameters and the stamp are
// irrelevant: a success over (T, E1) equals a success over (T, E2) whenever
// the values match.
func Equal[T1, E1, T2, E2 any](a Result[T1, E1], b Result[T2, E2]) bool {
	if a.isSuccess != b.isSuccess {
		return false
	}
	if a.isSuccess {
		return reflect.DeepEqual(a.value, b.value)
	}
	return reflect.DeepEqual(a.err, b.err)
}
