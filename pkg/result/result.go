package result

import (
	"fmt"
	"iter"
	"time"

	"github.com/google/uuid"
	"github.com/ib-77/result/pkg/result/optional"
)

// Result holds exactly one of a success value T or a failure error E.
// The variant is fixed at construction and the value is immutable.
// E is opaque to this package; it does not have to satisfy error.
type Result[T, E any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       E
	isSuccess bool
}

func Success[T, E any](v T) Result[T, E] {
	return Result[T, E]{
		value:     v,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Failure[T, E any](err E) Result[T, E] {
	return Result[T, E]{
		err:       err,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// From converts a conventional (value, error) return into a Result.
func From[T any](v T, err error) Result[T, error] {
	if err != nil {
		return Failure[T, error](err)
	}
	return Success[T, error](v)
}

// SuccessFrom re-wraps the success value of from under a new failure type F,
// keeping the original stamp. Calling it on a failure result is a misuse and
// yields a success holding the zero T.
func SuccessFrom[F, T, E any](from Result[T, E]) Result[T, F] {
	return Result[T, F]{
		value:     from.value,
		isSuccess: true,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// FailureFrom re-wraps the failure error of from under a new value type U,
// keeping the original stamp. Calling it on a success result is a misuse and
// yields a failure holding the zero E.
func FailureFrom[U, T, E any](from Result[T, E]) Result[U, E] {
	return Result[U, E]{
		err:       from.err,
		isSuccess: false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

func (r Result[T, E]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T, E]) IsFailure() bool {
	return !r.isSuccess
}

// Value returns the success value, or the zero T on a failure.
func (r Result[T, E]) Value() T {
	return r.value
}

// Err returns the failure error, or the zero E on a success.
func (r Result[T, E]) Err() E {
	return r.err
}

// SuccessValue returns the success value as an optional, empty on failure.
func (r Result[T, E]) SuccessValue() optional.Value[T] {
	if r.isSuccess {
		return optional.Some(r.value)
	}
	return optional.None[T]()
}

// FailureValue returns the failure error as an optional, empty on success.
func (r Result[T, E]) FailureValue() optional.Value[E] {
	if r.isSuccess {
		return optional.None[E]()
	}
	return optional.Some(r.err)
}

// Seq returns a restartable sequence of the success value: one element on
// success, none on failure.
func (r Result[T, E]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		if r.isSuccess {
			yield(r.value)
		}
	}
}

func (r Result[T, E]) UnwrapOr(def T) T {
	if r.isSuccess {
		return r.value
	}
	return def
}

func (r Result[T, E]) UnwrapOrElse(onFailure func(err E) T) T {
	if r.isSuccess {
		return r.value
	}
	return onFailure(r.err)
}

// Unwrap returns the success value or panics with *EmptyValueError.
func (r Result[T, E]) Unwrap() T {
	if r.isSuccess {
		return r.value
	}
	panic(&EmptyValueError{})
}

// Expect returns the success value or panics with *EmptyValueError
// carrying msg.
func (r Result[T, E]) Expect(msg string) T {
	if r.isSuccess {
		return r.value
	}
	panic(&EmptyValueError{Message: msg})
}

// UnwrapFailure returns the failure error or panics with *EmptyValueError
// carrying the stringified success value.
func (r Result[T, E]) UnwrapFailure() E {
	if r.isSuccess {
		panic(&EmptyValueError{Message: fmt.Sprintf("%v", r.value)})
	}
	return r.err
}

// UnwrapOrPanic returns the success value or panics with the stored error
// itself, unwrapped. This is the only bridge from a failure back into
// panic-style flow; the unwrap family above never surfaces E.
func (r Result[T, E]) UnwrapOrPanic() T {
	if r.isSuccess {
		return r.value
	}
	panic(r.err)
}

// Equal reports whether both results hold the same variant with structurally
// equal payloads. The stamp is ignored.
func (r Result[T, E]) Equal(other Result[T, E]) bool {
	return Equal(r, other)
}

// Id returns the unique id assigned at construction.
func (r Result[T, E]) Id() uuid.UUID {
	return r.id
}

// CreatedAt time creation (UTC).
func (r Result[T, E]) CreatedAt() time.Time {
	return r.createdAt
}
