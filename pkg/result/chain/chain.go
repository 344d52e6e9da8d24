package chain

import (
	"github.com/ib-77/result/pkg/result"
)

// Chain wraps a result.Result to enable fluent composition.
type Chain[T, E any] struct {
	res result.Result[T, E]
}

// Start creates a new chain from a result.Result.
func Start[T, E any](r result.Result[T, E]) Chain[T, E] {
	return Chain[T, E]{res: r}
}

// FromValue creates a new chain from a successful value, with error failures.
func FromValue[T any](v T) Chain[T, error] {
	return Start(result.Success[T, error](v))
}

// FromError creates a new failed chain.
func FromError[T any](err error) Chain[T, error] {
	return Start(result.Failure[T, error](err))
}

// Result returns the underlying result.Result.
func (c Chain[T, E]) Result() result.Result[T, E] {
	return c.res
}

// Then composes functions that already return result.Result[T, E].
func (c Chain[T, E]) Then(onSuccess func(v T) result.Result[T, E]) Chain[T, E] {
	if c.res.IsFailure() {
		return c
	}
	return Chain[T, E]{res: onSuccess(c.res.Value())}
}

// Map transforms the successful value to a new value.
func (c Chain[T, E]) Map(onSuccess func(v T) T) Chain[T, E] {
	if c.res.IsFailure() {
		return c
	}
	return Chain[T, E]{res: result.Success[T, E](onSuccess(c.res.Value()))}
}

// MapFailure transforms the failure error to a new error.
func (c Chain[T, E]) MapFailure(onFailure func(err E) E) Chain[T, E] {
	if c.res.IsSuccess() {
		return c
	}
	return Chain[T, E]{res: result.Failure[T, E](onFailure(c.res.Err()))}
}

func (c Chain[T, E]) RepeatUntil(onSuccess func(v T) result.Result[T, E],
	until func(v T) bool) Chain[T, E] {

	if c.res.IsFailure() {
		return c
	}

	for {
		c = c.Then(onSuccess)

		if c.res.IsFailure() || until(c.res.Value()) {
			return c
		}
	}
}

func (c Chain[T, E]) While(onSuccess func(v T) result.Result[T, E],
	while func(v T) bool) Chain[T, E] {

	for c.res.IsSuccess() && while(c.res.Value()) {
		c = c.Then(onSuccess)
	}
	return c
}

// Or returns c if it succeeded, the alternative otherwise.
func (c Chain[T, E]) Or(alternative Chain[T, E]) Chain[T, E] {
	if c.res.IsSuccess() {
		return c
	}
	return alternative
}

// And returns c if it failed, the required chain otherwise.
func (c Chain[T, E]) And(required Chain[T, E]) Chain[T, E] {
	if c.res.IsFailure() {
		return c
	}
	return required
}

// Ensure triggers side effects for success/failure without changing the result.
func (c Chain[T, E]) Ensure(onSuccess func(v T), onFailure func(err E)) Chain[T, E] {
	if c.res.IsFailure() {
		if onFailure != nil {
			onFailure(c.res.Err())
		}
		return c
	}

	if onSuccess != nil {
		onSuccess(c.res.Value())
	}
	return c
}

func (c Chain[T, E]) UnwrapOr(def T) T {
	return c.res.UnwrapOr(def)
}

// Then chains a function that switches the chain to a new value type.
func Then[T, U, E any](c Chain[T, E], onSuccess func(v T) result.Result[U, E]) Chain[U, E] {
	return Chain[U, E]{res: result.AndThen(c.res, onSuccess)}
}

// Map chains a pure transformation to a new value type.
func Map[T, U, E any](c Chain[T, E], onSuccess func(v T) U) Chain[U, E] {
	return Chain[U, E]{res: result.Map(c.res, onSuccess)}
}

// ThenTry chains a function that returns (U, error), converting a non-nil
// error to a failure.
func ThenTry[T, U any](c Chain[T, error], try func(v T) (U, error)) Chain[U, error] {
	return Chain[U, error]{res: result.AndThen(c.res,
		func(v T) result.Result[U, error] {
			return result.From(try(v))
		})}
}

// Finally collapses the chain to a final value, delegating to result.Finally.
func Finally[T, E, U any](c Chain[T, E],
	onSuccess func(v T) U,
	onFailure func(err E) U) U {
	return result.Finally(c.res, onSuccess, onFailure)
}
