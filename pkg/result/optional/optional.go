package optional

// Value holds a T that may be absent. The zero Value is empty.
type Value[T any] struct {
	set bool
	v   T
}

func Some[T any](v T) Value[T] {
	return Value[T]{set: true, v: v}
}

func None[T any]() Value[T] {
	return Value[T]{}
}

// Of wraps v as present when ok is true, empty otherwise.
func Of[T any](v T, ok bool) Value[T] {
	if ok {
		return Some(v)
	}
	return None[T]()
}

func (o Value[T]) Ok() bool {
	return o.set
}

func (o Value[T]) Get() (T, bool) {
	return o.v, o.set
}

// MustGet returns the contained value and panics when empty.
func (o Value[T]) MustGet() T {
	if !o.set {
		panic("optional: not set")
	}
	return o.v
}

// OrElse returns the contained value, or def when empty.
func (o Value[T]) OrElse(def T) T {
	if o.set {
		return o.v
	}
	return def
}

// Map transforms the contained value; an empty optional stays empty and
// f is not invoked.
func Map[T, U any](o Value[T], f func(T) U) Value[U] {
	if !o.set {
		return None[U]()
	}
	return Some(f(o.v))
}
