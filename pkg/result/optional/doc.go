// Package optional provides a minimal optional-value type used by the
// result package to expose the possibly-absent side of a Result.
//
// Highlights:
// - Some/None/Of: construct a Value[T]
// - Ok/Get: query presence and read the value
// - MustGet: read the value, panicking when empty
// - OrElse: read the value with a default
// - Map: transform the value when present
//
// Value[T] is comparable whenever T is, so tests can use plain equality.
package optional
