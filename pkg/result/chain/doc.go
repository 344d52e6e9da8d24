// Package chain provides a fluent wrapper around result.Result[T, E]
// for building synchronous, short-circuiting pipelines.
//
// Key operations:
// - Start/FromValue/FromError: begin a chain from a result or value
// - Then/ThenTry: compose result-returning or error-returning functions
// - Map/MapFailure: transform the active side
// - Ensure: trigger side effects without changing the result
// - Or/And: eager fallback and sequencing between chains
// - RepeatUntil/While: loop a step while the chain stays successful
// - Finally: reduce to a concrete value via handlers
//
// Steps that change the value type are package-level functions (Then, Map,
// ThenTry), since Go methods cannot introduce type parameters.
package chain
