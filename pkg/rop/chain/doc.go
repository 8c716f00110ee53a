// Package chain provides a fluent wrapper around Result[T]
// for building synchronous Railway-Oriented chains using solo primitives.
//
// Unlike package pipe, every link may change the value type, so a chain can
// parse a string, look a record up and render it in one expression. The
// first failure skips every later link.
//
// Key operations:
// - Start/FromValue/Catch: begin a chain from a Result[T], a value or a protected call
// - Then: switch to a new Result[U] via a function
// - ThenTry: call a function (U, error) and convert error or panic to failure
// - Map: transform the successful value (T -> U)
// - Ensure/OnFailure: run side effects without changing the result
// - Finally: collapse the chain into a final value via handlers
package chain
