// Package lite provides lightweight fan-out/fan-in helpers.
//
// Common usage:
// - RunAll/RunMap: start a named set of operations at once and collect one
//   Settled per name after all of them finish; a failure never stops siblings
// - Stream: apply an asynchronous pipeline to every value of a channel with a
//   fixed number of lines
package lite
