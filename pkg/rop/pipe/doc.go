// Package pipe composes synchronous steps into an error-capturing pipeline.
//
// The input is wrapped as a success Result and folded over the steps left to
// right. The first step that returns an error or panics turns the Result into
// a failure; later steps are never invoked and the failure is returned as is.
package pipe
