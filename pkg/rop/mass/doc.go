// Package mass lifts solo primitives onto channels. A Future is a channel
// that delivers exactly one Result and is then closed; Go starts work and
// returns its Future, Await blocks until it settles.
//
// Pipe chains asynchronous steps strictly in order: a step is started only
// after the previous step's Future has settled, and the first failure skips
// every later step. The returned Future always resolves.
package mass
