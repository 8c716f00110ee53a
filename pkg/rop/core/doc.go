// Package core contains the plumbing shared by the pipeline packages:
// functional options (logger, clock, concurrency limit), channel helpers and
// the locomotive worker loop that drives a stage over an input channel. It
// does not define business logic of its own.
package core
