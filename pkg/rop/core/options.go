package core

import (
	"github.com/zoobzio/clockz"
	"go.uber.org/zap"
)

// Options are the settings shared by pipelines and runners.
type Options struct {
	Logger *zap.Logger
	Clock  clockz.Clock
	// Limit caps concurrently running operations. Zero or less means no limit.
	Limit int
}

type Option func(*Options)

// WithLogger sets the logger used for step and operation failures.
func WithLogger(logger *zap.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// WithClock sets the clock used to time operations.
func WithClock(clock clockz.Clock) Option {
	return func(o *Options) {
		o.Clock = clock
	}
}

// WithLimit caps the number of operations running at once.
func WithLimit(n int) Option {
	return func(o *Options) {
		o.Limit = n
	}
}

// Apply builds Options from the defaults and opts.
func Apply(opts ...Option) Options {
	return Options{}.With(opts...)
}

// With returns a copy of o with opts applied. Nil loggers and clocks fall
// back to zap.NewNop and clockz.RealClock.
func (o Options) With(opts ...Option) Options {
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	if o.Clock == nil {
		o.Clock = clockz.RealClock
	}
	return o
}
