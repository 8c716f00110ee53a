package mass

import (
	"context"

	"github.com/ib-77/ropfn/internal/try"
	"github.com/ib-77/ropfn/pkg/rop"
	"github.com/ib-77/ropfn/pkg/rop/core"
	"go.uber.org/zap"
)

// Step starts asynchronous work on in and returns its Future.
type Step[T any] func(ctx context.Context, in T) Future[T]

// Lift turns a blocking function into a Step that runs it in a goroutine.
func Lift[T any](fn func(ctx context.Context, in T) (T, error)) Step[T] {
	return func(ctx context.Context, in T) Future[T] {
		return Trying(ctx, rop.Success(in), fn)
	}
}

// Pipeline is an ordered list of asynchronous steps.
type Pipeline[T any] struct {
	steps []Step[T]
	opts  core.Options
}

func Pipe[T any](steps ...Step[T]) *Pipeline[T] {
	return &Pipeline[T]{
		steps: append([]Step[T](nil), steps...),
		opts:  core.Apply(),
	}
}

// With returns a copy of p configured with opts.
func (p *Pipeline[T]) With(opts ...core.Option) *Pipeline[T] {
	cp := *p
	cp.opts = p.opts.With(opts...)
	return &cp
}

// Run starts the fold in the background and returns a Future of the final
// Result. The Future always settles.
func (p *Pipeline[T]) Run(ctx context.Context, input T) Future[T] {
	ch := make(chan rop.Result[T], 1)

	go func() {
		defer close(ch)
		ch <- p.Await(ctx, input)
	}()

	return ch
}

// Await runs the fold on the calling goroutine.
func (p *Pipeline[T]) Await(ctx context.Context, input T) rop.Result[T] {
	log := p.opts.Logger
	acc := rop.Success(input)

	for i, step := range p.steps {
		if !acc.IsSuccess() {
			log.Debug("skipping remaining async steps",
				zap.Int("failed_at", i-1),
				zap.Int("skipped", len(p.steps)-i))
			break
		}
		if err := ctx.Err(); err != nil {
			acc = rop.Fail[T](err)
			log.Debug("context done before async step", zap.Int("step", i), zap.Error(err))
			continue
		}

		start := p.opts.Clock.Now()
		acc = p.await(ctx, step, acc.Result())
		if acc.IsFailure() {
			log.Debug("async step failed",
				zap.Int("step", i),
				zap.Duration("duration", p.opts.Clock.Since(start)),
				zap.Error(acc.Err()))
		}
	}
	return acc
}

func (p *Pipeline[T]) await(ctx context.Context, step Step[T], in T) rop.Result[T] {
	if step == nil {
		return rop.Fail[T](rop.ErrNilFunc)
	}

	f, err := try.Call(func() (Future[T], error) {
		return step(ctx, in), nil
	})
	if err != nil {
		return rop.Fail[T](err)
	}
	return f.Await()
}
