package pipe

import (
	"context"

	"github.com/ib-77/ropfn/pkg/rop"
	"github.com/ib-77/ropfn/pkg/rop/core"
	"github.com/ib-77/ropfn/pkg/rop/solo"
	"go.uber.org/zap"
)

// Step transforms a value and may fail by returning an error or panicking.
type Step[T any] func(ctx context.Context, in T) (T, error)

// Plain adapts a function that cannot fail into a Step. fn may still panic.
func Plain[T any](fn func(T) T) Step[T] {
	return func(_ context.Context, in T) (T, error) {
		return fn(in), nil
	}
}

// Pipeline is an ordered list of steps.
type Pipeline[T any] struct {
	steps []Step[T]
	opts  core.Options
}

func New[T any](steps ...Step[T]) *Pipeline[T] {
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

// Len is the number of steps.
func (p *Pipeline[T]) Len() int {
	return len(p.steps)
}

// Run folds the steps over a success Result holding input.
func (p *Pipeline[T]) Run(ctx context.Context, input T) rop.Result[T] {
	acc := rop.Success(input)
	for i, step := range p.steps {
		if !acc.IsSuccess() {
			p.opts.Logger.Debug("skipping remaining pipeline steps",
				zap.Int("failed_at", i-1),
				zap.Int("skipped", len(p.steps)-i))
			break
		}
		if step == nil {
			acc = rop.Fail[T](rop.ErrNilFunc)
		} else {
			acc = solo.Try(ctx, acc, step)
		}
		if acc.IsFailure() {
			p.opts.Logger.Debug("pipeline step failed", zap.Int("step", i), zap.Error(acc.Err()))
		}
	}
	return acc
}

// Func is New(steps...).Run in closure form.
func Func[T any](steps ...Step[T]) func(ctx context.Context, input T) rop.Result[T] {
	return New(steps...).Run
}
