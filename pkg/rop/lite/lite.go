package lite

import (
	"context"

	"github.com/ib-77/ropfn/pkg/rop"
	"github.com/ib-77/ropfn/pkg/rop/core"
	"github.com/ib-77/ropfn/pkg/rop/solo"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Op is a named asynchronous operation. It reports failure by returning an
// error or panicking.
type Op[T any] func(ctx context.Context) (T, error)

// Named pairs an Op with its name.
type Named[T any] struct {
	Name string
	Op   Op[T]
}

func Name[T any](name string, op Op[T]) Named[T] {
	return Named[T]{Name: name, Op: op}
}

// RunAll starts every operation at once and waits for all of them to settle.
// When a name repeats, the later operation's outcome is kept.
func RunAll[T any](ctx context.Context, ops []Named[T], opts ...core.Option) *Settlements[T] {
	o := core.Apply(opts...)

	results := make([]rop.Settled[T], len(ops))
	var g errgroup.Group
	if o.Limit > 0 {
		g.SetLimit(o.Limit)
	}

	for i, named := range ops {
		g.Go(func() error {
			results[i] = settle(ctx, named, o)
			return nil
		})
	}
	_ = g.Wait()

	s := newSettlements[T](len(ops))
	for i, named := range ops {
		s.put(named.Name, results[i])
	}
	return s
}

// RunMap is RunAll for an unordered set of operations.
func RunMap[T any](ctx context.Context, ops map[string]Op[T], opts ...core.Option) map[string]rop.Settled[T] {
	named := make([]Named[T], 0, len(ops))
	for name, op := range ops {
		named = append(named, Name(name, op))
	}
	return RunAll(ctx, named, opts...).Map()
}

func settle[T any](ctx context.Context, named Named[T], o core.Options) rop.Settled[T] {
	start := o.Clock.Now()

	var res rop.Result[T]
	if named.Op == nil {
		res = rop.Fail[T](rop.ErrNilFunc)
	} else {
		res = solo.Catch(func() (T, error) { return named.Op(ctx) })
	}

	elapsed := o.Clock.Since(start)
	if res.IsFailure() {
		o.Logger.Debug("operation failed",
			zap.String("name", named.Name),
			zap.Duration("duration", elapsed),
			zap.Error(res.Err()))
	}
	return rop.Settle(res, elapsed)
}
