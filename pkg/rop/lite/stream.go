package lite

import (
	"context"

	"github.com/ib-77/ropfn/pkg/rop"
	"github.com/ib-77/ropfn/pkg/rop/core"
	"github.com/ib-77/ropfn/pkg/rop/mass"
)

// Stream runs pipeline over every value received from inputCh on `lines`
// workers and emits one Result per value. Output order follows completion,
// not input order. The returned channel closes after inputCh is closed and
// drained, or once ctx is done.
func Stream[T any](ctx context.Context, inputCh <-chan T, pipeline *mass.Pipeline[T], lines int) <-chan rop.Result[T] {
	return core.Lines(ctx, inputCh,
		func(ctx context.Context, in T) rop.Result[T] {
			return pipeline.Await(ctx, in)
		}, nil, lines)
}

// StreamSlice is Stream over a slice, collecting every Result.
func StreamSlice[T any](ctx context.Context, values []T, pipeline *mass.Pipeline[T], lines int) []rop.Result[T] {
	return core.FromChanMany(ctx, Stream(ctx, core.ToChanMany(ctx, values), pipeline, lines))
}
