package mass

import (
	"context"
	"errors"

	"github.com/ib-77/ropfn/pkg/rop"
	"github.com/ib-77/ropfn/pkg/rop/solo"
)

// ErrNilFuture is the failure awaited from a nil Future.
var ErrNilFuture = errors.New("mass: nil future")

// Future delivers one Result and is then closed.
type Future[T any] <-chan rop.Result[T]

// Await blocks until f settles. A nil or already drained Future yields a failure.
func (f Future[T]) Await() rop.Result[T] {
	if f == nil {
		return rop.Fail[T](ErrNilFuture)
	}
	res, ok := <-f
	if !ok {
		return rop.Fail[T](ErrNilFuture)
	}
	return res
}

// Settle wraps an already known Result in a Future.
func Settle[T any](r rop.Result[T]) Future[T] {
	ch := make(chan rop.Result[T], 1)
	ch <- r
	close(ch)
	return ch
}

func Resolved[T any](v T) Future[T] {
	return Settle(rop.Success(v))
}

func Rejected[T any](err error) Future[T] {
	return Settle(rop.Fail[T](err))
}

// Go starts fn in its own goroutine. Errors and panics settle the Future as
// a failure.
func Go[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) Future[T] {
	return CatchAsync(ctx, fn, nil)
}

// CatchAsync starts fn in a protected scope. always, when not nil, runs
// exactly once after the outcome is known and before the Future settles.
func CatchAsync[T any](ctx context.Context, fn func(ctx context.Context) (T, error), always func()) Future[T] {
	ch := make(chan rop.Result[T], 1)

	go func() {
		defer close(ch)

		var res rop.Result[T]
		if fn == nil {
			res = solo.CatchFinally[T](nil, always)
		} else {
			res = solo.CatchFinally(func() (T, error) { return fn(ctx) }, always)
		}
		ch <- res
	}()

	return ch
}

// Trying runs onTryExecute on the success value of input in its own
// goroutine. Failures settle immediately without calling it.
func Trying[In, Out any](ctx context.Context, input rop.Result[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) Future[Out] {

	if !input.IsSuccess() {
		return Settle(rop.FailFrom[In, Out](input))
	}

	ch := make(chan rop.Result[Out], 1)
	go func() {
		defer close(ch)
		ch <- solo.Try(ctx, input, onTryExecute)
	}()
	return ch
}
