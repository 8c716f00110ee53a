package solo

import (
	"context"
	"errors"

	"github.com/ib-77/ropfn/internal/try"
	"github.com/ib-77/ropfn/pkg/rop"
)

func Succeed[T any](input T) rop.Result[T] {
	return rop.Success(input)
}

func Fail[T any](err error) rop.Result[T] {
	return rop.Fail[T](err)
}

// Catch invokes f in a protected scope. A returned error or a panic becomes
// the failure; otherwise the returned value becomes the success.
func Catch[T any](f func() (T, error)) rop.Result[T] {
	if f == nil {
		return rop.Fail[T](rop.ErrNilFunc)
	}
	return rop.FromTuple(try.Call(f))
}

// CatchFinally is Catch with a completion hook. always runs exactly once,
// after the outcome is known and before it is returned. A nil hook is skipped.
func CatchFinally[T any](f func() (T, error), always func()) rop.Result[T] {
	res := Catch(f)
	if always != nil {
		always()
	}
	return res
}

func Validate[T any](ctx context.Context, input T,
	validate func(ctx context.Context, in T) (isValid bool, errMsg string)) rop.Result[T] {
	return AndValidate(ctx, Succeed(input), validate)
}

func AndValidate[T any](ctx context.Context, input rop.Result[T],
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) rop.Result[T] {

	if input.IsSuccess() {
		if isValid, errMsg := validate(ctx, input.Result()); !isValid {
			return rop.Fail[T](errors.New(errMsg))
		}
	}
	return input
}

func Switch[In any, Out any](ctx context.Context,
	input rop.Result[In],
	onSuccess func(ctx context.Context, r In) rop.Result[Out]) rop.Result[Out] {

	if !input.IsSuccess() {
		return rop.FailFrom[In, Out](input)
	}

	out, err := try.Call(func() (rop.Result[Out], error) {
		return onSuccess(ctx, input.Result()), nil
	})
	if err != nil {
		return rop.Fail[Out](err)
	}
	return out
}

func Map[In any, Out any](ctx context.Context,
	input rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out) rop.Result[Out] {

	return Try(ctx, input, func(ctx context.Context, r In) (Out, error) {
		return onSuccess(ctx, r), nil
	})
}

// Try runs onTryExecute on a success value in a protected scope. Failures
// pass through without calling it.
func Try[In any, Out any](ctx context.Context, input rop.Result[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) rop.Result[Out] {

	if !input.IsSuccess() {
		return rop.FailFrom[In, Out](input)
	}

	return rop.FromTuple(try.Call(func() (Out, error) {
		return onTryExecute(ctx, input.Result())
	}))
}

func Tee[T any](ctx context.Context,
	input rop.Result[T],
	onSuccess func(ctx context.Context, r rop.Result[T])) rop.Result[T] {

	if input.IsSuccess() {
		onSuccess(ctx, input)
	}

	return input
}

func DoubleTee[T any](ctx context.Context, input rop.Result[T],
	onSuccess func(ctx context.Context, r T),
	onError func(ctx context.Context, err error)) rop.Result[T] {

	if input.IsSuccess() {
		if onSuccess != nil {
			onSuccess(ctx, input.Result())
		}
	} else if onError != nil {
		onError(ctx, input.Err())
	}

	return input
}

func FailOnError[T any](ctx context.Context, input rop.Result[T],
	maybeErr func(ctx context.Context, in T) error) rop.Result[T] {
	if input.IsSuccess() {
		if err := maybeErr(ctx, input.Result()); err != nil {
			return rop.Fail[T](err)
		}
	}
	return input
}

func Finally[In, Out any](ctx context.Context, input rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err error) Out) Out {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Result())
	}
	return onError(ctx, input.Err())
}
