package mass

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/ib-77/ropfn/internal/try"
	"github.com/ib-77/ropfn/pkg/rop"
	"github.com/ib-77/ropfn/pkg/rop/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

var errUhOh = errors.New("Uh oh!")

func identity(_ context.Context, n int) Future[int] { return Resolved(n) }
func inc(_ context.Context, n int) Future[int]      { return Resolved(n + 1) }
func twice(_ context.Context, n int) Future[int]    { return Resolved(n * 2) }
func reject(_ context.Context, _ int) Future[int]   { return Rejected[int](errUhOh) }

func TestPipe_Sequence(t *testing.T) {
	t.Parallel()

	res := Pipe(identity, inc, twice).Run(context.Background(), 10).Await()

	require.True(t, res.IsSuccess())
	assert.Equal(t, 22, res.Result())
}

func TestPipe_ShortCircuitOnRejection(t *testing.T) {
	t.Parallel()

	calls := 0
	counted := func(ctx context.Context, n int) Future[int] {
		calls++
		return inc(ctx, n)
	}

	res := Pipe(identity, reject, counted, twice).Run(context.Background(), 10).Await()

	require.True(t, res.IsFailure())
	assert.Same(t, errUhOh, res.Err())
	assert.Zero(t, calls)
}

func TestPipe_Empty(t *testing.T) {
	t.Parallel()

	res := Pipe[int]().Run(context.Background(), 5).Await()
	assert.Equal(t, 5, res.Result())
}

func TestPipe_StepsDoNotOverlap(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	var events []string
	record := func(e string) {
		mu.Lock()
		defer mu.Unlock()
		events = append(events, e)
	}

	step := func(name string) Step[int] {
		return Lift(func(ctx context.Context, n int) (int, error) {
			record("start " + name)
			time.Sleep(5 * time.Millisecond)
			record("end " + name)
			return n + 1, nil
		})
	}

	res := Pipe(step("a"), step("b"), step("c")).Run(context.Background(), 0).Await()

	require.Equal(t, 3, res.Result())
	assert.Equal(t, []string{
		"start a", "end a",
		"start b", "end b",
		"start c", "end c",
	}, events)
}

func TestPipe_CapturesPanicsAndNilFutures(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	panicking := func(context.Context, int) Future[int] { panic("no future") }
	res := Pipe(identity, panicking).Run(ctx, 1).Await()
	var perr try.PanicError
	require.ErrorAs(t, res.Err(), &perr)
	assert.Equal(t, "no future", perr.Value)

	nilFuture := func(context.Context, int) Future[int] { return nil }
	res = Pipe(nilFuture).Run(ctx, 1).Await()
	assert.ErrorIs(t, res.Err(), ErrNilFuture)

	res = Pipe[int](nil).Run(ctx, 1).Await()
	assert.ErrorIs(t, res.Err(), rop.ErrNilFunc)

	lifted := Lift(func(context.Context, int) (int, error) { panic(errUhOh) })
	res = Pipe(lifted).Run(ctx, 1).Await()
	assert.ErrorIs(t, res.Err(), errUhOh)
}

func TestPipe_DoneContextStopsBeforeNextStep(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	calls := 0
	cancelling := Lift(func(ctx context.Context, n int) (int, error) {
		cancel()
		return n + 1, nil
	})
	counted := func(ctx context.Context, n int) Future[int] {
		calls++
		return Resolved(n)
	}

	res := Pipe(cancelling, counted).Run(ctx, 1).Await()

	assert.ErrorIs(t, res.Err(), context.Canceled)
	assert.Zero(t, calls)
}

func TestPipe_LogsFailedStep(t *testing.T) {
	t.Parallel()

	obs, logs := observer.New(zap.DebugLevel)
	Pipe(reject, inc).With(core.WithLogger(zap.New(obs))).Await(context.Background(), 1)

	entries := logs.FilterMessage("async step failed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(0), entries[0].ContextMap()["step"])
}

func TestCatchAsync(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	upToFive := func(n int) func(context.Context) (int, error) {
		return func(context.Context) (int, error) {
			if n > 5 {
				return 0, fmt.Errorf("oops")
			}
			return n, nil
		}
	}

	var mu sync.Mutex
	calls := 0
	hook := func() {
		mu.Lock()
		defer mu.Unlock()
		calls++
	}

	failed := CatchAsync(ctx, upToFive(7), hook).Await()
	assert.EqualError(t, failed.Err(), "oops")

	ok := CatchAsync(ctx, upToFive(3), hook).Await()
	assert.Equal(t, 3, ok.Result())

	noHook := CatchAsync(ctx, upToFive(3), nil).Await()
	assert.Equal(t, 3, noHook.Result())

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 2, calls)
}

func TestCatchAsync_HookRunsBeforeSettle(t *testing.T) {
	t.Parallel()

	hooked := false
	res := CatchAsync(context.Background(), func(context.Context) (int, error) {
		return 1, nil
	}, func() { hooked = true }).Await()

	assert.True(t, hooked)
	assert.Equal(t, 1, res.Result())
}

func TestFuture_Await(t *testing.T) {
	t.Parallel()

	var nilFuture Future[int]
	assert.ErrorIs(t, nilFuture.Await().Err(), ErrNilFuture)

	f := Resolved(1)
	assert.Equal(t, 1, f.Await().Result())
	assert.ErrorIs(t, f.Await().Err(), ErrNilFuture)

	res := Go(context.Background(), func(context.Context) (string, error) { return "done", nil }).Await()
	assert.Equal(t, "done", res.Result())
}
