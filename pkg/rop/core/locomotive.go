package core

import (
	"context"
	"sync"
)

// Locomotive pulls values from inputCh, runs engine on each and forwards the
// output to outCh until inputCh is closed or ctx is done. An engine call that
// has started is always awaited and its output delivered unless ctx is done
// while delivering.
func Locomotive[In, Out any](ctx context.Context, inputCh <-chan In, outCh chan<- Out,
	engine func(ctx context.Context, input In) Out,
	onDelivered func(ctx context.Context, out Out), wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case in, ok := <-inputCh:
			if !ok {
				return
			}

			pr := engine(ctx, in)

			select {
			case <-ctx.Done():
				return
			case outCh <- pr:
				if onDelivered != nil {
					onDelivered(ctx, pr)
				}
			}
		}
	}
}

// Lines runs engine on `lines` locomotives sharing inputCh and closes the
// returned channel once all of them stop.
func Lines[In, Out any](ctx context.Context, inputCh <-chan In,
	engine func(ctx context.Context, input In) Out,
	onDelivered func(ctx context.Context, out Out), lines int) <-chan Out {

	if lines < 1 {
		lines = 1
	}

	out := make(chan Out)
	wg := &sync.WaitGroup{}

	for range lines {
		wg.Add(1)
		go Locomotive(ctx, inputCh, out, engine, onDelivered, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}
