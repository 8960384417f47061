package watch

import (
	"context"
	"time"
)

// Debounce coalesces signals on in: one signal is emitted on the returned
// channel once in has been quiet for window. The output holds at most one
// pending signal, so a burst that arrives while the consumer is busy yields
// exactly one follow-up. The output is closed when ctx is done or in is
// closed, after flushing any pending burst.
func Debounce(ctx context.Context, in <-chan struct{}, window time.Duration) <-chan struct{} {
	out := make(chan struct{}, 1)

	go func() {
		defer close(out)

		var timer *time.Timer
		var fire <-chan time.Time
		stop := func() {
			if timer != nil {
				timer.Stop()
			}
		}
		defer stop()

		emit := func() {
			select {
			case out <- struct{}{}:
			default:
			}
		}

		for {
			select {
			case <-ctx.Done():
				return

			case _, ok := <-in:
				if !ok {
					if fire != nil {
						emit()
					}
					return
				}
				stop()
				timer = time.NewTimer(window)
				fire = timer.C

			case <-fire:
				fire = nil
				emit()
			}
		}
	}()

	return out
}
