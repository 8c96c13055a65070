package jobs

import (
	"context"
	"time"
)

// DefaultPollInterval is used by Wait and Watch when no interval is given.
const DefaultPollInterval = 5 * time.Second

// WaitOptions controls Wait.
type WaitOptions struct {
	// Timeout bounds the wait. Nil means wait until the job completes.
	// The remaining budget is decremented by PollInterval per iteration
	// rather than by measured elapsed time, so the actual wall-clock bound
	// is approximate: it may overshoot by up to one poll interval of
	// refresh latency, or undershoot since refresh time is not counted.
	Timeout *time.Duration
	// PollInterval is the sleep between refreshes. Defaults to
	// DefaultPollInterval when zero or negative.
	PollInterval time.Duration
}

// Wait blocks until the job reaches terminal state or the timeout budget is
// exhausted. It returns true when the job completed, whether the job itself
// succeeded or failed, and false when the budget ran out first. The budget
// is checked before each sleep, so a zero timeout gives up after a single
// refresh. Provider failures and context cancellation abort the wait with
// an error.
func (h *Handle) Wait(ctx context.Context, opts WaitOptions) (bool, error) {
	poll := opts.PollInterval
	if poll <= 0 {
		poll = DefaultPollInterval
	}

	var remaining time.Duration
	if opts.Timeout != nil {
		remaining = *opts.Timeout
	}

	for {
		complete, err := h.IsComplete(ctx)
		if err != nil {
			return false, err
		}
		if complete {
			return true, nil
		}
		if opts.Timeout != nil {
			if remaining <= 0 {
				return false, nil
			}
			remaining -= poll
		}
		if err := sleep(ctx, poll); err != nil {
			return false, err
		}
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
