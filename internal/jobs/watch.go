package jobs

import (
	"context"
	"time"

	"github.com/lthibault/jitterbug/v2"
	"go.uber.org/zap"
)

// WatchOptions controls Watch.
type WatchOptions struct {
	// PollInterval between refreshes. Defaults to DefaultPollInterval.
	PollInterval time.Duration
	// Jitter spreads poll ticks to avoid aligned polling across many
	// watchers. Defaults to a 30ms normal jitter.
	Jitter jitterbug.Jitter
	// Logger for poll-level diagnostics. Defaults to zap.NewNop().
	Logger *zap.Logger
}

// WatchResult is delivered exactly once per Watch call.
type WatchResult struct {
	// Handle is the watched handle, terminal when Err is nil.
	Handle *Handle
	// Err is set when the context was cancelled or the provider failed.
	Err error
}

// Watch polls the job in a background goroutine and delivers one WatchResult
// when it reaches terminal state, the provider fails, or ctx is cancelled.
// The watcher takes ownership of the handle until the result is delivered;
// callers must not touch it in between. This is the asynchronous counterpart
// to Wait: suspension happens on the ticker instead of a blocking sleep.
func Watch(ctx context.Context, h *Handle, opts WatchOptions) <-chan WatchResult {
	poll := opts.PollInterval
	if poll <= 0 {
		poll = DefaultPollInterval
	}
	jitter := opts.Jitter
	if jitter == nil {
		jitter = &jitterbug.Norm{Stdev: 30 * time.Millisecond}
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	out := make(chan WatchResult, 1)
	go func() {
		defer close(out)

		ticker := jitterbug.New(poll, jitter)
		defer ticker.Stop()

		for {
			complete, err := h.IsComplete(ctx)
			if err != nil {
				out <- WatchResult{Handle: h, Err: err}
				return
			}
			if complete {
				out <- WatchResult{Handle: h}
				return
			}
			logger.Debug("job still running", zap.String("job_id", h.ID()))

			select {
			case <-ctx.Done():
				out <- WatchResult{Handle: h, Err: ctx.Err()}
				return
			case <-ticker.C:
			}
		}
	}()
	return out
}
