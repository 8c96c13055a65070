// Package jobs tracks the client-side lifecycle of asynchronous jobs
// submitted to the query service: cached completion state, the typed error
// model, and blocking/asynchronous wait primitives. Issuing the underlying
// status request is delegated to a StatusProvider.
package jobs

import (
	"context"
	"fmt"
)

// Handle is the client-side view of one remote job. It caches the job's
// terminal state: once the job completes, the cached state is final and no
// further provider calls are made.
//
// A Handle is not safe for concurrent use. Callers sharing one across
// goroutines must serialize access externally, or use Watch which owns its
// handle exclusively.
type Handle struct {
	provider StatusProvider
	jobID    string

	complete   bool
	fatalError *ErrorDetail
	errs       []ErrorDetail
}

// NewHandle returns a handle for the given job. No network call is made
// until the first accessor.
func NewHandle(provider StatusProvider, jobID string) *Handle {
	return &Handle{
		provider: provider,
		jobID:    jobID,
	}
}

// ID returns the job identifier.
func (h *Handle) ID() string {
	return h.jobID
}

func (h *Handle) String() string {
	return fmt.Sprintf("job %s", h.jobID)
}

// refresh fetches the latest status unless the job is already known to be
// terminal. Provider failures propagate unchanged; the cached state is left
// untouched on any failure.
func (h *Handle) refresh(ctx context.Context) error {
	if h.complete {
		return nil
	}

	resp, err := h.provider.GetStatus(ctx, h.jobID)
	if err != nil {
		return err
	}
	if resp == nil || resp.Status == nil {
		// Status not yet available. Still running, not an error.
		return nil
	}

	status := resp.Status
	if !resp.Done() {
		return nil
	}
	h.complete = true

	if status.ErrorResult != nil {
		detail := newErrorDetail(*status.ErrorResult)
		h.fatalError = &detail
	}
	if status.Errors != nil {
		details := make([]ErrorDetail, 0, len(status.Errors))
		for _, info := range status.Errors {
			details = append(details, newErrorDetail(info))
		}
		h.errs = details
	}
	return nil
}

// IsComplete reports whether the job has reached terminal state, refreshing
// the cached status first.
func (h *Handle) IsComplete(ctx context.Context) (bool, error) {
	if err := h.refresh(ctx); err != nil {
		return false, err
	}
	return h.complete, nil
}

// Failed reports whether the job finished with a fatal error. It is false
// while the job is still running: "not failed yet", never "unknown".
func (h *Handle) Failed(ctx context.Context) (bool, error) {
	if err := h.refresh(ctx); err != nil {
		return false, err
	}
	return h.complete && h.fatalError != nil, nil
}

// FatalError returns the error that failed the whole job, or nil while the
// job is running or when it succeeded.
func (h *Handle) FatalError(ctx context.Context) (*ErrorDetail, error) {
	if err := h.refresh(ctx); err != nil {
		return nil, err
	}
	return h.fatalError, nil
}

// Errors returns the job's recorded errors in service order, or nil while
// the job is running or when the service never reported an errors list.
// Partial errors do not make a job failed. The returned slice is a copy;
// the cached list stays fixed once the job is terminal.
func (h *Handle) Errors(ctx context.Context) ([]ErrorDetail, error) {
	if err := h.refresh(ctx); err != nil {
		return nil, err
	}
	if h.errs == nil {
		return nil, nil
	}
	out := make([]ErrorDetail, len(h.errs))
	copy(out, h.errs)
	return out, nil
}
