package jobs_test

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/querylab/queryjob/api/v1alpha1"
	"github.com/querylab/queryjob/internal/jobs"
)

func durationPtr(d time.Duration) *time.Duration {
	return &d
}

// completesAfter returns a provider whose job turns DONE on the nth call.
func completesAfter(n int64) *jobs.StatusProviderMock {
	var calls int64
	return &jobs.StatusProviderMock{
		GetStatusFunc: func(ctx context.Context, jobID string) (*v1alpha1.StatusResponse, error) {
			if atomic.AddInt64(&calls, 1) >= n {
				return &v1alpha1.StatusResponse{Status: &v1alpha1.JobStatus{State: v1alpha1.JobStateDone}}, nil
			}
			return &v1alpha1.StatusResponse{}, nil
		},
	}
}

func neverCompletes() *jobs.StatusProviderMock {
	return &jobs.StatusProviderMock{
		GetStatusFunc: func(ctx context.Context, jobID string) (*v1alpha1.StatusResponse, error) {
			return &v1alpha1.StatusResponse{}, nil
		},
	}
}

var _ = Describe("Wait", func() {
	It("returns immediately when the job is already done", func() {
		provider := completesAfter(1)
		handle := jobs.NewHandle(provider, "job-1")

		completed, err := handle.Wait(context.TODO(), jobs.WaitOptions{PollInterval: time.Millisecond})
		Expect(err).To(BeNil())
		Expect(completed).To(BeTrue())
		Expect(provider.GetStatusCalls()).To(HaveLen(1))
	})

	It("polls until completion when no timeout is given", func() {
		provider := completesAfter(3)
		handle := jobs.NewHandle(provider, "job-1")

		completed, err := handle.Wait(context.TODO(), jobs.WaitOptions{PollInterval: time.Millisecond})
		Expect(err).To(BeNil())
		Expect(completed).To(BeTrue())
		Expect(provider.GetStatusCalls()).To(HaveLen(3))
	})

	It("gives up once the budget is exhausted, checking before each sleep", func() {
		provider := neverCompletes()
		handle := jobs.NewHandle(provider, "job-1")

		// Budget 10, poll 5: 10 -> 5 -> 0, then the check fires before a
		// third sleep. Two sleeps, three refreshes.
		completed, err := handle.Wait(context.TODO(), jobs.WaitOptions{
			Timeout:      durationPtr(10 * time.Millisecond),
			PollInterval: 5 * time.Millisecond,
		})
		Expect(err).To(BeNil())
		Expect(completed).To(BeFalse())
		Expect(provider.GetStatusCalls()).To(HaveLen(3))
	})

	It("gives up after a single refresh on a zero timeout", func() {
		provider := neverCompletes()
		handle := jobs.NewHandle(provider, "job-1")

		completed, err := handle.Wait(context.TODO(), jobs.WaitOptions{
			Timeout:      durationPtr(0),
			PollInterval: time.Millisecond,
		})
		Expect(err).To(BeNil())
		Expect(completed).To(BeFalse())
		Expect(provider.GetStatusCalls()).To(HaveLen(1))
	})

	It("completes within the budget when the job finishes in time", func() {
		provider := completesAfter(2)
		handle := jobs.NewHandle(provider, "job-1")

		completed, err := handle.Wait(context.TODO(), jobs.WaitOptions{
			Timeout:      durationPtr(10 * time.Millisecond),
			PollInterval: time.Millisecond,
		})
		Expect(err).To(BeNil())
		Expect(completed).To(BeTrue())
		Expect(provider.GetStatusCalls()).To(HaveLen(2))
	})

	It("propagates provider failures", func() {
		transportErr := errors.New("boom")
		provider := &jobs.StatusProviderMock{
			GetStatusFunc: func(ctx context.Context, jobID string) (*v1alpha1.StatusResponse, error) {
				return nil, transportErr
			},
		}
		handle := jobs.NewHandle(provider, "job-1")

		completed, err := handle.Wait(context.TODO(), jobs.WaitOptions{PollInterval: time.Millisecond})
		Expect(err).To(MatchError(transportErr))
		Expect(completed).To(BeFalse())
	})

	It("aborts with an error when the context is cancelled", func() {
		provider := neverCompletes()
		handle := jobs.NewHandle(provider, "job-1")

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		completed, err := handle.Wait(ctx, jobs.WaitOptions{PollInterval: time.Hour})
		Expect(err).To(MatchError(context.Canceled))
		Expect(completed).To(BeFalse())
	})
})
