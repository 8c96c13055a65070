package jobs_test

import (
	"context"
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/querylab/queryjob/api/v1alpha1"
	"github.com/querylab/queryjob/internal/jobs"
)

var _ = Describe("Watch", func() {
	It("delivers the terminal handle", func() {
		provider := completesAfter(3)
		handle := jobs.NewHandle(provider, "job-1")

		result := <-jobs.Watch(context.TODO(), handle, jobs.WatchOptions{
			PollInterval: time.Millisecond,
			Jitter:       noJitter{},
		})
		Expect(result.Err).To(BeNil())
		Expect(result.Handle).To(Equal(handle))

		complete, err := result.Handle.IsComplete(context.TODO())
		Expect(err).To(BeNil())
		Expect(complete).To(BeTrue())
		Expect(provider.GetStatusCalls()).To(HaveLen(3))
	})

	It("delivers the provider failure", func() {
		transportErr := errors.New("boom")
		provider := &jobs.StatusProviderMock{
			GetStatusFunc: func(ctx context.Context, jobID string) (*v1alpha1.StatusResponse, error) {
				return nil, transportErr
			},
		}
		handle := jobs.NewHandle(provider, "job-1")

		result := <-jobs.Watch(context.TODO(), handle, jobs.WatchOptions{
			PollInterval: time.Millisecond,
			Jitter:       noJitter{},
		})
		Expect(result.Err).To(MatchError(transportErr))
	})

	It("stops when the context is cancelled", func() {
		provider := neverCompletes()
		handle := jobs.NewHandle(provider, "job-1")

		ctx, cancel := context.WithCancel(context.Background())
		out := jobs.Watch(ctx, handle, jobs.WatchOptions{
			PollInterval: time.Hour,
			Jitter:       noJitter{},
		})
		cancel()

		var result jobs.WatchResult
		Eventually(out, "5s").Should(Receive(&result))
		Expect(result.Err).To(MatchError(context.Canceled))
	})
})

type noJitter struct{}

func (noJitter) Jitter(d time.Duration) time.Duration {
	return d
}
