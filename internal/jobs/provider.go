package jobs

import (
	"context"

	"github.com/querylab/queryjob/api/v1alpha1"
)

// StatusProvider fetches the current status of a remote job. Implementations
// own transport, authentication and endpoint construction; the handle only
// interprets the payload.
//
//go:generate moq -fmt=goimports -out zz_generated_statusprovider.go . StatusProvider
type StatusProvider interface {
	GetStatus(ctx context.Context, jobID string) (*v1alpha1.StatusResponse, error)
}
