// Package v1alpha1 defines the wire types exchanged with the query service's
// job status endpoint. Every field is optional on the wire; absence is
// meaningful (a job with no status block has not started reporting yet).
package v1alpha1

// JobState is the lifecycle state reported by the query service.
type JobState string

const (
	// JobStateDone is the only terminal state. Any other value, including
	// an absent state, means the job is still running.
	JobStateDone JobState = "DONE"
)

// ErrorInfo is a single error entry as reported by the service, either the
// fatal errorResult or one element of the errors list.
type ErrorInfo struct {
	Location *string `json:"location,omitempty"`
	Message  *string `json:"message,omitempty"`
	Reason   *string `json:"reason,omitempty"`
}

// JobStatus is the status block of a job resource.
type JobStatus struct {
	State       JobState    `json:"state,omitempty"`
	ErrorResult *ErrorInfo  `json:"errorResult,omitempty"`
	Errors      []ErrorInfo `json:"errors,omitempty"`
}

// StatusResponse is the payload returned by the job status endpoint.
// A nil Status means the service has not produced a status block yet.
type StatusResponse struct {
	Status *JobStatus `json:"status,omitempty"`
}

// Done reports whether the response carries a terminal state.
func (r *StatusResponse) Done() bool {
	return r != nil && r.Status != nil && r.Status.State == JobStateDone
}
