package jobs

import (
	"fmt"

	"github.com/querylab/queryjob/api/v1alpha1"
)

// ErrorDetail is one error recorded against a job, fatal or partial.
// It is a plain value: copy freely, never mutate. Each field is nil when the
// service omitted it.
type ErrorDetail struct {
	Location *string
	Message  *string
	Reason   *string
}

func newErrorDetail(info v1alpha1.ErrorInfo) ErrorDetail {
	return ErrorDetail{
		Location: info.Location,
		Message:  info.Message,
		Reason:   info.Reason,
	}
}

func (e ErrorDetail) String() string {
	deref := func(s *string) string {
		if s == nil {
			return "<none>"
		}
		return *s
	}
	return fmt.Sprintf("reason=%s location=%s message=%s",
		deref(e.Reason), deref(e.Location), deref(e.Message))
}
