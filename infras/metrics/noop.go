package metrics

import (
	"net/http"
	"time"
)

type noop struct{}

// NewNoop returns a Metrics that records nothing. Used when metrics are disabled and in tests.
func NewNoop() Metrics {
	return noop{}
}

func (noop) ObserveRequest(_, _ string, _ int, _ time.Duration) {}

func (noop) SetOccupancyRate(_ int) {}

func (noop) SetGuests(_ string, _ int) {}

func (noop) IncSubmission(_ string) {}

func (noop) Handler() http.Handler {
	return http.NotFoundHandler()
}
