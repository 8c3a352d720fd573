package client

import (
	"fmt"

	"github.com/VictoriaMetrics/metrics"
	"github.com/puzpuzpuz/xsync/v3"
)

// callMetrics bundles the per-method metric handles so the hot path does a
// single map lookup instead of three name formats per call.
type callMetrics struct {
	calls    *metrics.Counter
	errors   *metrics.Counter
	duration *metrics.Histogram
}

// methodMetrics is process-wide: clients are per-goroutine, metrics are
// shared, hence the concurrent map.
var methodMetrics = xsync.NewMapOf[string, *callMetrics]()

func getCallMetrics(method string) *callMetrics {
	m, _ := methodMetrics.LoadOrCompute(method, func() *callMetrics {
		return &callMetrics{
			calls:    metrics.GetOrCreateCounter(fmt.Sprintf(`ucall_client_calls_total{method=%q}`, method)),
			errors:   metrics.GetOrCreateCounter(fmt.Sprintf(`ucall_client_call_errors_total{method=%q}`, method)),
			duration: metrics.GetOrCreateHistogram(fmt.Sprintf(`ucall_client_call_duration_seconds{method=%q}`, method)),
		}
	})
	return m
}
