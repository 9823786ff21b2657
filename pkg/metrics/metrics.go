// Package metrics exposes Prometheus counters for outbound calls to the
// remote music providers. The counters live in the default registry so any
// embedding process that already serves /metrics picks them up; this module
// deliberately runs no exporter of its own.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	remoteRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "musicinfo_remote_requests_total",
		Help: "Outbound requests issued to remote music providers.",
	}, []string{"provider", "method"})

	remoteErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "musicinfo_remote_errors_total",
		Help: "Outbound remote requests that failed at the transport or API level.",
	}, []string{"provider", "method"})
)

// ObserveRequest records one outbound call to provider/method and, when err
// is non-nil, one failure. A remote reporting "not found" is a successful
// call and should be recorded with a nil error.
func ObserveRequest(provider, method string, err error) {
	remoteRequests.WithLabelValues(provider, method).Inc()
	if err != nil {
		remoteErrors.WithLabelValues(provider, method).Inc()
	}
}
