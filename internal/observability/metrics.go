package observability

import (
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/danmuck/podctl/internal/pod"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "podctl",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests.",
		},
		[]string{"service", "method", "path", "status"},
	)
	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "podctl",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"service", "method", "path", "status"},
	)
	decodeTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "podctl",
			Subsystem: "decode",
			Name:      "total",
			Help:      "Decoded POD buffers by outcome.",
		},
		[]string{"source", "result"},
	)
	decodeNodeErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "podctl",
			Subsystem: "decode",
			Name:      "node_errors_total",
			Help:      "Node errors reported while decoding, by error kind.",
		},
		[]string{"source", "kind"},
	)
	decodeBytes = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "podctl",
			Subsystem: "decode",
			Name:      "bytes",
			Help:      "Size of decoded POD buffers in bytes.",
			Buckets:   prometheus.ExponentialBuckets(16, 4, 8),
		},
		[]string{"source"},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(httpRequests, httpDuration, decodeTotal, decodeNodeErrors, decodeBytes)
	})
}

func RecordHTTPRequest(service, method, path string, status int, duration time.Duration) {
	RegisterMetrics()
	statusLabel := strconv.Itoa(status)
	httpRequests.WithLabelValues(service, method, path, statusLabel).Inc()
	httpDuration.WithLabelValues(service, method, path, statusLabel).Observe(duration.Seconds())
}

// RecordDecode counts one decode of size bytes and classifies its node
// errors.
func RecordDecode(source string, size int, nodeErrs []error) {
	RegisterMetrics()
	result := "ok"
	if len(nodeErrs) > 0 {
		result = "error"
	}
	decodeTotal.WithLabelValues(source, result).Inc()
	decodeBytes.WithLabelValues(source).Observe(float64(size))
	for _, err := range nodeErrs {
		decodeNodeErrors.WithLabelValues(source, ErrorKind(err)).Inc()
	}
}

// ErrorKind maps a node error to its metric label.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, pod.ErrMalformedLength):
		return "malformed_length"
	case errors.Is(err, pod.ErrUnsupportedKind):
		return "unsupported_kind"
	case errors.Is(err, pod.ErrRecursionLimit):
		return "recursion_limit"
	default:
		return "other"
	}
}
