package observability

import (
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/danmuck/ocppcodec/internal/protocol"
	"github.com/danmuck/ocppcodec/internal/protocol/catalog"
	"github.com/danmuck/ocppcodec/internal/protocol/envelope"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ocppcodec",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)
	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "ocppcodec",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
	codecFrames = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ocppcodec",
			Subsystem: "codec",
			Name:      "frames_total",
			Help:      "Frames encoded or decoded.",
		},
		[]string{"op", "version", "message_type", "action", "result"},
	)
	codecDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "ocppcodec",
			Subsystem: "codec",
			Name:      "duration_seconds",
			Help:      "Frame encode/decode duration in seconds.",
			Buckets:   []float64{.00001, .00005, .0001, .0005, .001, .005, .01, .05},
		},
		[]string{"op", "version"},
	)
	codecErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ocppcodec",
			Subsystem: "codec",
			Name:      "errors_total",
			Help:      "Failed frame operations by error class.",
		},
		[]string{"op", "version", "class"},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(httpRequests, httpDuration, codecFrames, codecDuration, codecErrors)
	})
}

func RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	RegisterMetrics()
	statusLabel := strconv.Itoa(status)
	httpRequests.WithLabelValues(method, path, statusLabel).Inc()
	httpDuration.WithLabelValues(method, path, statusLabel).Observe(duration.Seconds())
}

// RecordCodec counts one codec operation. Actions the catalog does not know
// are folded into "unknown" to bound label cardinality.
func RecordCodec(e envelope.Event) {
	RegisterMetrics()
	op := string(e.Op)
	version := e.Version.String()

	messageType := "unknown"
	if e.MessageType != 0 {
		messageType = e.MessageType.String()
	}
	action := actionLabel(e.Version, e.Action)
	result := "ok"
	if e.Err != nil {
		result = "error"
		codecErrors.WithLabelValues(op, version, errorClass(e.Err)).Inc()
	}

	codecFrames.WithLabelValues(op, version, messageType, action, result).Inc()
	codecDuration.WithLabelValues(op, version).Observe(e.Duration.Seconds())
}

// actionLabel keeps the action label bounded by the version's catalog; any
// name the catalog does not define is counted as "unknown".
func actionLabel(version protocol.Version, action string) string {
	if action == "" {
		return "none"
	}
	cat, ok := catalog.For(version)
	if !ok {
		return "unknown"
	}
	if _, ok := cat.Action(action); !ok {
		return "unknown"
	}
	return action
}

func errorClass(err error) string {
	if class := protocol.ErrorClass(err); class != "" {
		return class
	}
	if errors.Is(err, envelope.ErrFrameTooLarge) {
		return "FrameTooLarge"
	}
	return "Other"
}

// CodecObserver feeds envelope.Codec events into the codec metrics.
type CodecObserver struct{}

func (CodecObserver) Observe(e envelope.Event) { RecordCodec(e) }
