package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// AuthAttempts counts signup and login attempts by outcome.
	AuthAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inkwell_auth_attempts_total",
		Help: "Total number of signup and login attempts by operation and outcome",
	}, []string{"operation", "outcome"})

	// SessionDecodeFailures counts session cookies that failed verification.
	SessionDecodeFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "inkwell_session_decode_failures_total",
		Help: "Total number of session cookies that could not be verified",
	})

	// AccessDenied counts anonymous requests redirected away from protected routes.
	AccessDenied = promauto.NewCounter(prometheus.CounterOpts{
		Name: "inkwell_access_denied_total",
		Help: "Total number of anonymous requests rejected by the access guard",
	})

	// RecordOperations counts record mutations by kind and operation.
	RecordOperations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inkwell_record_operations_total",
		Help: "Total number of record operations by kind and operation",
	}, []string{"kind", "operation"})

	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "inkwell_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})

	// RedisErrors counts Redis errors by command.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inkwell_redis_errors_total",
		Help: "Total number of Redis errors by command",
	}, []string{"command"})

	// CacheLookups counts dashboard cache lookups by result (hit, miss, error).
	CacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inkwell_cache_lookups_total",
		Help: "Total number of dashboard cache lookups by result",
	}, []string{"result"})
)

// TrackQuery returns a function that records query latency when called (e.g. defer).
func TrackQuery(operation, table string) func() {
	start := time.Now()
	return func() {
		DatabaseQueryLatency.WithLabelValues(operation, table).Observe(time.Since(start).Seconds())
	}
}
