// Package metrics provides Prometheus metrics for observability.
// Metrics are organized by domain: HTTP requests, catalog imports, and database operations.
package metrics

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	namespace = "florify_catalog"
)

var (
	// HTTP metrics - track request volume and latency
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests by method, path, and status code",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "Number of HTTP requests currently being processed",
		},
	)

	// Analysis metrics - track upload parsing and reconciliation
	AnalysesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "analysis",
			Name:      "total",
			Help:      "Total number of analysed uploads by result",
		},
		[]string{"result"},
	)

	AnalysisDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "analysis",
			Name:      "duration_seconds",
			Help:      "Time spent parsing and reconciling an upload",
			Buckets:   []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
	)

	OutcomesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "analysis",
			Name:      "outcomes_total",
			Help:      "Total number of classified rows by outcome kind",
		},
		[]string{"kind"},
	)

	// Batch metrics - track applied imports
	BatchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "batches",
			Name:      "total",
			Help:      "Total number of import batches by final status",
		},
		[]string{"status"},
	)

	BatchesInProgress = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "batches",
			Name:      "in_progress",
			Help:      "Number of import batches currently being applied",
		},
	)

	ApplyDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "batches",
			Name:      "apply_duration_seconds",
			Help:      "Import batch apply duration in seconds",
			Buckets:   []float64{.1, .5, 1, 2.5, 5, 10, 30, 60, 120, 300, 600},
		},
		[]string{"status"},
	)

	RecordsWritten = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "records",
			Name:      "written_total",
			Help:      "Total number of catalog records written by operation",
		},
		[]string{"operation"},
	)

	AuditWriteFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "audit",
			Name:      "write_failures_total",
			Help:      "Total number of audit entries that could not be persisted",
		},
	)

	// Streaming export metrics - track catalog exports
	StreamingExportsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "streaming",
			Name:      "exports_total",
			Help:      "Total number of streaming catalog exports by result",
		},
		[]string{"result"},
	)

	StreamingExportDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "streaming",
			Name:      "export_duration_seconds",
			Help:      "Streaming export duration in seconds",
			Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60},
		},
	)

	StreamingExportRecords = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "streaming",
			Name:      "records_total",
			Help:      "Total number of catalog records streamed",
		},
	)

	StreamingExportsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "streaming",
			Name:      "exports_in_flight",
			Help:      "Number of streaming exports currently in progress",
		},
	)

	// Database metrics - track database operation performance
	DBConnectionPoolSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "db",
			Name:      "pool_connections",
			Help:      "Database connection pool stats",
		},
		[]string{"state"},
	)
)

// PoolStats is an interface for getting pool statistics
// This allows for easier testing by mocking the pool stats
type PoolStats interface {
	TotalConns() int32
	IdleConns() int32
	AcquiredConns() int32
}

// PoolStatsProvider is an interface for providing pool stats
type PoolStatsProvider interface {
	Stat() PoolStats
}

type pgxPoolAdapter struct {
	pool *pgxpool.Pool
}

func (a *pgxPoolAdapter) Stat() PoolStats {
	return a.pool.Stat()
}

// PoolStatsCollector collects database pool statistics periodically
type PoolStatsCollector struct {
	provider PoolStatsProvider
	stopChan chan struct{}
	wg       sync.WaitGroup
}

// NewPoolStatsCollector creates a new pool stats collector
func NewPoolStatsCollector(pool *pgxpool.Pool) *PoolStatsCollector {
	return NewPoolStatsCollectorWithProvider(&pgxPoolAdapter{pool: pool})
}

// NewPoolStatsCollectorWithProvider creates a new pool stats collector with a custom provider (for testing)
func NewPoolStatsCollectorWithProvider(provider PoolStatsProvider) *PoolStatsCollector {
	return &PoolStatsCollector{
		provider: provider,
		stopChan: make(chan struct{}),
	}
}

// Start begins collecting pool stats every interval
func (c *PoolStatsCollector) Start(interval time.Duration) {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		c.collect()

		for {
			select {
			case <-ticker.C:
				c.collect()
			case <-c.stopChan:
				return
			}
		}
	}()
}

func (c *PoolStatsCollector) collect() {
	stats := c.provider.Stat()
	DBConnectionPoolSize.WithLabelValues("total").Set(float64(stats.TotalConns()))
	DBConnectionPoolSize.WithLabelValues("idle").Set(float64(stats.IdleConns()))
	DBConnectionPoolSize.WithLabelValues("in_use").Set(float64(stats.AcquiredConns()))
}

// Stop stops the pool stats collector
func (c *PoolStatsCollector) Stop() {
	close(c.stopChan)
	c.wg.Wait()
}

// ObserveAnalysis records the result of analysing an upload. counts maps an
// outcome kind to the number of rows classified as such.
func ObserveAnalysis(result string, durationSeconds float64, counts map[string]int) {
	AnalysesTotal.WithLabelValues(result).Inc()
	AnalysisDuration.Observe(durationSeconds)
	for kind, n := range counts {
		if n > 0 {
			OutcomesTotal.WithLabelValues(kind).Add(float64(n))
		}
	}
}

// StartBatch increments the in-progress gauge for batch application.
func StartBatch() {
	BatchesInProgress.Inc()
}

// EndBatch records a finished batch application.
func EndBatch(status string, durationSeconds float64, inserted, updated int) {
	BatchesInProgress.Dec()
	BatchesTotal.WithLabelValues(status).Inc()
	ApplyDuration.WithLabelValues(status).Observe(durationSeconds)

	if inserted > 0 {
		RecordsWritten.WithLabelValues("insert").Add(float64(inserted))
	}
	if updated > 0 {
		RecordsWritten.WithLabelValues("update").Add(float64(updated))
	}
}

// ObserveAuditFailures counts audit entries lost to write errors.
func ObserveAuditFailures(n int) {
	if n > 0 {
		AuditWriteFailures.Add(float64(n))
	}
}

// Timer is a helper for measuring operation duration
type Timer struct {
	start time.Time
}

// NewTimer creates a new timer starting now
func NewTimer() *Timer {
	return &Timer{start: time.Now()}
}

// Seconds returns the elapsed time in seconds.
func (t *Timer) Seconds() float64 {
	return time.Since(t.start).Seconds()
}

// ObserveDuration records the elapsed time since the timer was created
func (t *Timer) ObserveDuration(observer prometheus.Observer) {
	observer.Observe(t.Seconds())
}

// LogHealthCheckMetrics logs database pool stats at debug level.
func LogHealthCheckMetrics(ctx context.Context, pool *pgxpool.Pool) {
	stats := pool.Stat()
	slog.DebugContext(ctx, "Database pool stats",
		slog.Int("total_conns", int(stats.TotalConns())),
		slog.Int("idle_conns", int(stats.IdleConns())),
		slog.Int("acquired_conns", int(stats.AcquiredConns())),
		slog.Int64("acquire_count", stats.AcquireCount()),
		slog.Int64("canceled_acquire_count", stats.CanceledAcquireCount()),
	)
}

// StartStreamingExport starts tracking a streaming export
func StartStreamingExport() {
	StreamingExportsInFlight.Inc()
}

// EndStreamingExport ends tracking a streaming export and records metrics
func EndStreamingExport(result string, durationSeconds float64, recordCount int) {
	StreamingExportsInFlight.Dec()
	StreamingExportsTotal.WithLabelValues(result).Inc()
	StreamingExportDuration.Observe(durationSeconds)
	if recordCount > 0 {
		StreamingExportRecords.Add(float64(recordCount))
	}
}
