package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"booking-scheduler/internal/pkg/errs"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const Namespace = "booking_scheduler"

type Collector struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	InFlightGauge   prometheus.Gauge

	OperationsTotal   *prometheus.CounterVec
	OperationDuration *prometheus.HistogramVec
	BookingsByStatus  *prometheus.CounterVec

	NotificationsTotal   *prometheus.CounterVec
	NotificationsDropped prometheus.Counter
}

func NewCollector() *Collector {
	return NewCollectorWith(prometheus.DefaultRegisterer)
}

// NewCollectorWith registers on reg; tests pass a fresh registry.
func NewCollectorWith(reg prometheus.Registerer) *Collector {
	f := promauto.With(reg)
	return &Collector{
		RequestsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests by method, path, and status code.",
		}, []string{"method", "path", "status"}),

		RequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency distribution.",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0},
		}, []string{"method", "path", "status"}),

		InFlightGauge: f.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Subsystem: "http",
			Name:      "in_flight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		}),

		OperationsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "scheduler",
			Name:      "operations_total",
			Help:      "Scheduler operations by operation and result code.",
		}, []string{"operation", "result"}),

		OperationDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace,
			Subsystem: "scheduler",
			Name:      "operation_duration_seconds",
			Help:      "Scheduler operation latency including lock waits and retries.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5},
		}, []string{"operation"}),

		BookingsByStatus: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "scheduler",
			Name:      "transitions_total",
			Help:      "Bookings entering each status.",
		}, []string{"status"}),

		NotificationsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "notify",
			Name:      "events_total",
			Help:      "Lifecycle events delivered by sink and outcome.",
		}, []string{"sink", "result"}),

		NotificationsDropped: f.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "notify",
			Name:      "dropped_total",
			Help:      "Events dropped due to a full queue. Alert if non-zero.",
		}),
	}
}

// ObserveOperation records one scheduler call; result is "ok" or the error code.
func (c *Collector) ObserveOperation(operation string, started time.Time, err error) {
	if c == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = strings.ToLower(string(errs.CodeOf(err)))
	}
	c.OperationsTotal.WithLabelValues(operation, result).Inc()
	c.OperationDuration.WithLabelValues(operation).Observe(time.Since(started).Seconds())
}

func (c *Collector) ObserveTransition(status string) {
	if c == nil {
		return
	}
	c.BookingsByStatus.WithLabelValues(status).Inc()
}

func (c *Collector) ObserveRequest(method, path string, status int, elapsed time.Duration) {
	if c == nil {
		return
	}
	code := strconv.Itoa(status)
	c.RequestsTotal.WithLabelValues(method, path, code).Inc()
	c.RequestDuration.WithLabelValues(method, path, code).Observe(elapsed.Seconds())
}

func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
