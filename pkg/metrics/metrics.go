package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// HistogramBuckets are latency buckets in milliseconds.
var HistogramBuckets = []float64{
	5, 10, 25, 50, 75, 100, 150, 200, 300, 400, 500,
	750, 1000, 1500, 2000, 3000, 5000, 10000,
}

// Metric is a definition for the name, description, type, ID, and
// prometheus.Collector type (i.e. CounterVec, Summary, etc) of each metric
type Metric struct {
	MetricCollector prometheus.Collector
	ID              string
	Name            string
	Description     string
	Type            string
	Args            []string
}

// NewMetric associates prometheus.Collector based on Metric.Type
func NewMetric(m *Metric, subsystem string) prometheus.Collector {
	var metric prometheus.Collector
	switch m.Type {
	case "counter_vec":
		metric = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Subsystem: subsystem,
				Name:      m.Name,
				Help:      m.Description,
			},
			m.Args,
		)
	case "counter":
		metric = prometheus.NewCounter(
			prometheus.CounterOpts{
				Subsystem: subsystem,
				Name:      m.Name,
				Help:      m.Description,
			},
		)
	case "histogram_vec":
		metric = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Subsystem: subsystem,
				Name:      m.Name,
				Help:      m.Description,
				Buckets:   HistogramBuckets,
			},
			m.Args,
		)
	case "summary_vec":
		metric = prometheus.NewSummaryVec(
			prometheus.SummaryOpts{
				Subsystem: subsystem,
				Name:      m.Name,
				Help:      m.Description,
			},
			m.Args,
		)
	}
	return metric
}

// NotificationOutcomes counts gateway notifications by processing status.
var NotificationOutcomes = &Metric{
	ID:          "notifOutcome",
	Name:        "payment_notification_total",
	Description: "Gateway payment notifications partitioned by processing status.",
	Type:        "counter_vec",
	Args:        []string{"processing_status"},
}

// CheckoutAttempts counts checkout initiations by result.
var CheckoutAttempts = &Metric{
	ID:          "checkoutAttempt",
	Name:        "checkout_attempt_total",
	Description: "Checkout initiations partitioned by result.",
	Type:        "counter_vec",
	Args:        []string{"result"},
}

// MetricsBusinessProcess records business process latency.
var MetricsBusinessProcess = &Metric{
	ID:          "bpDur",
	Name:        "bp_dur_ms",
	Description: "process latency in milliseconds",
	Type:        "histogram_vec",
	Args:        []string{"type", "subtype"},
}

// BusinessMetrics are registered alongside the standard HTTP metrics.
var BusinessMetrics = []*Metric{NotificationOutcomes, CheckoutAttempts, MetricsBusinessProcess}

// IncNotificationOutcome is a no-op until the metric has been registered.
func IncNotificationOutcome(status string) {
	if c, ok := NotificationOutcomes.MetricCollector.(*prometheus.CounterVec); ok {
		c.WithLabelValues(status).Inc()
	}
}

// IncCheckoutAttempt is a no-op until the metric has been registered.
func IncCheckoutAttempt(result string) {
	if c, ok := CheckoutAttempts.MetricCollector.(*prometheus.CounterVec); ok {
		c.WithLabelValues(result).Inc()
	}
}

// ObserveBusinessProcess records the time since start for a process type.
func ObserveBusinessProcess(typ, subtype string, start time.Time) {
	if h, ok := MetricsBusinessProcess.MetricCollector.(*prometheus.HistogramVec); ok {
		h.WithLabelValues(typ, subtype).Observe(MillisecondsSince(start))
	}
}

// MillisecondsSince returns elapsed time in fractional milliseconds.
func MillisecondsSince(start time.Time) float64 {
	return float64(time.Since(start).Microseconds()) / 1000
}

const (
	RefererKey = "X-Referer"
)
