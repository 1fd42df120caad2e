package metrics

/* adapted from https://github.com/zsais/go-gin-prometheus
edits:
- zap-compatible logger interface
- no push gateway, no basic auth variant
- business metrics registered with the standard set
*/

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var reqCnt = &Metric{
	ID:          "reqCnt",
	Name:        "req_total",
	Description: "How many HTTP requests processed, partitioned by status code and HTTP method.",
	Type:        "counter_vec",
	Args:        []string{"code", "method", "url", "ref"}}

var reqDur = &Metric{
	ID:          "reqDur",
	Name:        "req_dur_ms",
	Description: "The HTTP request latencies in milliseconds.",
	Type:        "histogram_vec",
	Args:        []string{"code", "method", "url", "ref"},
}

var resSz = &Metric{
	ID:          "resSz",
	Name:        "resp_sz_bytes",
	Description: "The HTTP response sizes in bytes.",
	Type:        "summary_vec",
	Args:        []string{"code", "method", "url", "ref"},
}

var standardMetrics = []*Metric{
	reqCnt,
	reqDur,
	resSz,
}

var defaultMetricPath = "/metrics"

type Logger interface {
	Errorf(format string, v ...interface{})
}

// RequestCounterURLLabelMappingFn controls the cardinality of the "url"
// label, e.g. by mapping "/orders/abc" to the route template "/orders/:id".
type RequestCounterURLLabelMappingFn func(c *gin.Context) string

// Prometheus contains the metrics gathered by the instance and its path
type Prometheus struct {
	reqCnt        *prometheus.CounterVec
	reqDur        *prometheus.HistogramVec
	resSz         *prometheus.SummaryVec
	router        *gin.Engine
	listenAddress string
	registerer    prometheus.Registerer

	MetricsList []*Metric
	MetricsPath string

	ReqCntURLLabelMappingFn RequestCounterURLLabelMappingFn

	logger Logger
}

type NewPrometheusOptions struct {
	Subsystem               string
	MetricsList             []*Metric
	MetricsPath             string
	ReqCntURLLabelMappingFn func(c *gin.Context) string
	Logger                  Logger
	// Registerer defaults to prometheus.DefaultRegisterer.
	Registerer prometheus.Registerer
}

// NewPrometheus generates a new set of metrics with a certain subsystem name
func NewPrometheus(options NewPrometheusOptions) *Prometheus {
	p := &Prometheus{
		MetricsList: append(append([]*Metric{}, options.MetricsList...), standardMetrics...),
		MetricsPath: options.MetricsPath,
		logger:      options.Logger,
		registerer:  options.Registerer,
	}
	if p.MetricsPath == "" {
		p.MetricsPath = defaultMetricPath
	}
	if p.registerer == nil {
		p.registerer = prometheus.DefaultRegisterer
	}
	p.ReqCntURLLabelMappingFn = options.ReqCntURLLabelMappingFn
	if p.ReqCntURLLabelMappingFn == nil {
		p.ReqCntURLLabelMappingFn = func(c *gin.Context) string {
			return c.Request.URL.Path
		}
	}

	p.registerMetrics(options.Subsystem)

	return p
}

// SetListenAddress exposes metrics on a separate address. If not set, they
// are served by the gin engine passed to Use.
func (p *Prometheus) SetListenAddress(address string) {
	p.listenAddress = address
	if p.listenAddress != "" {
		p.router = gin.New()
	}
}

func (p *Prometheus) setMetricsPath(e *gin.Engine) {
	if p.listenAddress != "" {
		p.router.GET(p.MetricsPath, prometheusHandler())
		go func() {
			if err := p.router.Run(p.listenAddress); err != nil && p.logger != nil {
				p.logger.Errorf("metrics server stopped: %v", err)
			}
		}()
		return
	}
	e.GET(p.MetricsPath, prometheusHandler())
}

func (p *Prometheus) registerMetrics(subsystem string) {
	for _, metricDef := range p.MetricsList {
		metric := NewMetric(metricDef, subsystem)
		if err := p.registerer.Register(metric); err != nil {
			var already prometheus.AlreadyRegisteredError
			if errors.As(err, &already) {
				metric = already.ExistingCollector
			} else if p.logger != nil {
				p.logger.Errorf("%s could not be registered in Prometheus, err=%v", metricDef.Name, err)
			}
		}
		switch metricDef {
		case reqCnt:
			p.reqCnt = metric.(*prometheus.CounterVec)
		case reqDur:
			p.reqDur = metric.(*prometheus.HistogramVec)
		case resSz:
			p.resSz = metric.(*prometheus.SummaryVec)
		}
		metricDef.MetricCollector = metric
	}
}

// Use adds the middleware to a gin engine.
func (p *Prometheus) Use(e *gin.Engine) {
	e.Use(p.HandlerFunc())
	p.setMetricsPath(e)
}

// HandlerFunc defines handler function for middleware
func (p *Prometheus) HandlerFunc() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == p.MetricsPath {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		status := strconv.Itoa(c.Writer.Status())
		url := p.ReqCntURLLabelMappingFn(c)
		ref := c.Request.Header.Get(RefererKey)

		p.reqDur.WithLabelValues(status, c.Request.Method, url, ref).Observe(MillisecondsSince(start))
		p.reqCnt.WithLabelValues(status, c.Request.Method, url, ref).Inc()
		p.resSz.WithLabelValues(status, c.Request.Method, url, ref).Observe(float64(c.Writer.Size()))
	}
}

func prometheusHandler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
