package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the decision pipeline.
type Metrics struct {
	// Pipeline step outcomes by workflow, step and outcome
	StepOutcome *prometheus.CounterVec

	// HTTP request latency by method, route and status
	HTTPDuration *prometheus.HistogramVec
}

// New creates a new Metrics instance with all pipeline metrics registered on
// the default registry.
func New() *Metrics {
	return &Metrics{
		StepOutcome: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "onboarding_pipeline_step_outcomes_total",
			Help: "Total pipeline step outcomes by workflow, step and outcome",
		}, []string{"workflow", "step", "outcome"}),

		HTTPDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "onboarding_http_request_duration_seconds",
			Help:    "Duration of HTTP requests by method, route and status",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"method", "route", "status"}),
	}
}

// IncrementStepOutcome records one pipeline step outcome.
func (m *Metrics) IncrementStepOutcome(workflow, step, outcome string) {
	if m != nil {
		m.StepOutcome.WithLabelValues(workflow, step, outcome).Inc()
	}
}

// HTTPMiddleware returns a Gin middleware observing request latencies.
func (m *Metrics) HTTPMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m == nil {
			c.Next()
			return
		}
		start := time.Now()
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.HTTPDuration.WithLabelValues(
			c.Request.Method,
			route,
			strconv.Itoa(c.Writer.Status()),
		).Observe(time.Since(start).Seconds())
	}
}
