package prometheus

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Handler records per-route HTTP metrics. Health probes are not recorded.
type Handler struct {
	inFlight        prometheus.Gauge
	requestDuration *prometheus.HistogramVec
	responseSize    *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	errorTotal      *prometheus.CounterVec
}

var labels = []string{"method", "path", "status"}

func New(reg prometheus.Registerer, prefix string) *Handler {
	f := promauto.With(reg)
	return &Handler{
		inFlight: f.NewGauge(prometheus.GaugeOpts{
			Name: prefix + "_http_requests_in_flight",
			Help: "HTTP requests currently being served",
		}),
		requestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    prefix + "_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, labels),
		// Checklist exports and attachment downloads dominate the upper buckets.
		responseSize: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    prefix + "_http_response_size_bytes",
			Help:    "HTTP response body size in bytes",
			Buckets: prometheus.ExponentialBuckets(256, 4, 8),
		}, labels),
		requestTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: prefix + "_http_requests_total",
			Help: "Total number of HTTP requests",
		}, labels),
		errorTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: prefix + "_http_errors_total",
			Help: "Total number of HTTP responses with status >= 400",
		}, labels),
	}
}

// Middleware labels requests by route template so ids do not explode cardinality.
func (h *Handler) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.FullPath()
		if strings.Contains(path, "/health/") {
			c.Next()
			return
		}
		if path == "" {
			path = "unmatched"
		}

		h.inFlight.Inc()
		start := time.Now()
		c.Next()
		h.inFlight.Dec()

		code := c.Writer.Status()
		values := []string{c.Request.Method, path, strconv.Itoa(code)}
		h.requestDuration.WithLabelValues(values...).Observe(time.Since(start).Seconds())
		if size := c.Writer.Size(); size > 0 {
			h.responseSize.WithLabelValues(values...).Observe(float64(size))
		}
		h.requestTotal.WithLabelValues(values...).Inc()
		if code >= 400 {
			h.errorTotal.WithLabelValues(values...).Inc()
		}
	}
}
