// Package metrics exposes Prometheus counters for the chat pipeline and
// the HTTP middleware that feeds the request metrics.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// ChatMessages counts handled chat turns by persona and answer source.
	ChatMessages = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "campustalk_chat_messages_total",
		Help: "Chat messages handled, labeled by persona and answer source.",
	}, []string{"persona", "source"})

	// FallbackAnswers counts answers produced outside the FAQ corpus.
	FallbackAnswers = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "campustalk_fallback_answers_total",
		Help: "Answers served by the fallback chain or persona template.",
	}, []string{"source"})

	requestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "campustalk_http_request_duration_seconds",
		Help:    "HTTP request latency by method, path and status.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})
)

func init() {
	prometheus.MustRegister(ChatMessages, FallbackAnswers, requestDuration)
}

// Middleware times every request into the latency histogram.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		requestDuration.WithLabelValues(
			c.Request.Method,
			path,
			strconv.Itoa(c.Writer.Status()),
		).Observe(time.Since(start).Seconds())
	}
}

// Handler serves the Prometheus scrape endpoint.
func Handler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
