package http

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// total number of requests counter
	requestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "launchpool_requests_total",
			Help: "Total number of requests.",
		},
		[]string{"method", "endpoint", "status"},
	)

	// request latency histogram
	requestLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "launchpool_request_duration_seconds",
			Help:    "Histogram of request latencies.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)
)

func init() {
	prometheus.MustRegister(requestsTotal)
	prometheus.MustRegister(requestLatency)
}

// InstrumentMiddleware counts requests and observes their latency per route.
func InstrumentMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)
		if err != nil {
			c.Error(err)
		}

		method := c.Request().Method
		path := c.Path()
		requestsTotal.WithLabelValues(method, path, strconv.Itoa(c.Response().Status)).Inc()
		requestLatency.WithLabelValues(method, path).Observe(time.Since(start).Seconds())

		return nil
	}
}
