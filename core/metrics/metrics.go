package metrics

import (
	"strconv"

	"marstack/core/middleware/unmatched"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RouteUnmatched labels requests that no route answered.
const RouteUnmatched = "unmatched"

// Metrics holds the collectors for device traffic.
type Metrics struct {
	registry  *prometheus.Registry
	requests  *prometheus.CounterVec
	unmatched *prometheus.CounterVec
}

// New creates the collectors on a fresh registry, alongside the Go runtime
// and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "marstack_http_requests_total",
				Help: "Total number of device requests by method, route and status code",
			},
			[]string{"method", "route", "status"},
		),
		unmatched: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "marstack_unmatched_requests_total",
				Help: "Device requests that matched no route (404) or used a disallowed method (405)",
			},
			[]string{"method", "status"},
		),
	}
	reg.MustRegister(
		m.requests,
		m.unmatched,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Registry returns the registry the collectors live on.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Requests returns the per-route request counter.
func (m *Metrics) Requests() *prometheus.CounterVec {
	return m.requests
}

// Unmatched returns the unmatched request counter.
func (m *Metrics) Unmatched() *prometheus.CounterVec {
	return m.unmatched
}

// RecordUnmatched counts one unmatched request.
// Its signature fits unmatched.Config.OnUnmatched.
func (m *Metrics) RecordUnmatched(method string, status int) {
	m.unmatched.WithLabelValues(utils.CopyString(method), strconv.Itoa(status)).Inc()
}

// Middleware counts every request once the chain has completed.
// Label values are copied because fiber reuses request buffers.
func (m *Metrics) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()

		status := unmatched.Status(c, err)
		route := RouteUnmatched
		if status != fiber.StatusNotFound && status != fiber.StatusMethodNotAllowed {
			route = c.Route().Path
		}
		m.requests.WithLabelValues(utils.CopyString(c.Method()), route, strconv.Itoa(status)).Inc()
		return err
	}
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}
