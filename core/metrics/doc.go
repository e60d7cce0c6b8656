// Package metrics exposes Prometheus counters for device traffic.
//
// Two counters are kept on a dedicated registry:
//   - marstack_http_requests_total{method,route,status}: every request, labelled with the
//     matched route pattern (or "unmatched").
//   - marstack_unmatched_requests_total{method,status}: fed by the unmatched middleware hook.
//
// # Usage
//
//	m := metrics.New()
//	app.Use(unmatched.New(unmatched.Config{Logger: l, OnUnmatched: m.RecordUnmatched}))
//	app.Use(m.Middleware())
//	app.Get("/metrics", m.Handler())
package metrics
