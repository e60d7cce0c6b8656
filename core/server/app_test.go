package server_test

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"marstack/core/loader"
	"marstack/core/metrics"
	"marstack/core/middleware/rayid"
	"marstack/core/server"
	"marstack/feature/device"
	"marstack/feature/homepage"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type testServer struct {
	app     *fiber.App
	logs    *observer.ObservedLogs
	metrics *metrics.Metrics
}

func setupServer(t *testing.T) *testServer {
	t.Helper()
	core, logs := observer.New(zapcore.InfoLevel)
	logg := zap.New(core)

	home, err := homepage.NewFeature()
	require.NoError(t, err)
	mgr := loader.NewManager(logg)
	mgr.Register(home)
	mgr.Register(device.NewFeature(logg, time.UTC, device.WithClock(func() time.Time {
		return time.Date(2024, time.January, 5, 3, 7, 9, 0, time.UTC)
	})))

	m := metrics.New()
	app, err := server.New(server.Options{
		Logger:      logg,
		Metrics:     m,
		MetricsPath: "/metrics",
		Features:    mgr,
	})
	require.NoError(t, err)
	return &testServer{app: app, logs: logs, metrics: m}
}

func (s *testServer) do(t *testing.T, method, target string) (*httpResult, error) {
	t.Helper()
	resp, err := s.app.Test(httptest.NewRequest(method, target, nil))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	return &httpResult{
		status:      resp.StatusCode,
		contentType: resp.Header.Get(fiber.HeaderContentType),
		rayID:       resp.Header.Get(rayid.HeaderName),
		body:        string(body),
	}, nil
}

type httpResult struct {
	status      int
	contentType string
	rayID       string
	body        string
}

func TestServer_DeviceContract(t *testing.T) {
	s := setupServer(t)

	tests := []struct {
		method      string
		target      string
		contentType string
		body        string
	}{
		{"GET", "http://eu.hamedata.com/prod/api/v1/setB2500Report?uid=1&v=2", "application/json", `{"code":1,"msg":"ok"}`},
		{"GET", "http://eu.hamedata.com/app/neng/getDateInfoeu.php", "text/plain; charset=utf-8", "_2024_01_05_03_07_09_04_0_0_0"},
		{"POST", "http://eu.hamedata.com/app/Solar/puterrinfo.php", "text/plain; charset=utf-8", "_1"},
		{"GET", "http://eu.hamedata.com/app/Solar/puterrinfo.php", "text/plain; charset=utf-8", "_2"},
		{"GET", "http://eu.hamedata.com/ems/api/v1/getRealtimeSoc", "application/json", `{"code":1,"show":0,"msg":"ok","data":{"soc":0,"time_no":0}}`},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			res, err := s.do(t, tt.method, tt.target)
			require.NoError(t, err)
			assert.Equal(t, 200, res.status)
			assert.Equal(t, tt.contentType, res.contentType)
			assert.Equal(t, tt.body, res.body)
			assert.NotEmpty(t, res.rayID)
		})
	}

	assert.Zero(t, s.logs.Len(), "matched routes must not produce diagnostics")
}

func TestServer_Homepage(t *testing.T) {
	s := setupServer(t)

	res, err := s.do(t, "GET", "http://eu.hamedata.com/")
	require.NoError(t, err)
	assert.Equal(t, 200, res.status)
	assert.Contains(t, res.body, "correctly configured your DNS")

	res, err = s.do(t, "GET", "http://homeassistant.local:8000/")
	require.NoError(t, err)
	assert.Contains(t, res.body, "must configure your network")

	res, err = s.do(t, "GET", "/favicon.ico")
	require.NoError(t, err)
	assert.Equal(t, 200, res.status)
}

func TestServer_UnknownRoute(t *testing.T) {
	s := setupServer(t)

	res, err := s.do(t, "GET", "http://eu.hamedata.com/prod/api/v1/getNewThing?sn=42")
	require.NoError(t, err)
	assert.Equal(t, 404, res.status)

	entries := s.logs.FilterMessage("Unmatched device request").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	assert.EqualValues(t, 404, fields["status"])
	assert.Equal(t, "GET", fields["method"])
	assert.Equal(t, "http://eu.hamedata.com/prod/api/v1/getNewThing?sn=42", fields["url"])
	assert.Equal(t, res.rayID, fields["ray_id"])

	assert.Equal(t, 1.0, testutil.ToFloat64(s.metrics.Unmatched().WithLabelValues("GET", "404")))
}

func TestServer_MethodNotAllowed(t *testing.T) {
	s := setupServer(t)

	for _, target := range []string{
		"/prod/api/v1/setB2500Report",
		"/app/neng/getDateInfoeu.php",
		"/ems/api/v1/getRealtimeSoc",
	} {
		res, err := s.do(t, "POST", target)
		require.NoError(t, err)
		assert.Equal(t, 405, res.status, target)
	}
	res, err := s.do(t, "DELETE", "/app/Solar/puterrinfo.php")
	require.NoError(t, err)
	assert.Equal(t, 405, res.status)

	entries := s.logs.FilterMessage("Unmatched device request").All()
	require.Len(t, entries, 4)
	for _, e := range entries {
		assert.EqualValues(t, 405, e.ContextMap()["status"])
	}
	assert.Equal(t, 3.0, testutil.ToFloat64(s.metrics.Unmatched().WithLabelValues("POST", "405")))
	assert.Equal(t, 1.0, testutil.ToFloat64(s.metrics.Unmatched().WithLabelValues("DELETE", "405")))
}

func TestServer_HeadAndOptionsNotAllowed(t *testing.T) {
	s := setupServer(t)

	targets := []string{
		"/ems/api/v1/getRealtimeSoc",
		"/app/neng/getDateInfoeu.php",
		"/",
		"/favicon.ico",
	}
	for _, target := range targets {
		res, err := s.do(t, "HEAD", target)
		require.NoError(t, err)
		assert.Equal(t, 405, res.status, target)
	}
	res, err := s.do(t, "OPTIONS", "/favicon.ico")
	require.NoError(t, err)
	assert.Equal(t, 405, res.status)

	entries := s.logs.FilterMessage("Unmatched device request").All()
	require.Len(t, entries, len(targets)+1)
	assert.Equal(t, "HEAD", entries[0].ContextMap()["method"])
	assert.EqualValues(t, 405, entries[0].ContextMap()["status"])
	assert.Equal(t, "OPTIONS", entries[len(targets)].ContextMap()["method"])

	assert.Equal(t, float64(len(targets)), testutil.ToFloat64(s.metrics.Unmatched().WithLabelValues("HEAD", "405")))
	assert.Equal(t, 1.0, testutil.ToFloat64(s.metrics.Unmatched().WithLabelValues("OPTIONS", "405")))
}

func TestServer_MetricsEndpoint(t *testing.T) {
	s := setupServer(t)

	_, err := s.do(t, "GET", "/ems/api/v1/getRealtimeSoc")
	require.NoError(t, err)

	res, err := s.do(t, "GET", "/metrics")
	require.NoError(t, err)
	assert.Equal(t, 200, res.status)
	assert.True(t, strings.Contains(res.body,
		`marstack_http_requests_total{method="GET",route="/ems/api/v1/getRealtimeSoc",status="200"} 1`))
}

func TestServer_Swagger(t *testing.T) {
	s := setupServer(t)

	res, err := s.do(t, "GET", "/swagger/doc.json")
	require.NoError(t, err)
	assert.Equal(t, 200, res.status)
	assert.Contains(t, res.body, "/app/neng/getDateInfoeu.php")
}

func TestServer_NoMetrics(t *testing.T) {
	app, err := server.New(server.Options{})
	require.NoError(t, err)

	resp, err := app.Test(httptest.NewRequest("GET", "/metrics", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestFiberConfig(t *testing.T) {
	cfg := server.FiberConfig(server.ProxyConfig{})
	assert.True(t, cfg.CaseSensitive)
	assert.True(t, cfg.StrictRouting)
	assert.Empty(t, cfg.ProxyHeader)
	assert.False(t, cfg.EnableTrustedProxyCheck)

	cfg = server.FiberConfig(server.ProxyConfig{AllowIPs: "172.30.32.2, 10.0.0.0/8"})
	assert.Equal(t, fiber.HeaderXForwardedFor, cfg.ProxyHeader)
	assert.True(t, cfg.EnableTrustedProxyCheck)
	assert.Equal(t, []string{"172.30.32.2", "10.0.0.0/8"}, cfg.TrustedProxies)

	cfg = server.FiberConfig(server.ProxyConfig{AllowIPs: "*"})
	assert.Equal(t, fiber.HeaderXForwardedFor, cfg.ProxyHeader)
	assert.False(t, cfg.EnableTrustedProxyCheck)
}
