package server

import (
	"fmt"

	"marstack/core/loader"
	"marstack/core/metrics"
	"marstack/core/middleware/rayid"
	"marstack/core/middleware/unmatched"

	// Registers the generated OpenAPI document served under /swagger.
	_ "marstack/docs/swagger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

// Options wires the collaborators of the HTTP application.
type Options struct {
	// Proxy controls which peers may set X-Forwarded-For.
	Proxy ProxyConfig
	// Logger is the base application logger.
	Logger *zap.Logger
	// Metrics enables request counting and the scrape endpoint when non-nil.
	Metrics *metrics.Metrics
	// MetricsPath is where the scrape endpoint is mounted.
	MetricsPath string
	// Features holds the feature modules to load.
	Features *loader.Manager
}

// FiberConfig returns the fiber configuration for the given proxy settings.
// Routing is case sensitive and strict about trailing slashes because the
// device sends exact literal paths.
func FiberConfig(proxy ProxyConfig) fiber.Config {
	cfg := fiber.Config{
		AppName:               "MarstACK",
		CaseSensitive:         true,
		StrictRouting:         true,
		DisableStartupMessage: true,
	}
	if ips := proxy.List(); len(ips) > 0 {
		cfg.ProxyHeader = fiber.HeaderXForwardedFor
		if !proxy.TrustAll() {
			cfg.EnableTrustedProxyCheck = true
			cfg.TrustedProxies = ips
		}
	}
	return cfg
}

// New builds the fiber application with the middleware chain and features.
func New(opts Options) (*fiber.App, error) {
	logg := opts.Logger
	if logg == nil {
		logg = zap.NewNop()
	}

	app := fiber.New(FiberConfig(opts.Proxy))

	// 1. RayID (Must be first to trace everything)
	app.Use(rayid.New())

	// 2. Unmatched request diagnostics
	diag := unmatched.Config{Logger: logg}
	if opts.Metrics != nil {
		diag.OnUnmatched = opts.Metrics.RecordUnmatched
	}
	app.Use(unmatched.New(diag))

	// 3. Metrics
	if opts.Metrics != nil {
		app.Use(opts.Metrics.Middleware())
		path := opts.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, opts.Metrics.Handler())
	}

	// 4. Swagger Documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// 5. Features
	if opts.Features != nil {
		if err := opts.Features.LoadAll(app); err != nil {
			return nil, fmt.Errorf("failed to load features: %w", err)
		}
	}

	return app, nil
}
