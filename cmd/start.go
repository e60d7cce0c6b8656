package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"marstack/core/config"
	"marstack/core/loader"
	"marstack/core/logger"
	"marstack/core/metrics"
	"marstack/core/server"
	"marstack/feature/device"
	"marstack/feature/homepage"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// @title MarstACK API
// @version 1.0
// @description Local stand-in for the vendor cloud endpoints used by Marstek solar batteries.
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the emulation server",
	Long:  `Starts the HTTP server answering the battery's cloud calls.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStart()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}

func runStart() error {
	// 1. Load Configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// 2. Initialize Logger
	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logg.Sync()
	zap.ReplaceGlobals(logg)

	// 3. Resolve the device timezone once
	loc, fellBack := cfg.Location()
	if fellBack {
		logg.Warn("Unknown timezone, answering device clock queries in UTC",
			zap.String("app_timezone", cfg.App.Timezone),
			zap.String("tz", cfg.TZ))
	}

	// 4. Register Features
	mgr := loader.NewManager(logg)
	home, err := homepage.NewFeature()
	if err != nil {
		return err
	}
	mgr.Register(home)
	mgr.Register(device.NewFeature(logg, loc))

	opts := server.Options{
		Proxy:    cfg.Forwarded,
		Logger:   logg,
		Features: mgr,
	}
	if cfg.Metrics.Enabled {
		opts.Metrics = metrics.New()
		opts.MetricsPath = cfg.Metrics.Path
	}

	// 5. Build App
	app, err := server.New(opts)
	if err != nil {
		return err
	}

	// 6. Start Server
	errCh := make(chan error, 1)
	go func() {
		logg.Info("Starting server",
			zap.String("addr", cfg.Server.Addr()),
			zap.String("timezone", loc.String()),
			zap.Strings("trusted_proxies", cfg.Forwarded.List()))
		errCh <- app.Listen(cfg.Server.Addr())
	}()

	// 7. Graceful Shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-c:
	}
	logg.Info("Shutting down server...")
	return app.Shutdown()
}
