// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments (development vs production)
// and integrates with the Fiber web framework.
//
// # Levels
//
// The level names accepted by the add-on options (trace, debug, info, warning, error, critical)
// are mapped onto zap levels by ParseLevel. A debug (or trace) level switches to the zap
// development configuration, which is what surfaces the per-request diagnostics the device
// handlers emit.
//
// # Context Awareness
//
// The WithRayID helper extracts the RayID from a Fiber context and attaches it to the
// log entry, so every line about a single device request can be correlated.
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Server started")
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Debug("Query params", zap.Any("params", c.Queries()))
package logger
