// Package config provides configuration management for MarstACK.
//
// It utilizes Viper for loading configuration from environment variables, with an optional
// .env file loaded first through godotenv. Defaults come from `default` struct tags.
//
// # Configuration Structure
//
//   - Server: bind host and port (SERVER_HOST, SERVER_PORT)
//   - Log: level and format (LOG_LEVEL, LOG_FORMAT)
//   - App: timezone override (APP_TIMEZONE)
//   - TZ: general timezone, used when APP_TIMEZONE is empty
//   - Forwarded: trusted proxies (FORWARDED_ALLOW_IPS)
//   - Metrics: Prometheus endpoint (METRICS_ENABLED, METRICS_PATH)
//
// The bootstrap command exports these variables before the server starts.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	loc, _ := cfg.Location()
package config
