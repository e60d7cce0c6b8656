package config

import (
	"reflect"
	"strings"
	"time"

	"marstack/core/logger"
	"marstack/core/metrics"
	"marstack/core/server"
	"marstack/core/timezone"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is read once at startup and treated as immutable afterwards.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// App holds the application timezone override (APP_TIMEZONE).
	App timezone.Config `mapstructure:"app"`
	// TZ is the general system timezone, used when no override is set.
	TZ string `mapstructure:"tz" default:""`
	// Forwarded holds the trusted reverse proxy list (FORWARDED_ALLOW_IPS).
	Forwarded server.ProxyConfig `mapstructure:"forwarded"`
	// Metrics holds configuration for the Prometheus endpoint.
	Metrics metrics.Config `mapstructure:"metrics"`
}

// Location resolves the timezone used for device date answers.
// The second value is true when a configured name was unknown and UTC was used instead.
func (c *Config) Location() (*time.Location, bool) {
	return timezone.Resolve(c.App.Timezone, c.TZ)
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. production).
	// Load does not override variables set by the bootstrap.
	_ = godotenv.Load(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. APP_TIMEZONE -> app.timezone)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues walks a config section and registers every leaf key with its
// `default:` tag. Keys must be known to viper before Unmarshal, otherwise
// AutomaticEnv never consults variables such as SERVER_PORT or APP_TIMEZONE.
func bindValues(v *viper.Viper, section any, prefix string) {
	t := reflect.TypeOf(section)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for _, field := range reflect.VisibleFields(t) {
		name, ok := field.Tag.Lookup("mapstructure")
		if !ok || name == "" {
			continue
		}
		key := name
		if prefix != "" {
			key = prefix + "." + name
		}

		if field.Type.Kind() != reflect.Struct {
			v.SetDefault(key, field.Tag.Get("default"))
			continue
		}
		bindValues(v, reflect.Zero(field.Type).Interface(), key)
	}
}
