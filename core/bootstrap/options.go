package bootstrap

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/spf13/viper"
)

const (
	// DefaultOptionsFile is where the add-on host mounts the user options.
	DefaultOptionsFile = "/data/options.json"
	// OptionsFileEnv overrides DefaultOptionsFile.
	OptionsFileEnv = "HASSIO_OPTIONS_FILE"
)

// Environment variables exported for the server.
const (
	EnvLogLevel          = "LOG_LEVEL"
	EnvAppTimezone       = "APP_TIMEZONE"
	EnvTZ                = "TZ"
	EnvForwardedAllowIPs = "FORWARDED_ALLOW_IPS"
)

// Option keys in the options document.
const (
	keyLogLevel          = "log_level"
	keyTimezone          = "timezone"
	keyForwardedAllowIPs = "forwarded_allow_ips"
)

// ErrOptionsNotFound is returned by ReadOptions when the file does not exist.
var ErrOptionsNotFound = errors.New("options file not found")

// Options holds the values projected into the server environment.
type Options struct {
	LogLevel          string
	Timezone          string
	ForwardedAllowIPs string
}

// OptionsPath returns the options file to read: the explicit path if set,
// then OptionsFileEnv, then DefaultOptionsFile.
func OptionsPath(explicit string, getenv func(string) string) string {
	if explicit != "" {
		return explicit
	}
	if p := getenv(OptionsFileEnv); p != "" {
		return p
	}
	return DefaultOptionsFile
}

// ReadOptions reads the JSON options document at path.
//
// The returned document is always usable: on error it is empty, so callers
// can log the error and carry on with environment values and defaults.
func ReadOptions(path string) (*viper.Viper, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return v, fmt.Errorf("%w: %s", ErrOptionsNotFound, path)
	}
	if err := v.ReadInConfig(); err != nil {
		return viper.New(), fmt.Errorf("failed to read options file %s: %w", path, err)
	}
	return v, nil
}

// Resolve picks each value from the options document, then the existing
// environment, then the built-in default.
func Resolve(doc *viper.Viper, lookupEnv func(string) (string, bool)) Options {
	pick := func(key, env, def string) string {
		if doc != nil && doc.IsSet(key) {
			return optionString(doc.Get(key))
		}
		if val, ok := lookupEnv(env); ok {
			return val
		}
		return def
	}

	return Options{
		LogLevel:          pick(keyLogLevel, EnvLogLevel, "info"),
		Timezone:          pick(keyTimezone, EnvAppTimezone, "UTC"),
		ForwardedAllowIPs: pick(keyForwardedAllowIPs, EnvForwardedAllowIPs, ""),
	}
}

// optionString flattens an option value. Lists become comma separated.
func optionString(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, optionString(item))
		}
		return strings.Join(parts, ",")
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Env returns the variables to export. TZ mirrors the timezone, and the
// proxy list is only exported when non-empty.
func (o Options) Env() map[string]string {
	env := map[string]string{
		EnvLogLevel:    o.LogLevel,
		EnvAppTimezone: o.Timezone,
		EnvTZ:          o.Timezone,
	}
	if o.ForwardedAllowIPs != "" {
		env[EnvForwardedAllowIPs] = o.ForwardedAllowIPs
	}
	return env
}

// Apply exports Env through setenv in key order.
func (o Options) Apply(setenv func(key, value string) error) error {
	env := o.Env()
	keys := make([]string, 0, len(env))
	for k := range env {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if err := setenv(k, env[k]); err != nil {
			return fmt.Errorf("failed to set %s: %w", k, err)
		}
	}
	return nil
}
