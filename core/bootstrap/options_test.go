package bootstrap_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"marstack/core/bootstrap"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeOptions(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "options.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func envFrom(m map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func TestOptionsPath(t *testing.T) {
	env := func(m map[string]string) func(string) string {
		return func(k string) string { return m[k] }
	}

	assert.Equal(t, "/x.json", bootstrap.OptionsPath("/x.json", env(map[string]string{bootstrap.OptionsFileEnv: "/y.json"})))
	assert.Equal(t, "/y.json", bootstrap.OptionsPath("", env(map[string]string{bootstrap.OptionsFileEnv: "/y.json"})))
	assert.Equal(t, bootstrap.DefaultOptionsFile, bootstrap.OptionsPath("", env(nil)))
}

func TestReadOptions(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		path := writeOptions(t, `{"log_level":"debug","timezone":"Europe/Berlin"}`)
		doc, err := bootstrap.ReadOptions(path)
		require.NoError(t, err)
		assert.Equal(t, "debug", doc.GetString("log_level"))
	})

	t.Run("Missing", func(t *testing.T) {
		doc, err := bootstrap.ReadOptions(filepath.Join(t.TempDir(), "nope.json"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, bootstrap.ErrOptionsNotFound))
		require.NotNil(t, doc)
		assert.False(t, doc.IsSet("log_level"))
	})

	t.Run("Malformed", func(t *testing.T) {
		path := writeOptions(t, `{"log_level": `)
		doc, err := bootstrap.ReadOptions(path)
		require.Error(t, err)
		assert.False(t, errors.Is(err, bootstrap.ErrOptionsNotFound))
		require.NotNil(t, doc)
		assert.False(t, doc.IsSet("log_level"))
	})
}

func TestResolve(t *testing.T) {
	t.Run("OptionsWin", func(t *testing.T) {
		doc, err := bootstrap.ReadOptions(writeOptions(t, `{"log_level":"debug","timezone":"Europe/Berlin","forwarded_allow_ips":"172.30.32.2"}`))
		require.NoError(t, err)

		opts := bootstrap.Resolve(doc, envFrom(map[string]string{
			bootstrap.EnvLogLevel:          "error",
			bootstrap.EnvAppTimezone:       "Asia/Tokyo",
			bootstrap.EnvForwardedAllowIPs: "10.0.0.1",
		}))
		assert.Equal(t, bootstrap.Options{LogLevel: "debug", Timezone: "Europe/Berlin", ForwardedAllowIPs: "172.30.32.2"}, opts)
	})

	t.Run("EnvFallback", func(t *testing.T) {
		doc, _ := bootstrap.ReadOptions(filepath.Join(t.TempDir(), "missing.json"))
		opts := bootstrap.Resolve(doc, envFrom(map[string]string{
			bootstrap.EnvLogLevel:    "warning",
			bootstrap.EnvAppTimezone: "Asia/Tokyo",
		}))
		assert.Equal(t, bootstrap.Options{LogLevel: "warning", Timezone: "Asia/Tokyo"}, opts)
	})

	t.Run("Defaults", func(t *testing.T) {
		opts := bootstrap.Resolve(nil, envFrom(nil))
		assert.Equal(t, bootstrap.Options{LogLevel: "info", Timezone: "UTC"}, opts)
	})

	t.Run("PartialOptions", func(t *testing.T) {
		doc, err := bootstrap.ReadOptions(writeOptions(t, `{"timezone":"America/Chicago"}`))
		require.NoError(t, err)
		opts := bootstrap.Resolve(doc, envFrom(map[string]string{bootstrap.EnvLogLevel: "debug"}))
		assert.Equal(t, bootstrap.Options{LogLevel: "debug", Timezone: "America/Chicago"}, opts)
	})

	t.Run("ListOfProxies", func(t *testing.T) {
		doc, err := bootstrap.ReadOptions(writeOptions(t, `{"forwarded_allow_ips":["172.30.32.2","10.0.0.0/8"]}`))
		require.NoError(t, err)
		opts := bootstrap.Resolve(doc, envFrom(nil))
		assert.Equal(t, "172.30.32.2,10.0.0.0/8", opts.ForwardedAllowIPs)
	})
}

func TestOptions_Env(t *testing.T) {
	env := bootstrap.Options{LogLevel: "info", Timezone: "Europe/Berlin"}.Env()
	assert.Equal(t, map[string]string{
		"LOG_LEVEL":    "info",
		"APP_TIMEZONE": "Europe/Berlin",
		"TZ":           "Europe/Berlin",
	}, env)

	env = bootstrap.Options{LogLevel: "info", Timezone: "UTC", ForwardedAllowIPs: "*"}.Env()
	assert.Equal(t, "*", env["FORWARDED_ALLOW_IPS"])
}

func TestOptions_Apply(t *testing.T) {
	var keys []string
	got := map[string]string{}
	err := bootstrap.Options{LogLevel: "debug", Timezone: "UTC", ForwardedAllowIPs: "*"}.Apply(func(k, v string) error {
		keys = append(keys, k)
		got[k] = v
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"APP_TIMEZONE", "FORWARDED_ALLOW_IPS", "LOG_LEVEL", "TZ"}, keys)
	assert.Equal(t, "debug", got["LOG_LEVEL"])

	err = bootstrap.Options{}.Apply(func(string, string) error { return assert.AnError })
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}
