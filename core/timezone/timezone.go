package timezone

import (
	"strings"
	"time"

	// Embedded zoneinfo so containers without /usr/share/zoneinfo still resolve names.
	_ "time/tzdata"
)

// Config holds the application-level timezone override.
type Config struct {
	// Timezone is an IANA name (e.g. Europe/Berlin). It takes precedence over TZ.
	Timezone string `mapstructure:"timezone" default:""`
}

var folded = func() map[string]string {
	m := make(map[string]string, len(zoneNames))
	for _, n := range zoneNames {
		m[strings.ToLower(n)] = n
	}
	return m
}()

// Resolve picks the location the device clock is rendered in.
//
// The override wins when set, then the general TZ value, then UTC. Names are
// matched without regard to case. A name that is not a known IANA zone also
// yields UTC; the second return value reports whether that fallback was taken
// for a non-empty name.
func Resolve(override, tz string) (*time.Location, bool) {
	// An empty or blank override counts as unset. The bootstrap always exports
	// both values together, so this only differs for hand-set environments.
	name := strings.TrimSpace(override)
	if name == "" {
		name = strings.TrimSpace(tz)
	}
	if name == "" {
		return time.UTC, false
	}
	// "Local" would leak the host zone, which the device never asked for.
	if name == "Local" {
		return time.UTC, true
	}
	loc, err := time.LoadLocation(name)
	if err == nil {
		return loc, false
	}
	canonical, ok := folded[strings.ToLower(name)]
	if !ok {
		return time.UTC, true
	}
	loc, err = time.LoadLocation(canonical)
	if err != nil {
		return time.UTC, true
	}
	return loc, false
}
