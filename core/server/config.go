package server

import (
	"net"
	"strings"
)

// Config holds configuration for the HTTP server.
type Config struct {
	// Host is the interface the server binds to.
	Host string `mapstructure:"host" default:"0.0.0.0"`
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8000"`
}

// Addr returns the listen address.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// ProxyConfig holds the reverse proxy trust settings.
type ProxyConfig struct {
	// AllowIPs is a comma separated list of proxy addresses or CIDRs whose
	// X-Forwarded-For header is trusted. "*" trusts every peer.
	AllowIPs string `mapstructure:"allow_ips" default:""`
}

// TrustAll reports whether every peer is trusted.
func (p ProxyConfig) TrustAll() bool {
	for _, ip := range p.List() {
		if ip == "*" {
			return true
		}
	}
	return false
}

// List splits AllowIPs into trimmed, non-empty entries.
func (p ProxyConfig) List() []string {
	var out []string
	for _, part := range strings.Split(p.AllowIPs, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
