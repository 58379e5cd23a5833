package core

import (
	"fmt"
	"strings"
	"time"
)

// DefaultBaseURL is the vendor's production API origin.
const DefaultBaseURL = "https://api.pirsch.io"

// DefaultTimeout is the per-request timeout applied when none is configured.
const DefaultTimeout = 5 * time.Second

type Config struct {
	BaseURL             string        `koanf:"base_url" mapstructure:"base_url"`
	Timeout             time.Duration `koanf:"timeout" mapstructure:"timeout"`
	ClientID            string        `koanf:"client_id" mapstructure:"client_id"`
	ClientSecret        string        `koanf:"client_secret" mapstructure:"client_secret"`
	AccessToken         string        `koanf:"access_token" mapstructure:"access_token"`
	Hostname            string        `koanf:"hostname" mapstructure:"hostname"`
	Protocol            string        `koanf:"protocol" mapstructure:"protocol"`
	TrustedProxyHeaders []string      `koanf:"trusted_proxy_headers" mapstructure:"trusted_proxy_headers"`
}

func DefaultConfig() Config {
	return Config{
		BaseURL:  DefaultBaseURL,
		Timeout:  DefaultTimeout,
		Protocol: "https",
	}
}

// Validate checks everything but credentials; credential classification is
// the auth resolver's job and runs once at client construction.
func (c Config) Validate() error {
	if strings.TrimSpace(c.BaseURL) == "" {
		return fmt.Errorf("core: base_url is required")
	}
	if c.Timeout < 0 {
		return fmt.Errorf("core: timeout must not be negative")
	}
	switch strings.TrimSpace(strings.ToLower(c.Protocol)) {
	case "", "http", "https":
	default:
		return fmt.Errorf("core: protocol must be http or https, got %q", c.Protocol)
	}
	return nil
}
