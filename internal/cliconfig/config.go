package cliconfig

import (
	"fmt"
	"strings"
	"time"

	mailfinch "github.com/mailfinch/client-go"
)

// Config holds CLI configuration for mailfinch.
type Config struct {
	APIKey   string
	BaseURL  string
	Timeout  time.Duration
	LogLevel string
	JSON     bool
	FontPath string
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		BaseURL:  mailfinch.DefaultBaseURL,
		Timeout:  30 * time.Second,
		LogLevel: "info",
	}
}

// Validate checks the configuration for errors and sets derived defaults.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("api-key is required (flag, MAILFINCH_API_KEY or config file)")
	}
	if c.BaseURL == "" {
		c.BaseURL = mailfinch.DefaultBaseURL
	}
	if !strings.HasPrefix(c.BaseURL, "http://") && !strings.HasPrefix(c.BaseURL, "https://") {
		return fmt.Errorf("base-url must be an http(s) URL, got %q", c.BaseURL)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	return nil
}

// ClientOptions returns the library options matching c.
func (c *Config) ClientOptions() []mailfinch.Option {
	return []mailfinch.Option{
		mailfinch.WithBaseURL(c.BaseURL),
		mailfinch.WithTimeout(c.Timeout),
	}
}

// configSetter applies values only where the corresponding flag was not
// set explicitly on the command line.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setDuration parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setBoolFromString accepts "true" and "1" as true, anything else as false.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
