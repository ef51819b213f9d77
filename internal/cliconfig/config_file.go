package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config but uses strings for durations to make TOML friendly.
type FileConfig struct {
	APIKey   string `toml:"api_key"`
	BaseURL  string `toml:"base_url"`
	Timeout  string `toml:"timeout"`
	LogLevel string `toml:"log_level"`
	JSON     *bool  `toml:"json"`
	FontPath string `toml:"font"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns ~/.mailfinch/config.toml, or "" when the home
// directory is unknown.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".mailfinch", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("api-key", fc.APIKey, &cfg.APIKey)
	s.setString("base-url", fc.BaseURL, &cfg.BaseURL)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)
	s.setString("font", fc.FontPath, &cfg.FontPath)
	s.setBool("json", fc.JSON, &cfg.JSON)

	return s.setDuration("timeout", fc.Timeout, &cfg.Timeout)
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
