package cliconfig

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads KEY=value pairs from path into the process environment.
// Variables that are already set win. A missing file is not an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// ApplyEnvConfig applies MAILFINCH_* environment variables. They override
// the config file but not explicitly set flags.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("api-key", os.Getenv("MAILFINCH_API_KEY"), &cfg.APIKey)
	s.setString("base-url", os.Getenv("MAILFINCH_BASE_URL"), &cfg.BaseURL)
	s.setString("log-level", os.Getenv("MAILFINCH_LOG_LEVEL"), &cfg.LogLevel)
	s.setString("font", os.Getenv("MAILFINCH_FONT"), &cfg.FontPath)
	s.setBoolFromString("json", os.Getenv("MAILFINCH_JSON"), &cfg.JSON)

	return s.setDuration("timeout", os.Getenv("MAILFINCH_TIMEOUT"), &cfg.Timeout)
}
