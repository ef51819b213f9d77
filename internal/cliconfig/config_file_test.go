package cliconfig

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestApplyFileConfig(t *testing.T) {
	trueVal := true

	tests := []struct {
		name       string
		fileConfig FileConfig
		changed    map[string]bool
		initial    Config
		expected   Config
		wantErr    bool
	}{
		{
			name: "applies all valid config values",
			fileConfig: FileConfig{
				APIKey:   "file-key",
				BaseURL:  "http://localhost:8080",
				Timeout:  "5s",
				LogLevel: "debug",
				JSON:     &trueVal,
				FontPath: "/fonts/a.ttf",
			},
			changed: map[string]bool{},
			expected: Config{
				APIKey:   "file-key",
				BaseURL:  "http://localhost:8080",
				Timeout:  5 * time.Second,
				LogLevel: "debug",
				JSON:     true,
				FontPath: "/fonts/a.ttf",
			},
		},
		{
			name:       "respects changed flags",
			fileConfig: FileConfig{APIKey: "file-key", LogLevel: "debug"},
			changed:    map[string]bool{"api-key": true},
			initial:    Config{APIKey: "flag-key", LogLevel: "info"},
			expected:   Config{APIKey: "flag-key", LogLevel: "debug"},
		},
		{
			name:       "empty values keep current",
			fileConfig: FileConfig{},
			initial:    Config{APIKey: "k", Timeout: time.Second},
			expected:   Config{APIKey: "k", Timeout: time.Second},
		},
		{
			name:       "bad duration",
			fileConfig: FileConfig{Timeout: "soon"},
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.initial
			err := ApplyFileConfig(&cfg, tt.fileConfig, tt.changed)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("ApplyFileConfig() error = %v", err)
			}
			if cfg != tt.expected {
				t.Errorf("got %+v, want %+v", cfg, tt.expected)
			}
		})
	}
}

func TestLoadFileConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
api_key = "abc"
base_url = "http://localhost:9000"
timeout = "10s"
json = true
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	fc, err := LoadFileConfig(path)
	if err != nil {
		t.Fatalf("LoadFileConfig() error = %v", err)
	}
	if fc.APIKey != "abc" || fc.BaseURL != "http://localhost:9000" || fc.Timeout != "10s" {
		t.Errorf("got %+v", fc)
	}
	if fc.JSON == nil || !*fc.JSON {
		t.Error("json should be true")
	}
}

func TestLoadFileConfig_Errors(t *testing.T) {
	if _, err := LoadFileConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("api_key = "), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFileConfig(path); err == nil {
		t.Error("expected error for invalid TOML")
	}
}

func TestDefaultConfigPath(t *testing.T) {
	p := DefaultConfigPath()
	if p == "" {
		t.Skip("no home directory")
	}
	if !strings.HasSuffix(p, filepath.Join(".mailfinch", "config.toml")) {
		t.Errorf("DefaultConfigPath() = %s", p)
	}
}

func TestFileExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f")
	if FileExists(path) {
		t.Error("FileExists() = true before create")
	}
	if err := os.WriteFile(path, nil, 0o600); err != nil {
		t.Fatal(err)
	}
	if !FileExists(path) {
		t.Error("FileExists() = false after create")
	}
}
