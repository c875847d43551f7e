package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func validConfig() Config {
	cfg := Config{Backend: BackendConfig{BaseURL: "http://localhost:5000"}}
	cfg.ApplyDefaults()
	return cfg
}

func TestValidate_MissingBackend(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for missing backend URL")
	}

	expected := "missing required settings: backend.base_url"
	if err.Error() != expected {
		t.Errorf("unexpected error message:\ngot:  %q\nwant: %q", err.Error(), expected)
	}
}

func TestValidate_ListsAllMissing(t *testing.T) {
	cfg := Config{HTTP: HTTPConfig{Port: 8080}}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "backend.base_url") || !strings.Contains(err.Error(), "download.dir") {
		t.Errorf("error should list every missing setting: %v", err)
	}
}

func TestValidate_BackendURL(t *testing.T) {
	tests := []struct {
		url   string
		valid bool
	}{
		{"http://localhost:5000", true},
		{"https://surveys.example.com/base", true},
		{"localhost:5000", false},
		{"ftp://example.com", false},
		{"http://", false},
	}

	for _, tc := range tests {
		t.Run(tc.url, func(t *testing.T) {
			cfg := validConfig()
			cfg.Backend.BaseURL = tc.url
			err := cfg.Validate()
			if tc.valid && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tc.valid && err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestValidate_Port(t *testing.T) {
	cfg := validConfig()
	cfg.HTTP.Port = 70000
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for out-of-range port")
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.HTTP.Port != 8080 {
		t.Errorf("port = %d", cfg.HTTP.Port)
	}
	if cfg.HTTP.WriteTimeoutSec != 120 {
		t.Errorf("write timeout = %d", cfg.HTTP.WriteTimeoutSec)
	}
	if cfg.Backend.TimeoutSec != 60 {
		t.Errorf("backend timeout = %d", cfg.Backend.TimeoutSec)
	}
	if cfg.Download.Dir != "downloads" {
		t.Errorf("download dir = %q", cfg.Download.Dir)
	}
}

func TestParse_ExpandsEnvVars(t *testing.T) {
	t.Setenv("SURVEYFRONT_TEST_BACKEND", "http://backend:5000")
	t.Setenv("SURVEYFRONT_TEST_EMPTY", "")

	data := []byte(`
backend:
  base_url: ${SURVEYFRONT_TEST_BACKEND}
  api_key: ${SURVEYFRONT_TEST_EMPTY:-fallback-key}
download:
  dir: ${SURVEYFRONT_TEST_UNSET:-/tmp/surveys}
auth:
  passwords:
    - ${SURVEYFRONT_TEST_BACKEND}
    - ${SURVEYFRONT_TEST_EMPTY}
`)
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Backend.BaseURL != "http://backend:5000" {
		t.Errorf("base_url = %q", cfg.Backend.BaseURL)
	}
	if cfg.Backend.APIKey != "fallback-key" {
		t.Errorf("api_key = %q", cfg.Backend.APIKey)
	}
	if cfg.Download.Dir != "/tmp/surveys" {
		t.Errorf("download.dir = %q", cfg.Download.Dir)
	}
	// unset passwords stay as empty entries; the auth middleware ignores them
	if len(cfg.Auth.Passwords) != 2 || cfg.Auth.Passwords[1] != "" {
		t.Errorf("auth.passwords = %q", cfg.Auth.Passwords)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.yaml")
	data := "http:\n  port: 9090\nbackend:\n  base_url: http://localhost:5000\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.HTTP.Port != 9090 {
		t.Errorf("port = %d", cfg.HTTP.Port)
	}
	if cfg.HTTP.ReadTimeoutSec != 10 {
		t.Errorf("defaults not applied: read timeout = %d", cfg.HTTP.ReadTimeoutSec)
	}
}

func TestLoadFile_Missing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadFile_OverridesBeforeValidation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.yaml")
	if err := os.WriteFile(path, []byte("backend:\n  base_url: ${SURVEYFRONT_TEST_UNSET}\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := LoadFile(path); err == nil {
		t.Fatal("expected validation error without an override")
	}

	cfg, err := LoadFile(path, func(c *Config) { c.Backend.BaseURL = "http://flag:5000" })
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Backend.BaseURL != "http://flag:5000" {
		t.Errorf("base_url = %q", cfg.Backend.BaseURL)
	}
}

func TestLoad_RepoConfigs(t *testing.T) {
	t.Setenv("SURVEY_BACKEND_URL", "http://localhost:5000")
	for _, env := range []string{"local", "prod"} {
		if _, err := Load(env); err != nil {
			t.Errorf("Load(%q): %v", env, err)
		}
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("ENV", "")
	if GetEnv() != "local" {
		t.Errorf("GetEnv() = %q, want local", GetEnv())
	}
	t.Setenv("ENV", "prod")
	if GetEnv() != "prod" {
		t.Errorf("GetEnv() = %q, want prod", GetEnv())
	}
}
