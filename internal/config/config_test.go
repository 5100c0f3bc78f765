package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"example/room-image-gen/internal/gemini"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"GEMINI_API_KEY", "MODEL", "BACKEND", "PROJECT", "LOCATION", "CONCURRENT", "OUTPUT_DIR", "REPORT"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("GEMINI_API_KEY", "k")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Model != gemini.DefaultModel {
		t.Errorf("Model = %q", cfg.Model)
	}
	if cfg.Backend != BackendREST {
		t.Errorf("Backend = %q", cfg.Backend)
	}
	if cfg.Concurrent != DefaultConcurrent {
		t.Errorf("Concurrent = %d", cfg.Concurrent)
	}
	if cfg.OutputDir != DefaultOutputDir {
		t.Errorf("OutputDir = %q", cfg.OutputDir)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestLoadEnvFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("GEMINI_API_KEY=from-file\nCONCURRENT=5\nOUTPUT_DIR=out\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIKey != "from-file" || cfg.Concurrent != 5 || cfg.OutputDir != "out" {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoadBadConcurrent(t *testing.T) {
	clearEnv(t)
	t.Setenv("CONCURRENT", "three")
	if _, err := Load(filepath.Join(t.TempDir(), "missing.env")); err == nil {
		t.Error("expected an error for a non-numeric CONCURRENT")
	}
}

func TestValidate(t *testing.T) {
	base := Config{APIKey: "k", Backend: BackendREST, Concurrent: 3, OutputDir: "out"}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
		ok      bool
	}{
		{name: "valid", mutate: func(*Config) {}, ok: true},
		{name: "missing credential", mutate: func(c *Config) { c.APIKey = "" }, wantErr: ErrMissingCredential},
		{name: "genai needs key", mutate: func(c *Config) { c.Backend = BackendGenAI; c.APIKey = "" }, wantErr: ErrMissingCredential},
		{name: "vertex without key", mutate: func(c *Config) { c.Backend = BackendVertex; c.APIKey = ""; c.Project = "p" }, ok: true},
		{name: "vertex without project", mutate: func(c *Config) { c.Backend = BackendVertex }},
		{name: "unknown backend", mutate: func(c *Config) { c.Backend = "carrier-pigeon" }},
		{name: "zero concurrency", mutate: func(c *Config) { c.Concurrent = 0 }},
		{name: "empty output", mutate: func(c *Config) { c.OutputDir = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.ok {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
