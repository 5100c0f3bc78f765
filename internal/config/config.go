package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"example/room-image-gen/internal/gemini"
)

const (
	BackendREST   = "rest"
	BackendGenAI  = "genai"
	BackendVertex = "vertex"

	DefaultConcurrent = 3
	DefaultOutputDir  = "public/images/landing"
)

var ErrMissingCredential = errors.New("GEMINI_API_KEY is not set")

type Config struct {
	APIKey     string
	Model      string
	Backend    string
	Project    string
	Location   string
	Concurrent int
	OutputDir  string
	Report     string
}

// Load reads .env when present, then the process environment.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	cfg := &Config{
		APIKey:     os.Getenv("GEMINI_API_KEY"),
		Model:      getenv("MODEL", gemini.DefaultModel),
		Backend:    getenv("BACKEND", BackendREST),
		Project:    os.Getenv("PROJECT"),
		Location:   getenv("LOCATION", "us-central1"),
		Concurrent: DefaultConcurrent,
		OutputDir:  getenv("OUTPUT_DIR", DefaultOutputDir),
		Report:     os.Getenv("REPORT"),
	}

	if v := os.Getenv("CONCURRENT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("parsing CONCURRENT=%q: %w", v, err)
		}
		cfg.Concurrent = n
	}
	return cfg, nil
}

// Validate is the pre-flight check run before any work starts.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendREST, BackendGenAI:
		if c.APIKey == "" {
			return ErrMissingCredential
		}
	case BackendVertex:
		if c.Project == "" {
			return errors.New("PROJECT is required for the vertex backend")
		}
	default:
		return fmt.Errorf("unknown backend %q", c.Backend)
	}
	if c.Concurrent < 1 {
		return fmt.Errorf("concurrency must be at least 1, got %d", c.Concurrent)
	}
	if c.OutputDir == "" {
		return errors.New("output directory cannot be empty")
	}
	return nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
