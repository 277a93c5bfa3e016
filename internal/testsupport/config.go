package testsupport

import (
	"path/filepath"
	"testing"

	"winnow/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.OutputDir = filepath.Join(base, "reports")
	cfg.Paths.LogDir = filepath.Join(base, "logs")

	for _, opt := range opts {
		opt(&cfg)
	}

	return &cfg
}

// WithScanRoots sets the general scan roots on the test config.
func WithScanRoots(roots ...string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Scan.Roots = roots
	}
}

// WithTVRoots sets the TV roots on the test config.
func WithTVRoots(roots ...string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Scan.TVRoots = roots
	}
}

// WithMovieRoots sets the movie roots on the test config.
func WithMovieRoots(roots ...string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Scan.MovieRoots = roots
	}
}
