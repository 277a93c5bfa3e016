package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateScan(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
		return nil
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
}

func (c *Config) validatePaths() error {
	if c.Paths.OutputDir == "" {
		return errors.New("paths.output_dir must be set")
	}
	if c.Paths.LogDir == "" {
		return errors.New("paths.log_dir must be set")
	}
	return nil
}

func (c *Config) validateScan() error {
	if c.Scan.HashWorkers < 0 {
		return errors.New("scan.hash_workers must not be negative")
	}
	if c.Scan.HashWorkers > maxHashWorkers {
		return fmt.Errorf("scan.hash_workers must not exceed %d", maxHashWorkers)
	}
	return nil
}

// ScanDirectories returns every configured scan root in section order:
// general roots first, then movie roots, then TV roots.
func (c *Config) ScanDirectories() []string {
	out := make([]string, 0, len(c.Scan.Roots)+len(c.Scan.MovieRoots)+len(c.Scan.TVRoots))
	out = append(out, c.Scan.Roots...)
	out = append(out, c.Scan.MovieRoots...)
	out = append(out, c.Scan.TVRoots...)
	return out
}
