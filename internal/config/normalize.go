package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	if err := c.normalizeScan(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.OutputDir) == "" {
		c.Paths.OutputDir = defaultOutputDir
	}
	if c.Paths.OutputDir, err = expandPath(c.Paths.OutputDir); err != nil {
		return fmt.Errorf("paths.output_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeScan() error {
	normalizeRoots := func(field string, roots []string) ([]string, error) {
		out := make([]string, 0, len(roots))
		for _, root := range roots {
			trimmed := strings.TrimSpace(root)
			if trimmed == "" {
				continue
			}
			expanded, err := expandPath(trimmed)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", field, err)
			}
			out = append(out, expanded)
		}
		return out, nil
	}

	var err error
	if c.Scan.Roots, err = normalizeRoots("scan.roots", c.Scan.Roots); err != nil {
		return err
	}
	if c.Scan.MovieRoots, err = normalizeRoots("scan.movie_roots", c.Scan.MovieRoots); err != nil {
		return err
	}
	if c.Scan.TVRoots, err = normalizeRoots("scan.tv_roots", c.Scan.TVRoots); err != nil {
		return err
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
