package config

const (
	defaultOutputDir   = "~/.local/share/winnow/reports"
	defaultLogDir      = "~/.local/share/winnow/logs"
	defaultLogFormat   = "console"
	defaultLogLevel    = "info"
	defaultHashWorkers = 0 // 0 means sized from the machine at scan time

	maxHashWorkers = 32
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			OutputDir: defaultOutputDir,
			LogDir:    defaultLogDir,
		},
		Scan: Scan{
			HashWorkers: defaultHashWorkers,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
