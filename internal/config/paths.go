package config

import (
	"os"
	"path/filepath"
)

// GetInputPath resolves the default input file inside the data directory.
// Absolute input paths are returned as-is.
func (c *Config) GetInputPath() string {
	if filepath.IsAbs(c.Paths.InputFile) {
		return c.Paths.InputFile
	}
	return filepath.Join(c.Paths.DataDir, c.Paths.InputFile)
}

// GetReportPath resolves a report file name inside the reports directory.
func (c *Config) GetReportPath(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.Paths.ReportsDir, name)
}

// GetLogPath resolves a log file name inside the logs directory.
func (c *Config) GetLogPath(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.Paths.LogsDir, name)
}

// EnsureDirectories creates the data, reports and logs directories when they
// do not exist yet.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.DataDir, c.Paths.ReportsDir, c.Paths.LogsDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return nil
}
