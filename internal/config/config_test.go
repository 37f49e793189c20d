package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, float64(0), cfg.Processing.MinMark)
	assert.Equal(t, float64(100), cfg.Processing.MaxMark)
	assert.Equal(t, 1, cfg.Processing.Workers)
	assert.Equal(t, "students.csv", cfg.Paths.InputFile)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "defaults are valid",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "invalid port",
			mutate:  func(c *Config) { c.Server.Port = -1 },
			wantErr: true,
		},
		{
			name:    "invalid log level",
			mutate:  func(c *Config) { c.Logging.Level = "verbose" },
			wantErr: true,
		},
		{
			name:    "max mark below min mark",
			mutate:  func(c *Config) { c.Processing.MinMark = 50; c.Processing.MaxMark = 10 },
			wantErr: true,
		},
		{
			name:    "zero workers",
			mutate:  func(c *Config) { c.Processing.Workers = 0 },
			wantErr: true,
		},
		{
			name:    "empty input file",
			mutate:  func(c *Config) { c.Paths.InputFile = "" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_EnvOverrides(t *testing.T) {
	t.Setenv("MARKS_SERVER_PORT", "9090")
	t.Setenv("MARKS_PROCESSING_WORKERS", "4")
	t.Setenv("MARKS_LOGGING_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 4, cfg.Processing.Workers)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestConfig_Paths(t *testing.T) {
	cfg := Default()

	assert.Equal(t, filepath.Join("data", "students.csv"), cfg.GetInputPath())
	assert.Equal(t, filepath.Join("data", "reports", "summary.csv"), cfg.GetReportPath("summary.csv"))
	assert.Equal(t, filepath.Join("logs", "analyzer.log"), cfg.GetLogPath("analyzer.log"))

	abs := filepath.Join(t.TempDir(), "in.csv")
	cfg.Paths.InputFile = abs
	assert.Equal(t, abs, cfg.GetInputPath())
}

func TestConfig_EnsureDirectories(t *testing.T) {
	dir := t.TempDir()
	cfg := Default()
	cfg.Paths.DataDir = filepath.Join(dir, "data")
	cfg.Paths.ReportsDir = filepath.Join(dir, "data", "reports")
	cfg.Paths.LogsDir = filepath.Join(dir, "logs")

	require.NoError(t, cfg.EnsureDirectories())
	assert.DirExists(t, cfg.Paths.ReportsDir)
	assert.DirExists(t, cfg.Paths.LogsDir)
}
