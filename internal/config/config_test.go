package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, UnlimitedDepth, cfg.Depth)
	assert.False(t, cfg.All)
	assert.Equal(t, "", cfg.Format)
	assert.Equal(t, OutputText, cfg.Output)
	assert.Equal(t, "", cfg.OutputFile)
	assert.Empty(t, cfg.SkipDirs)
	assert.Empty(t, cfg.SkipFiles)
	assert.False(t, cfg.NoColor)
	assert.Equal(t, 0, cfg.Verbose)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("DIRTREE_DEPTH", "3")
	t.Setenv("DIRTREE_ALL", "true")
	t.Setenv("DIRTREE_FORMAT", "ASCII")
	t.Setenv("DIRTREE_OUTPUT", "json")
	t.Setenv("DIRTREE_OUTPUT_FILE", "/tmp/out.json")
	t.Setenv("DIRTREE_SKIP_DIRS", "dist, build ,")
	t.Setenv("DIRTREE_SKIP_FILES", "trace.log")
	t.Setenv("DIRTREE_NO_COLOR", "true")
	t.Setenv("DIRTREE_VERBOSE", "2")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Depth)
	assert.True(t, cfg.All)
	assert.Equal(t, FormatASCII, cfg.Format)
	assert.Equal(t, OutputJSON, cfg.Output)
	assert.Equal(t, "/tmp/out.json", cfg.OutputFile)
	assert.Equal(t, []string{"dist", "build"}, cfg.SkipDirs)
	assert.Equal(t, []string{"trace.log"}, cfg.SkipFiles)
	assert.True(t, cfg.NoColor)
	assert.Equal(t, 2, cfg.Verbose)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			mutate: func(c *Config) {},
		},
		{
			name:    "depth below unlimited rejected",
			mutate:  func(c *Config) { c.Depth = -2 },
			wantErr: "depth",
		},
		{
			name:    "unknown format rejected",
			mutate:  func(c *Config) { c.Format = "fancy" },
			wantErr: "invalid format",
		},
		{
			name:    "unknown output rejected",
			mutate:  func(c *Config) { c.Output = "xml" },
			wantErr: "invalid output",
		},
		{
			name:    "negative verbosity rejected",
			mutate:  func(c *Config) { c.Verbose = -1 },
			wantErr: "verbosity",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{Depth: UnlimitedDepth, Output: OutputText}
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestLoadRejectsInvalidEnvironment(t *testing.T) {
	t.Setenv("DIRTREE_OUTPUT", "xml")

	_, err := Load()
	assert.Error(t, err)
}
