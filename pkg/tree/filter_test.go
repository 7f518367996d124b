package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSkipDir(t *testing.T) {
	tests := []struct {
		name   string
		config func() Config
		dir    string
		want   bool
	}{
		{
			name:   "built-in directory skipped",
			config: DefaultConfig,
			dir:    "node_modules",
			want:   true,
		},
		{
			name:   "windows noise directory skipped",
			config: DefaultConfig,
			dir:    "System Volume Information",
			want:   true,
		},
		{
			name:   "ordinary directory kept",
			config: DefaultConfig,
			dir:    "src",
			want:   false,
		},
		{
			name:   "hidden directory skipped",
			config: DefaultConfig,
			dir:    ".cache",
			want:   true,
		},
		{
			name: "built-in list bypassed when skipCommon disabled",
			config: func() Config {
				cfg := DefaultConfig()
				cfg.SkipCommon = false
				cfg.SkipHidden = false
				return cfg
			},
			dir:  "node_modules",
			want: false,
		},
		{
			name: "hidden rule independent of skipCommon",
			config: func() Config {
				cfg := DefaultConfig()
				cfg.SkipCommon = false
				return cfg
			},
			dir:  ".git",
			want: true,
		},
		{
			name: "custom directory skipped",
			config: func() Config {
				cfg := DefaultConfig()
				cfg.AddSkipDir("build")
				return cfg
			},
			dir:  "build",
			want: true,
		},
		{
			name: "custom list inert when skipCommon disabled",
			config: func() Config {
				cfg := DefaultConfig()
				cfg.SkipCommon = false
				cfg.SkipHidden = false
				cfg.AddSkipDir("build")
				return cfg
			},
			dir:  "build",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.config()
			assert.Equal(t, tt.want, skipDir(&cfg, tt.dir))
		})
	}
}

func TestSkipFile(t *testing.T) {
	tests := []struct {
		name   string
		config func() Config
		file   string
		want   bool
	}{
		{
			name:   "built-in file skipped",
			config: DefaultConfig,
			file:   "Thumbs.db",
			want:   true,
		},
		{
			name:   "skip list match is case sensitive",
			config: DefaultConfig,
			file:   "thumbs.db",
			want:   false,
		},
		{
			name:   "ordinary file kept",
			config: DefaultConfig,
			file:   "main.go",
			want:   false,
		},
		{
			name:   "hidden file skipped",
			config: DefaultConfig,
			file:   ".bashrc",
			want:   true,
		},
		{
			name: "custom file skipped",
			config: func() Config {
				cfg := DefaultConfig()
				cfg.AddSkipFile("debug.log")
				return cfg
			},
			file: "debug.log",
			want: true,
		},
		{
			name: "everything kept when all rules disabled",
			config: func() Config {
				cfg := DefaultConfig()
				cfg.SkipCommon = false
				cfg.SkipHidden = false
				return cfg
			},
			file: ".env",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.config()
			assert.Equal(t, tt.want, skipFile(&cfg, tt.file))
		})
	}
}

func TestSkipEntryDispatch(t *testing.T) {
	cfg := DefaultConfig()

	// node_modules is on the directory list only: a file by that name
	// survives, a directory does not.
	assert.True(t, skipEntry(&cfg, Entry{Name: "node_modules", Kind: KindDir}))
	assert.False(t, skipEntry(&cfg, Entry{Name: "node_modules", Kind: KindFile}))

	// Thumbs.db is on the file list only.
	assert.True(t, skipEntry(&cfg, Entry{Name: "Thumbs.db", Kind: KindFile}))
	assert.False(t, skipEntry(&cfg, Entry{Name: "Thumbs.db", Kind: KindDir}))

	// Symlinks and other specials follow the file rules.
	assert.True(t, skipEntry(&cfg, Entry{Name: ".env", Kind: KindOther}))
}
