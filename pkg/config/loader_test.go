package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		filename    string
		content     string
		wantErr     bool
		errContains string
		check       func(t *testing.T, cfg *Config)
	}{
		{
			name:     "yaml",
			filename: "config.yaml",
			content: `
device_dir: /mnt/reader
documents_dirs:
  - /srv/books
  - /srv/papers
extensions:
  - epub
  - pdf
ignore:
  - "drafts/**"
dry_run: true
queue_size: 64
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "/mnt/reader", cfg.DeviceDir, "device dir should match")
				assert.Equal(t, []string{"/srv/books", "/srv/papers"}, cfg.DocumentsDirs, "documents dirs should match")
				assert.Equal(t, []string{"epub", "pdf"}, cfg.Extensions, "extensions should match")
				assert.Equal(t, []string{"drafts/**"}, cfg.Ignore, "ignore globs should match")
				assert.True(t, cfg.DryRun, "dry run should be set")
				assert.Equal(t, 64, cfg.QueueSize, "queue size should match")
			},
		},
		{
			name:     "json",
			filename: "config.json",
			content: `{
  "device_dir": "/mnt/reader",
  "documents_dirs": ["/srv/books"],
  "extensions": ["mobi"],
  "ignore": [],
  "dry_run": false,
  "queue_size": 0
}`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "/mnt/reader", cfg.DeviceDir)
				assert.Equal(t, []string{"mobi"}, cfg.Extensions)
			},
		},
		{
			name:     "hcl",
			filename: "config.hcl",
			content: `
device_dir     = "/mnt/reader"
documents_dirs = ["/srv/books"]
extensions     = ["epub"]
dry_run        = true
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "/mnt/reader", cfg.DeviceDir)
				assert.Equal(t, []string{"/srv/books"}, cfg.DocumentsDirs)
				assert.True(t, cfg.DryRun)
			},
		},
		{
			name:     "booksync_yaml",
			filename: ".booksync",
			content:  "device_dir: /mnt/reader\ndocuments_dirs: [/srv/books]\n",
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "/mnt/reader", cfg.DeviceDir)
			},
		},
		{
			name:     "booksync_hcl",
			filename: ".booksync",
			content:  "device_dir = \"/mnt/reader\"\ndocuments_dirs = [\"/srv/books\"]\n",
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "/mnt/reader", cfg.DeviceDir)
			},
		},
		{
			name:        "unknown_yaml_field",
			filename:    "config.yaml",
			content:     "device_dir: /mnt/reader\nbogus: true\n",
			wantErr:     true,
			errContains: "parsing YAML",
		},
		{
			name:        "unsupported_extension",
			filename:    "config.toml",
			content:     "device_dir = '/mnt/reader'",
			wantErr:     true,
			errContains: "unsupported file extension",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.filename, tt.content)

			cfg, err := Load(path)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, path, cfg.Location(), "location should record the source file")
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}
