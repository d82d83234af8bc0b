package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_Valid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "yaml", cfg.Format)
	assert.Equal(t, "stdio", cfg.Serve.Transport)
	assert.Equal(t, 8080, cfg.Serve.Port)
}

func TestDefaultConfigPath_XDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path, err := DefaultConfigPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "scap", "config.yaml"), path)
}

func TestLoadFromPath_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFromPath(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadFromPath_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
log_dir: /tmp/scap-logs
verbose: true
format: json
serve:
  transport: streamable-http
`), 0o644))

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/scap-logs", cfg.LogDir)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "streamable-http", cfg.Serve.Transport)
	assert.Equal(t, 8080, cfg.Serve.Port, "unset keys keep defaults")
}

func TestParse_EmptyDocument(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestParse_Invalid(t *testing.T) {
	tests := map[string]string{
		"bad format":    "format: xml\n",
		"bad transport": "serve:\n  transport: sse\n",
		"bad port":      "serve:\n  port: 70000\n",
		"unknown key":   "colour: blue\n",
		"not yaml":      "format: [yaml\n",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.Error(t, err)
		})
	}
}
