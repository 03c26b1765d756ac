package server

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, "localhost:8080", cfg.Addr())
}

func TestLoadConfig(t *testing.T) {
	content := `
server {
  address = "0.0.0.0"
  port    = 9000
}

game {
  order         = 5
  seed          = 1234
  shuffle       = true
  deal_interval = 3
}
`
	path := filepath.Join(t.TempDir(), "spotit.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9000", cfg.Addr())
	assert.Equal(t, 5, cfg.Game.Order)
	assert.Equal(t, int64(1234), cfg.Game.Seed)
	assert.True(t, cfg.Game.Shuffle)
	assert.Equal(t, 3, cfg.Game.DealInterval)
	// Unset fields fall back to defaults.
	assert.Equal(t, "info", cfg.Server.LogLevel)
}

func TestLoadConfigBadHCL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.hcl")
	require.NoError(t, os.WriteFile(path, []byte("server {"), 0o644))

	_, err := LoadConfig(path)
	require.Error(t, err)
}
