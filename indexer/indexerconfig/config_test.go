package indexerconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chainheadctl.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
DataDir = "/var/lib/chainhead"
DatabaseCache = 32
`), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "/var/lib/chainhead", cfg.DataDir)
	require.Equal(t, 32, cfg.DatabaseCache)
	require.Equal(t, DefaultConfig.DatabaseHandles, cfg.DatabaseHandles)
}

func TestLoadConfigRejectsUnknownField(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chainheadctl.toml")
	require.NoError(t, os.WriteFile(path, []byte(`NotAField = 1`), 0o600))

	_, err := LoadConfig(path)
	require.Error(t, err)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}
