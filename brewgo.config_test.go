package brewgo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, StorageBackendMemory, cfg.Storage)
	assert.Empty(t, cfg.TypeSeparator)
	assert.False(t, cfg.Trace)
}

func TestLoadConfig_ParsesYAML(t *testing.T) {
	data := []byte(`
type_separator: "#"
trace: true
storage: filesystem
filesystem_dir: /tmp/specs
`)
	cfg, err := LoadConfig("inline", data)
	require.NoError(t, err)
	assert.Equal(t, "#", cfg.TypeSeparator)
	assert.True(t, cfg.Trace)
	assert.Equal(t, StorageBackendFilesystem, cfg.Storage)
	assert.Equal(t, "/tmp/specs", cfg.FilesystemDir)
}

func TestLoadConfig_InvalidYAMLIsConfigParseError(t *testing.T) {
	_, err := LoadConfig("inline", []byte("not: valid: yaml: at: all:"))
	require.Error(t, err)
}

func TestLoadConfig_PostgresDSNFallsBackToEnv(t *testing.T) {
	t.Setenv(EnvPostgresDSN, "postgres://env-fallback")
	cfg, err := LoadConfig("inline", []byte("storage: postgres\n"))
	require.NoError(t, err)
	assert.Equal(t, "postgres://env-fallback", cfg.PostgresDSN)
}

func TestLoadConfig_ExplicitPostgresDSNWinsOverEnv(t *testing.T) {
	t.Setenv(EnvPostgresDSN, "postgres://env-fallback")
	cfg, err := LoadConfig("inline", []byte("postgres_dsn: postgres://explicit\n"))
	require.NoError(t, err)
	assert.Equal(t, "postgres://explicit", cfg.PostgresDSN)
}

func TestLoadConfigFile_MissingFileIsConfigLoadError(t *testing.T) {
	_, err := LoadConfigFile(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.Error(t, err)
}

func TestLoadConfigFile_ReadsFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "brewgo.yaml")
	require.NoError(t, os.WriteFile(path, []byte("trace: true\n"), 0o644))

	cfg, err := LoadConfigFile(path)
	require.NoError(t, err)
	assert.True(t, cfg.Trace)
}
