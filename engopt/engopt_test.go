package engopt

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 128, cfg.HashSizeMB)
	assert.Equal(t, 1, cfg.Threads)
	assert.True(t, cfg.UseSEE)
	require.NoError(t, cfg.Validate())
}

func TestLoadEmptyPathReturnsDefault(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesSelectedFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rivalgo.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
hash_size_mb = 256
use_see = false
log_level = "debug"
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 256, cfg.HashSizeMB)
	assert.False(t, cfg.UseSEE)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 1, cfg.Threads) // unset fields keep Default's value
}

func TestLoadRejectsMultipleThreads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rivalgo.toml")
	require.NoError(t, os.WriteFile(path, []byte(`threads = 4`), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsBadSyntax(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rivalgo.toml")
	require.NoError(t, os.WriteFile(path, []byte(`not = [valid toml`), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidateRejectsNonPositiveHash(t *testing.T) {
	cfg := Default()
	cfg.HashSizeMB = 0
	assert.Error(t, cfg.Validate())
}
