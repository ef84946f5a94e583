package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	chdirTemp(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, 50, cfg.App.BodyLimitMB)
	assert.Equal(t, 300, cfg.App.SocketTimeoutSec)
	assert.Equal(t, "local", cfg.Upload.Driver)
	assert.False(t, cfg.Auth.Enabled)
	assert.Equal(t, "admin@gmail.com", cfg.Auth.AdminEmail)
}

func TestLoad_FileWithEnvExpansion(t *testing.T) {
	dir := chdirTemp(t)
	t.Setenv("VIMCO_TEST_DSN", "postgres://u:p@db:5432/vimco")

	yaml := []byte("app:\n  port: 9090\ndatabase:\n  dsn: ${VIMCO_TEST_DSN}\nupload:\n  driver: s3\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), yaml, 0o644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.App.Port)
	assert.Equal(t, "postgres://u:p@db:5432/vimco", cfg.Database.DSN)
	assert.Equal(t, "s3", cfg.Upload.Driver)
	// untouched keys keep defaults
	assert.Equal(t, 10, cfg.Upload.MaxFileMB)
}
