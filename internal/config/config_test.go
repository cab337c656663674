package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWhenFileMissing(t *testing.T) {
	// given a path that does not exist
	path := filepath.Join(t.TempDir(), "application.yaml")

	// when
	cfg, err := Load(path)

	// then
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:3000", cfg.Host)
	assert.Equal(t, 8181, cfg.Port)
	assert.True(t, cfg.Frontend.Enabled)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "stridelog", cfg.Database.Name)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	// given
	path := filepath.Join(t.TempDir(), "application.yaml")
	content := []byte("port: 9090\ndb:\n  host: db.internal\n  pass: secret\n")
	require.NoError(t, os.WriteFile(path, content, 0o644))

	// when
	cfg, err := Load(path)

	// then
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "secret", cfg.Database.Pass)
	// untouched keys keep their defaults
	assert.Equal(t, "http://localhost:3000", cfg.Host)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	// given
	path := filepath.Join(t.TempDir(), "application.yaml")
	content := []byte("port: 9090\n")
	require.NoError(t, os.WriteFile(path, content, 0o644))
	t.Setenv("STRIDELOG_PORT", "7070")
	t.Setenv("STRIDELOG_STRAVA_CLIENTID", "env-client-id")

	// when
	cfg, err := Load(path)

	// then
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Port)
	assert.Equal(t, "env-client-id", cfg.Strava.ClientId)
}
