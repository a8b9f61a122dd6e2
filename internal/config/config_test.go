package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dir)
	t.Setenv("QUIZDECK_DB", "")
	t.Setenv("QUIZDECK_CATALOG", "")
	t.Setenv("QUIZDECK_CATALOG_TIMEOUT", "")
	t.Setenv("QUIZDECK_LOG", "")
	t.Setenv("QUIZDECK_ADDR", "")

	cfg, err := Load(Overrides{})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "quizdeck", "quizdeck.db"), cfg.DBPath)
	assert.Equal(t, filepath.Join(dir, "quizdeck", "quizdeck.log"), cfg.LogPath)
	assert.Equal(t, "", cfg.CatalogSource)
	assert.Equal(t, 5*time.Second, cfg.CatalogTimeout)
	assert.Equal(t, ":8080", cfg.ServeAddr)
}

func TestFromEnv_Overrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("QUIZDECK_DB", filepath.Join(dir, "q.db"))
	t.Setenv("QUIZDECK_CATALOG", "http://localhost:8080/data.json")
	t.Setenv("QUIZDECK_CATALOG_TIMEOUT", "250ms")
	t.Setenv("QUIZDECK_LOG", filepath.Join(dir, "q.log"))
	t.Setenv("QUIZDECK_ADDR", "127.0.0.1:9000")

	cfg, err := Load(Overrides{})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "q.db"), cfg.DBPath)
	assert.Equal(t, "http://localhost:8080/data.json", cfg.CatalogSource)
	assert.Equal(t, 250*time.Millisecond, cfg.CatalogTimeout)
	assert.Equal(t, filepath.Join(dir, "q.log"), cfg.LogPath)
	assert.Equal(t, "127.0.0.1:9000", cfg.ServeAddr)
}

func TestFromEnv_BadTimeout(t *testing.T) {
	t.Setenv("QUIZDECK_DB", filepath.Join(t.TempDir(), "q.db"))

	for _, v := range []string{"soon", "-1s", "0s"} {
		t.Setenv("QUIZDECK_CATALOG_TIMEOUT", v)
		_, err := FromEnv()
		assert.Error(t, err, "timeout %q", v)
	}
}

func TestLoad_DBOverrideMovesDefaultLog(t *testing.T) {
	xdg := t.TempDir()
	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", xdg)
	t.Setenv("QUIZDECK_DB", "")
	t.Setenv("QUIZDECK_LOG", "")
	t.Setenv("QUIZDECK_CATALOG", "from-env.json")
	t.Setenv("QUIZDECK_CATALOG_TIMEOUT", "")

	cfg, err := Load(Overrides{DBPath: filepath.Join(dir, "x", "q.db"), CatalogSource: "from-flag.json"})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "x", "q.db"), cfg.DBPath)
	assert.Equal(t, filepath.Join(dir, "x", "quizdeck.log"), cfg.LogPath)
	assert.Equal(t, "from-flag.json", cfg.CatalogSource)
	assert.DirExists(t, filepath.Join(dir, "x"))
	assert.NoDirExists(t, filepath.Join(xdg, "quizdeck"))
}

func TestLoad_ExplicitLogWins(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("QUIZDECK_LOG", filepath.Join(dir, "elsewhere.log"))
	t.Setenv("QUIZDECK_CATALOG_TIMEOUT", "")

	cfg, err := Load(Overrides{DBPath: filepath.Join(dir, "q.db")})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "elsewhere.log"), cfg.LogPath)
}
