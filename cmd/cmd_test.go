package cmd

import (
	"bytes"
	"context"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quizdeck/internal/catalog"
	"github.com/abhisek/quizdeck/internal/store"
	"github.com/abhisek/quizdeck/internal/ui/theme"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	t.Setenv("QUIZDECK_DB", "")
	t.Setenv("QUIZDECK_CATALOG", "")
	t.Setenv("QUIZDECK_CATALOG_TIMEOUT", "")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "quizdeck (devel)\n", out)
}

func TestTheme_SetAndGet(t *testing.T) {
	db := filepath.Join(t.TempDir(), "q.db")

	out, err := execute(t, "theme", "--db", db)
	require.NoError(t, err)
	assert.Equal(t, "dark (default)\n", out)

	out, err = execute(t, "theme", "--db", db, "light")
	require.NoError(t, err)
	assert.Equal(t, "Theme set to light\n", out)

	out, err = execute(t, "theme", "--db", db)
	require.NoError(t, err)
	assert.Equal(t, "light\n", out)

	_, err = execute(t, "theme", "--db", db, "sepia")
	assert.ErrorContains(t, err, `unknown theme "sepia"`)
}

func TestHistory_EmptyJSON(t *testing.T) {
	db := filepath.Join(t.TempDir(), "q.db")

	out, err := execute(t, "history", "--db", db, "--json")
	require.NoError(t, err)
	assert.Equal(t, "[]\n", out)
}

func TestReset_RestoresDefaultTheme(t *testing.T) {
	db := filepath.Join(t.TempDir(), "q.db")

	_, err := execute(t, "theme", "--db", db, "light")
	require.NoError(t, err)

	out, err := execute(t, "reset", "--db", db)
	require.NoError(t, err)
	assert.Equal(t, "Preferences reset.\n", out)

	out, err = execute(t, "theme", "--db", db)
	require.NoError(t, err)
	assert.Equal(t, "dark (default)\n", out)
}

func TestCatalogValidate(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.json")
	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(good, catalog.FallbackDocument(), 0o644))
	require.NoError(t, os.WriteFile(bad, []byte(`{"quizzes": []}`), 0o644))

	out, err := execute(t, "catalog", "validate", good)
	require.NoError(t, err)
	assert.Equal(t, "valid: 4 subjects, 40 questions\n", out)

	_, err = execute(t, "catalog", "validate", bad)
	assert.Error(t, err)
}

func TestCatalogShow_FallsBack(t *testing.T) {
	out, err := execute(t, "catalog", "show", "--catalog", filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, err)
	for _, title := range []string{"HTML", "CSS", "JavaScript", "Accessibility"} {
		assert.True(t, strings.Contains(out, title), "missing %s", title)
	}
}

func TestApplyStoredTheme(t *testing.T) {
	t.Cleanup(func() { theme.Apply(theme.Dark) })
	ctx := context.Background()

	st, err := store.Open(filepath.Join(t.TempDir(), "q.db"))
	require.NoError(t, err)
	defer st.Close()
	prefs := st.Prefs()

	var logs bytes.Buffer
	logger := log.New(&logs, "", 0)

	assert.False(t, applyStoredTheme(ctx, prefs, logger), "nothing stored")

	require.NoError(t, prefs.SetTheme(ctx, "light"))
	theme.Apply(theme.Dark)
	assert.True(t, applyStoredTheme(ctx, prefs, logger))
	assert.Equal(t, theme.Light, theme.Current())

	require.NoError(t, prefs.SetTheme(ctx, "sepia"))
	assert.False(t, applyStoredTheme(ctx, prefs, logger))
	assert.Contains(t, logs.String(), `unknown theme "sepia"`)
}

func TestLoadConfig_LogFollowsDBFlag(t *testing.T) {
	dir := t.TempDir()
	xdg := t.TempDir()
	t.Setenv("XDG_DATA_HOME", xdg)
	t.Setenv("QUIZDECK_DB", "")
	t.Setenv("QUIZDECK_LOG", "")
	t.Setenv("QUIZDECK_CATALOG_TIMEOUT", "")

	require.NoError(t, rootCmd.ParseFlags([]string{"--db", filepath.Join(dir, "q.db")}))
	t.Cleanup(func() { rootCmd.Flags().Set("db", "") })

	cfg, err := loadConfig(rootCmd)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "quizdeck.log"), cfg.LogPath)
	assert.NoDirExists(t, filepath.Join(xdg, "quizdeck"))
}
