package app

import (
	"bytes"
	"context"
	"errors"
	"image/color"
	"log"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quizdeck/internal/catalog"
	"github.com/abhisek/quizdeck/internal/ui/theme"
)

type mockPrefs struct {
	saved []string
	err   error
}

func (m *mockPrefs) Theme(context.Context) (string, error) { return "", nil }
func (m *mockPrefs) ResetTheme(context.Context) error     { return nil }
func (m *mockPrefs) SetTheme(_ context.Context, t string) error {
	m.saved = append(m.saved, t)
	return m.err
}

func update(t *testing.T, m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	am, ok := next.(AppModel)
	require.True(t, ok)
	return am, cmd
}

func TestApp_ThemeToggleIsPersisted(t *testing.T) {
	theme.Apply(theme.Dark)
	t.Cleanup(func() { theme.Apply(theme.Dark) })

	prefs := &mockPrefs{}
	m := newAppModel(Options{Catalog: catalog.Fallback(), Prefs: prefs})

	_, cmd := update(t, m, tea.KeyPressMsg{Code: 't', Text: "t"})
	require.NotNil(t, cmd)
	cmd()
	assert.Equal(t, theme.Light, theme.Current())
	assert.Equal(t, []string{"light"}, prefs.saved)
}

func TestApp_ThemeSaveFailureIsLogged(t *testing.T) {
	theme.Apply(theme.Dark)
	t.Cleanup(func() { theme.Apply(theme.Dark) })

	var logs bytes.Buffer
	prefs := &mockPrefs{err: errors.New("disk full")}
	m := newAppModel(Options{Catalog: catalog.Fallback(), Prefs: prefs, Logger: log.New(&logs, "", 0)})

	_, cmd := update(t, m, tea.KeyPressMsg{Code: 't', Text: "t"})
	require.NotNil(t, cmd)
	assert.Nil(t, cmd())
	assert.Contains(t, logs.String(), "warning: theme preference not saved: disk full")
}

func TestApp_CtrlCQuits(t *testing.T) {
	m := newAppModel(Options{Catalog: catalog.Fallback()})

	_, cmd := update(t, m, tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestApp_ViewRendersMenu(t *testing.T) {
	m := newAppModel(Options{Catalog: catalog.Fallback()})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	assert.True(t, m.View().AltScreen)

	content := m.router.View(100, 30)
	assert.Contains(t, content, "HTML")
	assert.Contains(t, content, "Accessibility")
	assert.NotContains(t, content, "History")
}

func TestApp_PlaysThroughRouter(t *testing.T) {
	m := newAppModel(Options{Catalog: catalog.Fallback()})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	_, cmd := update(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())
	assert.Equal(t, 2, m.router.Depth())
	assert.Equal(t, "HTML", m.router.Active().Title())
	assert.Contains(t, m.router.View(100, 30), "What does HTML stand for?")

	_, cmd = update(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())
	assert.Equal(t, 1, m.router.Depth())
}

func TestApp_FollowsTerminalBackground(t *testing.T) {
	theme.Apply(theme.Dark)
	t.Cleanup(func() { theme.Apply(theme.Dark) })

	m := newAppModel(Options{Catalog: catalog.Fallback(), FollowTerminalTheme: true})
	require.NotNil(t, m.Init())

	m, _ = update(t, m, tea.BackgroundColorMsg{Color: color.White})
	assert.Equal(t, theme.Light, theme.Current())

	m, _ = update(t, m, tea.BackgroundColorMsg{Color: color.Black})
	assert.Equal(t, theme.Dark, theme.Current())

	// An explicit toggle stops following the terminal.
	m, _ = update(t, m, tea.KeyPressMsg{Code: 't', Text: "t"})
	assert.Equal(t, theme.Light, theme.Current())
	update(t, m, tea.BackgroundColorMsg{Color: color.Black})
	assert.Equal(t, theme.Light, theme.Current())
}

func TestApp_StoredThemeIgnoresTerminalBackground(t *testing.T) {
	theme.Apply(theme.Light)
	t.Cleanup(func() { theme.Apply(theme.Dark) })

	m := newAppModel(Options{Catalog: catalog.Fallback()})
	assert.Nil(t, m.Init())

	update(t, m, tea.BackgroundColorMsg{Color: color.Black})
	assert.Equal(t, theme.Light, theme.Current())
}
