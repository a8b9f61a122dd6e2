package app

import (
	"context"
	"fmt"
	"log"
	"os"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizdeck/internal/catalog"
	"github.com/abhisek/quizdeck/internal/router"
	"github.com/abhisek/quizdeck/internal/screen"
	"github.com/abhisek/quizdeck/internal/screens/menu"
	"github.com/abhisek/quizdeck/internal/session"
	"github.com/abhisek/quizdeck/internal/store"
	"github.com/abhisek/quizdeck/internal/ui/components"
	"github.com/abhisek/quizdeck/internal/ui/layout"
	"github.com/abhisek/quizdeck/internal/ui/theme"
)

// Options holds the dependencies of the TUI.
type Options struct {
	Catalog catalog.Catalog
	Machine *session.Machine
	History store.HistoryReader // optional
	Prefs   store.PrefsRepo     // optional
	Logger  *log.Logger         // optional

	// FollowTerminalTheme picks dark or light from the terminal background
	// until the player toggles the theme. Set when no theme is stored.
	FollowTerminalTheme bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	prefs  store.PrefsRepo
	logger *log.Logger
	width  int
	height int

	followTerminal bool
}

// newAppModel creates a new AppModel with the subject menu as root.
func newAppModel(opts Options) AppModel {
	machine := opts.Machine
	if machine == nil {
		machine = session.NewMachine(nil, opts.Logger)
	}
	return AppModel{
		router: router.New(menu.New(opts.Catalog, machine, opts.History)),
		prefs:  opts.Prefs,
		logger: opts.Logger,

		followTerminal: opts.FollowTerminalTheme,
	}
}

func (m AppModel) Init() tea.Cmd {
	if m.followTerminal {
		return tea.RequestBackgroundColor
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.BackgroundColorMsg:
		if m.followTerminal {
			if msg.IsDark() {
				theme.Apply(theme.Dark)
			} else {
				theme.Apply(theme.Light)
			}
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, components.Keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, components.Keys.Theme):
			m.followTerminal = false
			return m, m.saveTheme(theme.Toggle())
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// saveTheme persists the preference in the background. Failures are logged
// and otherwise ignored.
func (m AppModel) saveTheme(mode theme.Mode) tea.Cmd {
	if m.prefs == nil {
		return nil
	}
	prefs, logger := m.prefs, m.logger
	return func() tea.Msg {
		if err := prefs.SetTheme(context.Background(), string(mode)); err != nil && logger != nil {
			logger.Printf("warning: theme preference not saved: %v", err)
		}
		return nil
	}
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, theme.Current(), m.width)

	footerHints := []layout.KeyHint{
		components.Hint(components.Keys.Back, "Back"),
		components.Hint(components.Keys.Quit, ""),
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	}
	footer := layout.RenderFooter(footerHints, m.width)

	content := m.router.View(m.width, layout.ContentHeight(header, footer, m.height))
	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
