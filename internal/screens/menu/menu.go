package menu

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizdeck/internal/catalog"
	"github.com/abhisek/quizdeck/internal/router"
	"github.com/abhisek/quizdeck/internal/screen"
	"github.com/abhisek/quizdeck/internal/screens/history"
	"github.com/abhisek/quizdeck/internal/screens/quiz"
	"github.com/abhisek/quizdeck/internal/session"
	"github.com/abhisek/quizdeck/internal/store"
	"github.com/abhisek/quizdeck/internal/ui/components"
	"github.com/abhisek/quizdeck/internal/ui/layout"
	"github.com/abhisek/quizdeck/internal/ui/theme"
)

// MenuScreen lists the catalog subjects and the history entry point.
type MenuScreen struct {
	catalog catalog.Catalog
	machine *session.Machine
	history store.HistoryReader
	menu    components.Menu
	errMsg  string
}

var _ screen.Screen = (*MenuScreen)(nil)
var _ screen.KeyHintProvider = (*MenuScreen)(nil)
var _ screen.Refresher = (*MenuScreen)(nil)

// New creates the subject menu. history may be nil, in which case the
// history entry is omitted.
func New(cat catalog.Catalog, machine *session.Machine, history store.HistoryReader) *MenuScreen {
	s := &MenuScreen{catalog: cat, machine: machine, history: history}

	var items []components.MenuItem
	for _, subj := range cat.Subjects {
		items = append(items, components.MenuItem{
			Label:  subj.Title,
			Detail: questionCount(len(subj.Questions)),
			Action: s.start(subj),
		})
	}
	if history != nil {
		items = append(items, components.MenuItem{
			Label:  "History",
			Detail: "past results",
			Action: s.openHistory,
		})
	}
	s.menu = components.NewMenu(items)
	return s
}

func questionCount(n int) string {
	if n == 1 {
		return "1 question"
	}
	return fmt.Sprintf("%d questions", n)
}

func (s *MenuScreen) start(subj catalog.Subject) func() tea.Cmd {
	return func() tea.Cmd {
		if err := s.machine.Start(context.Background(), subj); err != nil {
			if errors.Is(err, session.ErrInvalidSubject) {
				s.errMsg = fmt.Sprintf("%s has no questions yet.", subj.Title)
			} else {
				s.errMsg = err.Error()
			}
			return nil
		}
		s.errMsg = ""
		q := quiz.New(s.machine)
		return func() tea.Msg { return router.PushScreenMsg{Screen: q} }
	}
}

func (s *MenuScreen) openHistory() tea.Cmd {
	s.errMsg = ""
	h := history.New(s.history)
	return func() tea.Msg { return router.PushScreenMsg{Screen: h} }
}

func (s *MenuScreen) Init() tea.Cmd {
	return nil
}

func (s *MenuScreen) Title() string {
	return "Menu"
}

func (s *MenuScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		components.Hint(components.Keys.Up, ""),
		components.Hint(components.Keys.Submit, "Start"),
		components.Hint(components.Keys.Theme, ""),
		components.Hint(components.Keys.Quit, ""),
	}
}

// Refresh clears stale errors when the menu becomes active again.
func (s *MenuScreen) Refresh() (screen.Screen, tea.Cmd) {
	s.errMsg = ""
	return s, nil
}

func (s *MenuScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *MenuScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(theme.Centered(width, theme.Text, true, "Welcome to the Frontend Quiz!"))
	b.WriteString("\n")
	b.WriteString(theme.Centered(width, theme.TextDim, false, "Pick a subject to get started."))
	b.WriteString("\n\n")

	if len(s.menu.Items) == 0 {
		b.WriteString(theme.Centered(width, theme.TextDim, false, "No subjects available."))
		return b.String()
	}

	menuBlock := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(1, 2).
		Render(strings.TrimRight(s.menu.View(), "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, menuBlock))
	b.WriteString("\n")

	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(theme.Centered(width, theme.Error, false, s.errMsg))
	}
	return b.String()
}
