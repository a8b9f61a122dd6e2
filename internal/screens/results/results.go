package results

import (
	"context"
	"fmt"
	"image/color"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizdeck/internal/router"
	"github.com/abhisek/quizdeck/internal/screen"
	"github.com/abhisek/quizdeck/internal/session"
	"github.com/abhisek/quizdeck/internal/ui/components"
	"github.com/abhisek/quizdeck/internal/ui/layout"
	"github.com/abhisek/quizdeck/internal/ui/theme"
)

// ResultsScreen shows the outcome of a completed session.
type ResultsScreen struct {
	machine *session.Machine
	entry   session.HistoryEntry
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a ResultsScreen for the completed entry.
func New(machine *session.Machine, entry session.HistoryEntry) *ResultsScreen {
	return &ResultsScreen{machine: machine, entry: entry}
}

func (s *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultsScreen) Title() string {
	return s.entry.Subject
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		components.Hint(components.Keys.Submit, "Play Again"),
		components.Hint(components.Keys.Theme, ""),
		components.Hint(components.Keys.Quit, ""),
	}
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && key.Matches(kmsg, components.Keys.Submit, components.Keys.Back) {
		s.machine.Restart(context.Background())
		return s, func() tea.Msg { return router.PopToRootMsg{} }
	}
	return s, nil
}

func (s *ResultsScreen) View(width, height int) string {
	e := s.entry
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(theme.Centered(width, theme.Text, false, "Quiz completed"))
	b.WriteString("\n")
	b.WriteString(theme.Centered(width, theme.Text, true, "You scored..."))
	b.WriteString("\n\n")

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(1, 6).
		Align(lipgloss.Center).
		Render(
			lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(e.Subject) + "\n\n" +
				lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(fmt.Sprintf("%d", e.Score)) + "\n" +
				lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("out of %d", e.Total)),
		)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, card))
	b.WriteString("\n\n")

	b.WriteString(theme.Centered(width, scoreColor(e.Percentage), true,
		fmt.Sprintf("You scored %d out of %d (%d%%)", e.Score, e.Total, e.Percentage)))
	b.WriteString("\n\n")

	for i, a := range e.Answers {
		mark, c := "✓", theme.Success
		if !a.IsCorrect {
			mark, c = "✗", theme.Error
		}
		line := fmt.Sprintf("%s %d. %s", mark, i+1, a.Question)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(c).Width(min(width-8, 72)).Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}

func scoreColor(pct int) color.Color {
	switch {
	case pct >= 80:
		return theme.Success
	case pct >= 50:
		return theme.Accent
	default:
		return theme.Error
	}
}
