package history

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizdeck/internal/router"
	"github.com/abhisek/quizdeck/internal/screen"
	"github.com/abhisek/quizdeck/internal/session"
	"github.com/abhisek/quizdeck/internal/store"
	"github.com/abhisek/quizdeck/internal/ui/components"
	"github.com/abhisek/quizdeck/internal/ui/layout"
	"github.com/abhisek/quizdeck/internal/ui/theme"
)

type historyLoadedMsg struct {
	Entries []session.HistoryEntry
	Err     error
}

// HistoryScreen lists completed sessions, newest first.
type HistoryScreen struct {
	reader   store.HistoryReader
	entries  []session.HistoryEntry
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(reader store.HistoryReader) *HistoryScreen {
	return &HistoryScreen{
		reader:   reader,
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		entries, err := s.reader.ReadAll(context.Background())
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		slices.Reverse(entries)
		return historyLoadedMsg{Entries: entries}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		components.Hint(components.Keys.Submit, "Details"),
		components.Hint(components.Keys.Up, ""),
		components.Hint(components.Keys.Back, "Back"),
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.entries = msg.Entries
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, components.Keys.Back):
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case key.Matches(msg, components.Keys.Up):
			if s.selected > 0 {
				s.selected--
			}
		case key.Matches(msg, components.Keys.Down):
			if s.selected < len(s.entries)-1 {
				s.selected++
			}
		case key.Matches(msg, components.Keys.Submit, components.Keys.Select):
			s.expanded[s.selected] = !s.expanded[s.selected]
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return theme.Centered(width, theme.Error, false, fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return theme.Centered(width, theme.TextDim, false, "\n\n  Loading history...")
	}
	if len(s.entries) == 0 {
		return theme.Centered(width, theme.TextDim, false, "\n\n  No completed quizzes yet.")
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Centered(width, theme.TextDim, false, summarize(s.entries)))
	b.WriteString("\n\n")

	for i, e := range s.entries {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %-14s  %2d/%-2d  %3d%%",
			prefix, e.CompletedAt.Local().Format("Jan 02, 2006 15:04"), e.Subject, e.Score, e.Total, e.Percentage)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			b.WriteString(renderAnswers(e.Answers, width))
		}
	}

	return b.String()
}

func renderAnswers(answers []session.AnswerRecord, width int) string {
	if len(answers) == 0 {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render("    No answers recorded")) + "\n"
	}

	var b strings.Builder
	for _, a := range answers {
		line := fmt.Sprintf("    ✓ %s: %s", a.Question, a.SelectedAnswer)
		c := theme.Success
		if !a.IsCorrect {
			line = fmt.Sprintf("    ✗ %s: %s (answer: %s)", a.Question, a.SelectedAnswer, a.CorrectAnswer)
			c = theme.Error
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(c).Render(line)))
		b.WriteString("\n")
	}
	return b.String()
}

// summarize reports the number of sessions and the best score per subject.
func summarize(entries []session.HistoryEntry) string {
	best := make(map[string]int)
	var order []string
	for _, e := range entries {
		p, seen := best[e.Subject]
		if !seen {
			order = append(order, e.Subject)
		}
		if !seen || e.Percentage > p {
			best[e.Subject] = e.Percentage
		}
	}
	slices.Sort(order)

	parts := make([]string, 0, len(order))
	for _, subj := range order {
		parts = append(parts, fmt.Sprintf("%s best %d%%", subj, best[subj]))
	}
	return fmt.Sprintf("%d completed · %s", len(entries), strings.Join(parts, " · "))
}
