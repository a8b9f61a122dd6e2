package components

import (
	"fmt"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizdeck/internal/ui/theme"
)

var optionLabels = []string{"A", "B", "C", "D"}

// MultiChoice renders the options of one question. It owns only the
// cursor; the selection and the revealed answer come from the session.
type MultiChoice struct {
	Options  []string
	Cursor   int
	Selected string

	// Revealed is set once the answer is submitted. Correct is only
	// meaningful while Revealed is true.
	Revealed bool
	Correct  string
}

// NewMultiChoice creates a selector over options with the cursor on the first.
func NewMultiChoice(options []string) MultiChoice {
	return MultiChoice{Options: options}
}

// Update moves the cursor. For selection keys it also returns the chosen
// option with ok set, so the caller can record it before the next key.
// Input is ignored once the answer is revealed.
func (m MultiChoice) Update(msg tea.Msg) (next MultiChoice, chosen string, ok bool) {
	kmsg, isKey := msg.(tea.KeyMsg)
	if !isKey || m.Revealed || len(m.Options) == 0 {
		return m, "", false
	}

	switch {
	case key.Matches(kmsg, Keys.Up):
		m.Cursor = (m.Cursor - 1 + len(m.Options)) % len(m.Options)
		return m, "", false
	case key.Matches(kmsg, Keys.Down):
		m.Cursor = (m.Cursor + 1) % len(m.Options)
		return m, "", false
	case key.Matches(kmsg, Keys.Select):
		return m, m.Options[m.Cursor], true
	}

	for i, b := range optionKeys {
		if i < len(m.Options) && key.Matches(kmsg, b) {
			m.Cursor = i
			return m, m.Options[i], true
		}
	}
	return m, "", false
}

// View renders the option list.
func (m MultiChoice) View() string {
	var s string
	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Cursor && !m.Revealed {
			prefix = "▸ "
		}

		mark := ""
		style := lipgloss.NewStyle().Foreground(theme.Text)
		switch {
		case m.Revealed && opt == m.Correct:
			style = style.Foreground(theme.Success).Bold(true)
			mark = "  ✓"
		case m.Revealed && opt == m.Selected:
			style = style.Foreground(theme.Error).Bold(true)
			mark = "  ✗"
		case m.Revealed:
			style = style.Foreground(theme.TextDim)
		case opt == m.Selected:
			style = style.Foreground(theme.Primary).Bold(true)
			mark = "  ●"
		case i == m.Cursor:
			style = style.Foreground(theme.Secondary)
		}

		label := "?"
		if i < len(optionLabels) {
			label = optionLabels[i]
		}
		s += style.Render(fmt.Sprintf("%s%s)  %s%s", prefix, label, opt, mark)) + "\n"
	}
	return s
}
