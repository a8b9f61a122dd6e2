package components

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizdeck/internal/ui/theme"
)

// MenuItem represents a single item in a navigation menu.
type MenuItem struct {
	Label  string
	Detail string
	Action func() tea.Cmd
}

// Menu is a vertical navigation menu. Navigation wraps around.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu creates a new menu with the given items.
func NewMenu(items []MenuItem) Menu {
	return Menu{Items: items}
}

// Update handles keyboard navigation.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(m.Items) == 0 {
		return m, nil
	}

	switch {
	case key.Matches(kmsg, Keys.Up):
		m.Selected = (m.Selected - 1 + len(m.Items)) % len(m.Items)
	case key.Matches(kmsg, Keys.Down):
		m.Selected = (m.Selected + 1) % len(m.Items)
	case key.Matches(kmsg, Keys.Submit, Keys.Select):
		if item := m.Items[m.Selected]; item.Action != nil {
			return m, item.Action()
		}
	}
	return m, nil
}

// View renders the menu.
func (m Menu) View() string {
	detail := lipgloss.NewStyle().Foreground(theme.TextDim)

	var s string
	for i, item := range m.Items {
		style := lipgloss.NewStyle().Foreground(theme.Text)
		prefix := "    "
		if i == m.Selected {
			style = style.Foreground(theme.Primary).Bold(true)
			prefix = "  ▸ "
		}
		line := style.Render(prefix + item.Label)
		if item.Detail != "" {
			line += detail.Render("  " + item.Detail)
		}
		s += line + "\n"
	}
	return s
}
