package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyRune(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func keyCode(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

var options = []string{"Hyper Text Markup Language", "High Tech Modern Language", "Hyper Transfer Markup Language", "Home Tool Markup Language"}

func TestMultiChoice_CursorWraps(t *testing.T) {
	m := NewMultiChoice(options)

	m, _, ok := m.Update(keyCode(tea.KeyUp))
	assert.False(t, ok)
	assert.Equal(t, 3, m.Cursor)
	m, _, _ = m.Update(keyCode(tea.KeyDown))
	assert.Equal(t, 0, m.Cursor)
	m, _, _ = m.Update(keyRune('j'))
	assert.Equal(t, 1, m.Cursor)
}

func TestMultiChoice_SelectKeys(t *testing.T) {
	tests := []struct {
		name string
		msg        tea.KeyPressMsg
		want       string
		wantCursor int
	}{
		{"space at cursor", keyCode(tea.KeySpace), options[0], 0},
		{"digit", keyRune('3'), options[2], 2},
		{"letter", keyRune('d'), options[3], 3},
		{"letter b", keyRune('b'), options[1], 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, got, ok := NewMultiChoice(options).Update(tt.msg)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantCursor, m.Cursor)
		})
	}
}

func TestMultiChoice_IgnoresInputWhenRevealed(t *testing.T) {
	m := NewMultiChoice(options)
	m.Revealed = true

	m, _, ok := m.Update(keyRune('2'))
	assert.False(t, ok)
	assert.Equal(t, 0, m.Cursor)
}

func TestMultiChoice_ViewMarksAnswers(t *testing.T) {
	m := NewMultiChoice(options)
	m.Selected = options[1]
	m.Revealed = true
	m.Correct = options[0]

	view := m.View()
	lines := strings.Split(strings.TrimRight(view, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "A)")
	assert.Contains(t, lines[0], "✓")
	assert.Contains(t, lines[1], "✗")
	assert.NotContains(t, lines[2], "✓")
}

func TestMenu_WrapAndActivate(t *testing.T) {
	activated := ""
	item := func(label string) MenuItem {
		return MenuItem{Label: label, Action: func() tea.Cmd {
			activated = label
			return nil
		}}
	}
	m := NewMenu([]MenuItem{item("HTML"), item("CSS"), item("History")})

	m, _ = m.Update(keyCode(tea.KeyUp))
	assert.Equal(t, 2, m.Selected)
	m, _ = m.Update(keyCode(tea.KeyDown))
	assert.Equal(t, 0, m.Selected)
	m, _ = m.Update(keyCode(tea.KeyDown))
	m.Update(keyCode(tea.KeyEnter))
	assert.Equal(t, "CSS", activated)

	assert.Contains(t, m.View(), "▸ CSS")
}

func TestQuestionProgress(t *testing.T) {
	p := QuestionProgress(2, 10, 60)
	assert.Equal(t, "Question 3 of 10", p.Label)
	assert.InDelta(t, 0.3, p.Percent, 1e-9)
	assert.Contains(t, p.View(), "Question 3 of 10")

	empty := QuestionProgress(0, 0, 60)
	assert.Zero(t, empty.Percent)
}

func TestHint(t *testing.T) {
	assert.Equal(t, "Enter", Hint(Keys.Submit, "").Key)
	assert.Equal(t, "Submit", Hint(Keys.Submit, "").Description)
	assert.Equal(t, "Next Question", Hint(Keys.Submit, "Next Question").Description)
}
