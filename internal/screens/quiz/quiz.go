package quiz

import (
	"context"
	"errors"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizdeck/internal/router"
	"github.com/abhisek/quizdeck/internal/screen"
	"github.com/abhisek/quizdeck/internal/screens/results"
	"github.com/abhisek/quizdeck/internal/session"
	"github.com/abhisek/quizdeck/internal/ui/components"
	"github.com/abhisek/quizdeck/internal/ui/layout"
	"github.com/abhisek/quizdeck/internal/ui/theme"
)

// Prompt shown when Enter is pressed without a selection.
const noSelectionMsg = "Please select an answer"

// QuizScreen presents the current question of the machine's session.
type QuizScreen struct {
	machine  *session.Machine
	choice   components.MultiChoice
	feedback *session.Feedback
	errMsg   string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a QuizScreen over a machine whose session has been started.
func New(machine *session.Machine) *QuizScreen {
	s := &QuizScreen{machine: machine}
	s.resetChoice()
	return s
}

func (s *QuizScreen) resetChoice() {
	s.choice = components.NewMultiChoice(nil)
	s.feedback = nil
	if q, ok := s.machine.Session().CurrentQuestion(); ok {
		s.choice = components.NewMultiChoice(q.Options)
	}
}

func (s *QuizScreen) Init() tea.Cmd {
	return nil
}

func (s *QuizScreen) Title() string {
	if subj := s.machine.Session().Subject(); subj != nil {
		return subj.Title
	}
	return "Quiz"
}

// SubmitLabel is the label of the primary action for the current phase.
func (s *QuizScreen) SubmitLabel() string {
	sess := s.machine.Session()
	if sess.Phase() != session.PhaseConfirmed {
		return "Submit Answer"
	}
	if sess.IsLastQuestion() {
		return "Finish Quiz"
	}
	return "Next Question"
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{components.Hint(components.Keys.Submit, s.SubmitLabel())}
	if s.machine.Session().Phase() == session.PhaseAnswering {
		hints = append(hints,
			components.Hint(components.Keys.Up, ""),
			layout.KeyHint{Key: "Space/A-D", Description: "Select"},
		)
		if !s.machine.Session().HasSelection() {
			hints = append(hints, components.Hint(components.Keys.Back, ""))
		}
	}
	return append(hints, components.Hint(components.Keys.Theme, ""))
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(kmsg, components.Keys.Submit):
			return s.handleSubmit()
		case key.Matches(kmsg, components.Keys.Back):
			return s.handleBack()
		}
	}

	var (
		answer string
		chosen bool
	)
	s.choice, answer, chosen = s.choice.Update(msg)
	if chosen {
		s.selectOption(answer)
	}
	return s, nil
}

// selectOption records answer in the session before the next message is
// handled, so a following Enter or Esc sees it.
func (s *QuizScreen) selectOption(answer string) {
	if err := s.machine.Select(context.Background(), answer); err != nil {
		return
	}
	s.choice.Selected = answer
	s.errMsg = ""
}

func (s *QuizScreen) handleSubmit() (screen.Screen, tea.Cmd) {
	ctx := context.Background()

	switch s.machine.Session().Phase() {
	case session.PhaseAnswering:
		fb, err := s.machine.Submit(ctx)
		if errors.Is(err, session.ErrNoSelection) {
			s.errMsg = noSelectionMsg
			return s, nil
		}
		if err != nil {
			return s, nil
		}
		s.errMsg = ""
		s.feedback = &fb
		s.choice.Revealed = true
		s.choice.Correct = fb.CorrectAnswer
		return s, nil

	case session.PhaseConfirmed:
		entry, err := s.machine.Advance(ctx)
		if err != nil {
			return s, nil
		}
		if entry != nil {
			next := results.New(s.machine, *entry)
			return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
		}
		s.resetChoice()
		return s, nil
	}
	return s, nil
}

// handleBack abandons the session, but only before an option is picked.
func (s *QuizScreen) handleBack() (screen.Screen, tea.Cmd) {
	sess := s.machine.Session()
	if sess.Phase() != session.PhaseAnswering || sess.HasSelection() {
		return s, nil
	}
	s.machine.Restart(context.Background())
	return s, func() tea.Msg { return router.PopScreenMsg{} }
}

func (s *QuizScreen) View(width, height int) string {
	sess := s.machine.Session()
	q, ok := sess.CurrentQuestion()
	if !ok {
		return theme.Centered(width, theme.TextDim, false, "\n\nNo active quiz.")
	}

	contentWidth := min(width-8, 72)
	var b strings.Builder

	b.WriteString("\n")
	bar := components.QuestionProgress(sess.QuestionIndex(), sess.TotalQuestions(), contentWidth)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	prompt := lipgloss.NewStyle().
		Width(contentWidth).
		Foreground(theme.Text).
		Bold(true).
		Render(q.Prompt)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, prompt))
	b.WriteString("\n\n")

	options := lipgloss.NewStyle().
		Width(contentWidth).
		Render(strings.TrimRight(s.choice.View(), "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, options))
	b.WriteString("\n\n")

	switch {
	case s.errMsg != "":
		b.WriteString(theme.Centered(width, theme.Error, true, "✗ "+s.errMsg))
	case s.feedback != nil && s.feedback.IsCorrect:
		b.WriteString(theme.Centered(width, theme.Success, true, "✓ Correct!"))
	case s.feedback != nil:
		b.WriteString(theme.Centered(width, theme.Error, true, "✗ Incorrect. The answer is "+s.feedback.CorrectAnswer))
	}
	b.WriteString("\n\n")

	button := lipgloss.NewStyle().
		Padding(0, 3).
		Background(theme.Primary).
		Foreground(lipgloss.Color("#FFFFFF")).
		Bold(true).
		Render(s.SubmitLabel())
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, button))

	return b.String()
}
