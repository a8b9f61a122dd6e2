package session

import (
	"fmt"
	"slices"
)

// Effects describes what a transition asks the caller to do.
type Effects struct {
	// Feedback is set after a successful SubmitAnswer.
	Feedback *Feedback

	// History is set when the session completes; the caller persists it.
	History *HistoryEntry
}

// Apply computes the session that results from cmd. On error the input
// session is returned unchanged with empty effects.
func Apply(s Session, cmd Command) (Session, Effects, error) {
	switch c := cmd.(type) {
	case StartSession:
		return applyStart(s, c)
	case SelectOption:
		return applySelect(s, c)
	case SubmitAnswer:
		return applySubmit(s, c)
	case Advance:
		return applyAdvance(s, c)
	case Restart:
		return Session{}, Effects{}, nil
	case nil:
		return s, Effects{}, fmt.Errorf("nil command: %w", ErrInvalidTransition)
	default:
		return s, Effects{}, fmt.Errorf("unknown command %T: %w", cmd, ErrInvalidTransition)
	}
}

func applyStart(s Session, c StartSession) (Session, Effects, error) {
	if s.phase != PhaseIdle && s.phase != PhaseCompleted {
		return s, Effects{}, invalidTransition(c, s.phase)
	}
	if c.Subject == nil {
		return s, Effects{}, fmt.Errorf("start: missing subject: %w", ErrInvalidSubject)
	}
	if len(c.Subject.Questions) == 0 {
		return s, Effects{}, fmt.Errorf("start %q: %w", c.Subject.Title, ErrInvalidSubject)
	}

	subject := *c.Subject
	return Session{
		phase:   PhaseAnswering,
		subject: &subject,
	}, Effects{}, nil
}

func applySelect(s Session, c SelectOption) (Session, Effects, error) {
	switch {
	case s.phase == PhaseConfirmed || (s.phase == PhaseAnswering && s.submitted):
		return s, Effects{}, fmt.Errorf("select: %w", ErrAlreadySubmitted)
	case s.phase != PhaseAnswering:
		return s, Effects{}, invalidTransition(c, s.phase)
	case c.Answer == "":
		return s, Effects{}, fmt.Errorf("select: %w", ErrEmptySelection)
	}

	s.selected = c.Answer
	return s, Effects{}, nil
}

func applySubmit(s Session, c SubmitAnswer) (Session, Effects, error) {
	if s.submitted || s.phase == PhaseConfirmed {
		return s, Effects{}, fmt.Errorf("submit question %d: %w", s.index+1, ErrAlreadySubmitted)
	}
	if s.phase != PhaseAnswering {
		return s, Effects{}, invalidTransition(c, s.phase)
	}
	if s.selected == "" {
		return s, Effects{}, ErrNoSelection
	}
	q, ok := s.CurrentQuestion()
	if !ok {
		return s, Effects{}, invalidTransition(c, s.phase)
	}

	fb := Evaluate(q, s.selected)
	if fb.IsCorrect {
		s.score++
	}
	// Clip forces append to copy, so earlier snapshots keep their own log.
	s.answers = append(slices.Clip(s.answers), AnswerRecord{
		Question:       q.Prompt,
		SelectedAnswer: s.selected,
		CorrectAnswer:  q.Answer,
		IsCorrect:      fb.IsCorrect,
	})
	s.submitted = true
	s.phase = PhaseConfirmed
	return s, Effects{Feedback: &fb}, nil
}

func applyAdvance(s Session, c Advance) (Session, Effects, error) {
	if s.phase != PhaseConfirmed {
		return s, Effects{}, invalidTransition(c, s.phase)
	}

	if s.index+1 < s.TotalQuestions() {
		s.index++
		s.selected = ""
		s.submitted = false
		s.phase = PhaseAnswering
		return s, Effects{}, nil
	}

	s.phase = PhaseCompleted
	entry := BuildHistoryEntry(s, c.At)
	return s, Effects{History: &entry}, nil
}
