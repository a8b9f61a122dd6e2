package session

import (
	"slices"

	"github.com/abhisek/quizdeck/internal/catalog"
)

// Phase represents the current phase of the session.
type Phase int

const (
	PhaseIdle      Phase = iota // No subject chosen
	PhaseAnswering              // Question shown, no answer confirmed
	PhaseConfirmed              // Feedback shown, score updated
	PhaseCompleted              // All questions answered
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseAnswering:
		return "answering"
	case PhaseConfirmed:
		return "confirmed"
	case PhaseCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// Session is an immutable snapshot of the active quiz run. The zero value
// is the idle session. New snapshots are produced only by Apply.
type Session struct {
	phase     Phase
	subject   *catalog.Subject
	index     int
	score     int
	selected  string
	submitted bool
	answers   []AnswerRecord
}

// Phase returns the session phase.
func (s Session) Phase() Phase { return s.phase }

// Subject returns the subject being played, or nil before start.
func (s Session) Subject() *catalog.Subject { return s.subject }

// QuestionIndex returns the zero-based index of the current question.
func (s Session) QuestionIndex() int { return s.index }

// Score returns the number of correct answers so far.
func (s Session) Score() int { return s.score }

// Selected returns the chosen but unconfirmed option, or "" if none.
func (s Session) Selected() string { return s.selected }

// HasSelection reports whether an option is selected.
func (s Session) HasSelection() bool { return s.selected != "" }

// AnswerSubmitted reports whether the current question has been evaluated.
func (s Session) AnswerSubmitted() bool { return s.submitted }

// Answers returns a copy of the answered log.
func (s Session) Answers() []AnswerRecord { return slices.Clone(s.answers) }

// AnswerCount returns the number of evaluated questions.
func (s Session) AnswerCount() int { return len(s.answers) }

// LastAnswer returns the most recent answer record.
func (s Session) LastAnswer() (AnswerRecord, bool) {
	if len(s.answers) == 0 {
		return AnswerRecord{}, false
	}
	return s.answers[len(s.answers)-1], true
}

// TotalQuestions returns the number of questions in the subject.
func (s Session) TotalQuestions() int {
	if s.subject == nil {
		return 0
	}
	return len(s.subject.Questions)
}

// CurrentQuestion returns the question at the current index.
func (s Session) CurrentQuestion() (catalog.Question, bool) {
	if s.subject == nil || s.index < 0 || s.index >= len(s.subject.Questions) {
		return catalog.Question{}, false
	}
	return s.subject.Questions[s.index], true
}

// IsLastQuestion reports whether the current question is the final one.
func (s Session) IsLastQuestion() bool {
	return s.subject != nil && s.index == len(s.subject.Questions)-1
}

// Progress returns (index+1)/total for the progress bar, 0 when idle.
func (s Session) Progress() float64 {
	total := s.TotalQuestions()
	if total == 0 || s.phase == PhaseIdle {
		return 0
	}
	return float64(s.index+1) / float64(total)
}

// Percentage returns the rounded score percentage over the whole subject.
func (s Session) Percentage() int {
	return Percentage(s.score, s.TotalQuestions())
}
