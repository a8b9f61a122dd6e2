package session

import (
	"time"

	"github.com/abhisek/quizdeck/internal/catalog"
)

// Command is a user intent applied to a Session.
type Command interface {
	command()
	Name() string
}

// StartSession begins a run over Subject.
type StartSession struct {
	Subject *catalog.Subject
}

// SelectOption chooses an option for the current question without confirming it.
type SelectOption struct {
	Answer string
}

// SubmitAnswer confirms the selected option and scores it.
type SubmitAnswer struct{}

// Advance moves to the next question, or completes the session after the
// last one. At stamps the history entry produced on completion.
type Advance struct {
	At time.Time
}

// Restart discards the session and returns to idle.
type Restart struct{}

func (StartSession) command() {}
func (SelectOption) command() {}
func (SubmitAnswer) command() {}
func (Advance) command()      {}
func (Restart) command()      {}

func (StartSession) Name() string { return "start" }
func (SelectOption) Name() string { return "select" }
func (SubmitAnswer) Name() string { return "submit" }
func (Advance) Name() string      { return "advance" }
func (Restart) Name() string      { return "restart" }
