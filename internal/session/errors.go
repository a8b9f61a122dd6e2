package session

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSubject is returned when starting with a missing or empty subject.
	ErrInvalidSubject = errors.New("subject has no questions")

	// ErrNoSelection is returned when submitting with nothing selected.
	ErrNoSelection = errors.New("no answer selected")

	// ErrAlreadySubmitted is returned when the current question was already evaluated.
	ErrAlreadySubmitted = errors.New("answer already submitted")

	// ErrEmptySelection is returned when selecting an empty option.
	ErrEmptySelection = errors.New("empty option")

	// ErrInvalidTransition is returned when a command is not legal in the current phase.
	ErrInvalidTransition = errors.New("invalid transition")
)

func invalidTransition(cmd Command, p Phase) error {
	return fmt.Errorf("%s while %s: %w", cmd.Name(), p, ErrInvalidTransition)
}
