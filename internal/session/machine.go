package session

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/quizdeck/internal/catalog"
)

// HistoryRecorder persists completed-session summaries. Implementations
// are best-effort and never fail the caller.
type HistoryRecorder interface {
	Append(ctx context.Context, entry HistoryEntry)
}

// Machine holds the current session snapshot and executes the effects of
// each transition. It is driven by one caller at a time.
type Machine struct {
	current  Session
	recorder HistoryRecorder
	logger   *log.Logger
	now      func() time.Time
	newID    func() string
}

// Option configures a Machine.
type Option func(*Machine)

// WithClock overrides the clock used to stamp history entries.
func WithClock(now func() time.Time) Option {
	return func(m *Machine) { m.now = now }
}

// WithIDGenerator overrides how history entry IDs are generated.
func WithIDGenerator(newID func() string) Option {
	return func(m *Machine) { m.newID = newID }
}

// NewMachine creates an idle Machine. recorder and logger may be nil.
func NewMachine(recorder HistoryRecorder, logger *log.Logger, opts ...Option) *Machine {
	m := &Machine{
		recorder: recorder,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
		newID:    func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Session returns the current snapshot.
func (m *Machine) Session() Session {
	return m.current
}

// Dispatch applies cmd to the current session and runs its effects.
// Rejected commands leave the session untouched.
func (m *Machine) Dispatch(ctx context.Context, cmd Command) (Effects, error) {
	if adv, ok := cmd.(Advance); ok && adv.At.IsZero() {
		adv.At = m.now()
		cmd = adv
	}

	next, eff, err := Apply(m.current, cmd)
	if err != nil {
		if errors.Is(err, ErrAlreadySubmitted) || errors.Is(err, ErrInvalidTransition) {
			m.logf("warning: ignored %s: %v", cmd.Name(), err)
		}
		return Effects{}, err
	}
	m.current = next

	if eff.History != nil {
		eff.History.ID = m.newID()
		if m.recorder != nil {
			m.recorder.Append(ctx, *eff.History)
		}
	}
	return eff, nil
}

// Start begins a session over subject.
func (m *Machine) Start(ctx context.Context, subject catalog.Subject) error {
	_, err := m.Dispatch(ctx, StartSession{Subject: &subject})
	return err
}

// Select chooses an option for the current question.
func (m *Machine) Select(ctx context.Context, answer string) error {
	_, err := m.Dispatch(ctx, SelectOption{Answer: answer})
	return err
}

// Submit confirms the selected option and returns the feedback.
func (m *Machine) Submit(ctx context.Context) (Feedback, error) {
	eff, err := m.Dispatch(ctx, SubmitAnswer{})
	if err != nil {
		return Feedback{}, err
	}
	return *eff.Feedback, nil
}

// Advance moves to the next question or completes the session. The
// returned entry is non-nil on completion.
func (m *Machine) Advance(ctx context.Context) (*HistoryEntry, error) {
	eff, err := m.Dispatch(ctx, Advance{})
	if err != nil {
		return nil, err
	}
	return eff.History, nil
}

// Restart discards the current session.
func (m *Machine) Restart(ctx context.Context) {
	_, _ = m.Dispatch(ctx, Restart{})
}

func (m *Machine) logf(format string, args ...any) {
	if m.logger != nil {
		m.logger.Printf(format, args...)
	}
}
