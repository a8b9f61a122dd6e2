package store

import (
	"context"
	"fmt"

	"github.com/abhisek/quizdeck/internal/session"
)

// Storage keys, shared with the browser build's localStorage layout.
const (
	HistoryKey = "quiz-results"
	ThemeKey   = "quiz-theme"
)

// HistoryReader provides read access to the completed-session log.
type HistoryReader interface {
	// ReadAll returns every entry in insertion order.
	ReadAll(ctx context.Context) ([]session.HistoryEntry, error)
}

// PrefsRepo manages presentation preferences.
type PrefsRepo interface {
	// Theme returns the stored theme, or "" if none was saved.
	Theme(ctx context.Context) (string, error)

	// SetTheme stores the theme.
	SetTheme(ctx context.Context, theme string) error

	// ResetTheme removes the stored theme so the default applies.
	ResetTheme(ctx context.Context) error
}

// ErrStorageWrite indicates a history append could not be persisted.
type ErrStorageWrite struct {
	Key string
	Err error
}

func (e *ErrStorageWrite) Error() string {
	return fmt.Sprintf("storage write %q failed: %v", e.Key, e.Err)
}

func (e *ErrStorageWrite) Unwrap() error { return e.Err }
