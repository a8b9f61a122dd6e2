package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/abhisek/quizdeck/internal/session"
)

// HistoryLog is the append-only log of completed sessions. The whole log
// is one JSON array stored under HistoryKey.
type HistoryLog struct {
	kv     *Store
	logger *log.Logger
}

var (
	_ session.HistoryRecorder = (*HistoryLog)(nil)
	_ HistoryReader           = (*HistoryLog)(nil)
)

// Append adds entry to the log. Failures are logged and swallowed so that
// completing a session is never blocked by storage.
func (h *HistoryLog) Append(ctx context.Context, entry session.HistoryEntry) {
	if err := h.TryAppend(ctx, entry); err != nil && h.logger != nil {
		h.logger.Printf("warning: history entry for %q discarded: %v", entry.Subject, err)
	}
}

// TryAppend adds entry to the log, returning *ErrStorageWrite on failure.
// An unreadable existing log is left untouched.
func (h *HistoryLog) TryAppend(ctx context.Context, entry session.HistoryEntry) error {
	err := h.kv.Update(ctx, HistoryKey, func(old string, ok bool) (string, error) {
		var entries []session.HistoryEntry
		if ok {
			var err error
			entries, err = DecodeHistory([]byte(old))
			if err != nil {
				return "", err
			}
		}
		raw, err := EncodeHistory(append(entries, entry))
		if err != nil {
			return "", err
		}
		return string(raw), nil
	})
	if err != nil {
		return &ErrStorageWrite{Key: HistoryKey, Err: err}
	}
	return nil
}

// ReadAll returns every entry in insertion order.
func (h *HistoryLog) ReadAll(ctx context.Context) ([]session.HistoryEntry, error) {
	raw, ok, err := h.kv.Get(ctx, HistoryKey)
	if err != nil {
		return nil, fmt.Errorf("read history: %w", err)
	}
	if !ok {
		return []session.HistoryEntry{}, nil
	}
	return DecodeHistory([]byte(raw))
}

// EncodeHistory serializes entries in the persisted-log format.
func EncodeHistory(entries []session.HistoryEntry) ([]byte, error) {
	if entries == nil {
		entries = []session.HistoryEntry{}
	}
	b, err := json.Marshal(entries)
	if err != nil {
		return nil, fmt.Errorf("encode history: %w", err)
	}
	return b, nil
}

// DecodeHistory parses the persisted-log format.
func DecodeHistory(raw []byte) ([]session.HistoryEntry, error) {
	entries := []session.HistoryEntry{}
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("decode history: %w", err)
	}
	return entries, nil
}
