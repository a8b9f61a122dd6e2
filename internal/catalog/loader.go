package catalog

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"
)

// DefaultTimeout bounds a single catalog retrieval.
const DefaultTimeout = 5 * time.Second

// maxDocumentSize caps the catalog body read from a live source.
const maxDocumentSize = 4 << 20

// Loader retrieves the catalog from a URL or a local file, falling back to
// the embedded catalog on any failure.
type Loader struct {
	// Source is an http(s) URL or a filesystem path. Empty means no live
	// source is configured.
	Source string

	// Client is used for http(s) sources. Defaults to a client with Timeout.
	Client *http.Client

	// Timeout bounds the retrieval when ctx has no earlier deadline.
	Timeout time.Duration

	// Logger receives the fallback notice. Nil discards it.
	Logger *log.Logger
}

// NewLoader creates a Loader for source.
func NewLoader(source string, timeout time.Duration, logger *log.Logger) *Loader {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Loader{
		Source:  source,
		Client:  &http.Client{Timeout: timeout},
		Timeout: timeout,
		Logger:  logger,
	}
}

// Load returns the live catalog, or the embedded fallback if the live
// source cannot be used. It never fails; one attempt is made per call.
func (l *Loader) Load(ctx context.Context) Catalog {
	if l.Source == "" {
		return Fallback()
	}
	c, err := l.Fetch(ctx)
	if err != nil {
		l.logf("warning: %v; using embedded catalog", err)
		return Fallback()
	}
	return c
}

// Fetch performs a strict retrieval without fallback. Failures are
// reported as *ErrCatalogUnavailable.
func (l *Loader) Fetch(ctx context.Context) (Catalog, error) {
	if l.Source == "" {
		return Catalog{}, &ErrCatalogUnavailable{Err: fmt.Errorf("no source configured")}
	}

	timeout := l.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	raw, err := l.read(ctx)
	if err != nil {
		return Catalog{}, &ErrCatalogUnavailable{Source: l.Source, Err: err}
	}
	c, err := Parse(raw)
	if err != nil {
		return Catalog{}, &ErrCatalogUnavailable{Source: l.Source, Err: err}
	}
	return c, nil
}

func (l *Loader) read(ctx context.Context) ([]byte, error) {
	if isHTTP(l.Source) {
		return l.readHTTP(ctx)
	}
	raw, err := os.ReadFile(strings.TrimPrefix(l.Source, "file://"))
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return raw, nil
}

func (l *Loader) readHTTP(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.Source, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	client := l.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentSize))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return raw, nil
}

func (l *Loader) logf(format string, args ...any) {
	if l.Logger != nil {
		l.Logger.Printf(format, args...)
	}
}

func isHTTP(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}
