package catalog

import "fmt"

// ErrCatalogUnavailable indicates the catalog source could not be
// retrieved or did not hold a valid catalog.
type ErrCatalogUnavailable struct {
	Source string
	Err    error
}

func (e *ErrCatalogUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("catalog unavailable from %q: %v", e.Source, e.Err)
	}
	return fmt.Sprintf("catalog unavailable from %q", e.Source)
}

func (e *ErrCatalogUnavailable) Unwrap() error { return e.Err }
