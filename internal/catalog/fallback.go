package catalog

import (
	_ "embed"
	"fmt"
	"sync"
)

// fallbackDoc is the bundled catalog used when the live source is unavailable.
// It has the same wire shape as the live document.
//
//go:embed data.json
var fallbackDoc []byte

var (
	fallbackOnce sync.Once
	fallback     Catalog
)

// Fallback returns the embedded catalog.
func Fallback() Catalog {
	fallbackOnce.Do(func() {
		c, err := Parse(fallbackDoc)
		if err != nil {
			panic(fmt.Sprintf("embedded catalog is invalid: %v", err))
		}
		fallback = c
	})
	return fallback
}

// FallbackDocument returns a copy of the raw embedded catalog document.
func FallbackDocument() []byte {
	out := make([]byte, len(fallbackDoc))
	copy(out, fallbackDoc)
	return out
}
