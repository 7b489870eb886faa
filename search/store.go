// Package search implements the server-side half of the storefront core:
// ranked multi-entity full-text search and typeahead suggestions. The
// ranking itself lives in the backing store; this package owns the query
// contract around it.
package search

import (
	"context"

	"github.com/HandLine-Safety/handline-catalog-backend/models"
)

// Query is the normalised request handed to the backing store. Text is
// never empty; the engine short-circuits before reaching the store.
type Query struct {
	Text          string
	ContentTypes  []string
	Category      string
	Locale        string
	Limit         int
	Offset        int
	MinSimilarity float64
	Sort          string
	Direction     string
}

// Page is one page of ranked rows. HasMore reports whether rows exist
// beyond Offset+Limit, as observed by the store itself.
type Page struct {
	Results []models.SearchResult
	Total   int
	HasMore bool
}

// Store executes one ranked search round-trip. Implementations may use
// Postgres, an external index, or an in-memory double; errors are
// propagated once and never retried.
type Store interface {
	Search(ctx context.Context, q Query) (Page, error)
}
