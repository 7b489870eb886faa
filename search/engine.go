package search

import (
	"context"
	"sort"
	"strings"

	"github.com/HandLine-Safety/handline-catalog-backend/models"
)

const (
	DefaultLimit         = 20
	MaxLimit             = 100
	DefaultMinSimilarity = 0.1
)

// Engine wraps a Store with the behavioural contract of the search
// endpoint: empty-query short-circuit, option normalisation, the
// similarity floor and deterministic ordering.
type Engine struct {
	store Store
}

func NewEngine(store Store) *Engine {
	return &Engine{store: store}
}

// Result is what one search invocation yields.
type Result struct {
	Results []models.SearchResult
	Total   int
	HasMore bool
}

func normalise(opts models.SearchOptions) models.SearchOptions {
	if opts.Limit <= 0 {
		opts.Limit = DefaultLimit
	}
	if opts.Limit > MaxLimit {
		opts.Limit = MaxLimit
	}
	if opts.Offset < 0 {
		opts.Offset = 0
	}
	if opts.Locale == "" {
		opts.Locale = "en"
	}
	if opts.MinSimilarity <= 0 {
		opts.MinSimilarity = DefaultMinSimilarity
	}
	switch opts.Sort {
	case models.SortNewest, models.SortAlphabetical:
	default:
		// Relevance is always best-match-first; direction is ignored.
		opts.Sort = models.SortRelevance
		opts.SortDirection = ""
	}
	if opts.Sort != models.SortRelevance && opts.SortDirection != "desc" {
		opts.SortDirection = "asc"
	}
	return opts
}

// Search runs one ranked query. An empty or whitespace-only query returns
// the empty result without a store round-trip. A store error is returned
// as-is: search is a read path, retrying would duplicate ranking work.
func (e *Engine) Search(ctx context.Context, queryText string, opts models.SearchOptions) (Result, error) {
	queryText = strings.TrimSpace(queryText)
	if queryText == "" {
		return Result{Results: []models.SearchResult{}}, nil
	}

	opts = normalise(opts)

	page, err := e.store.Search(ctx, Query{
		Text:          queryText,
		ContentTypes:  opts.ContentTypes,
		Category:      opts.Category,
		Locale:        opts.Locale,
		Limit:         opts.Limit,
		Offset:        opts.Offset,
		MinSimilarity: opts.MinSimilarity,
		Sort:          opts.Sort,
		Direction:     opts.SortDirection,
	})
	if err != nil {
		return Result{}, err
	}

	// The floor is an exclusion filter, not a soft penalty. The store
	// already applies it; enforce it again so a lax implementation can
	// never leak a below-floor candidate.
	results := page.Results[:0:0]
	for _, r := range page.Results {
		if r.Score < opts.MinSimilarity {
			continue
		}
		results = append(results, r)
	}

	if opts.Sort == models.SortAlphabetical {
		sortAlphabetical(results, opts.SortDirection)
	}

	if results == nil {
		results = []models.SearchResult{}
	}
	return Result{Results: results, Total: page.Total, HasMore: page.HasMore}, nil
}

// sortAlphabetical orders by localised title with the identifier as the
// stable secondary key, so repeated requests at the same offset paginate
// identically even when titles tie.
func sortAlphabetical(results []models.SearchResult, direction string) {
	desc := direction == "desc"
	sort.SliceStable(results, func(i, j int) bool {
		ti := strings.ToLower(results[i].Title)
		tj := strings.ToLower(results[j].Title)
		if ti != tj {
			if desc {
				return ti > tj
			}
			return ti < tj
		}
		return results[i].ID < results[j].ID
	})
}
