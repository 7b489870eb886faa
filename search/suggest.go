package search

import (
	"context"
	"sort"
	"strings"

	"github.com/HandLine-Safety/handline-catalog-backend/models"
)

const DefaultSuggestionLimit = 10

// SuggestionSource yields typeahead candidates from one entity kind by
// case-insensitive substring containment. Suggestions are deliberately
// cheaper and simpler than ranked search.
type SuggestionSource interface {
	Suggest(ctx context.Context, partial string, limit int) ([]models.SearchSuggestion, error)
}

// Suggester fans a partial query out to its sources, splitting the budget
// evenly so no single source can crowd out the others.
type Suggester struct {
	sources []SuggestionSource
}

func NewSuggester(sources ...SuggestionSource) *Suggester {
	return &Suggester{sources: sources}
}

// Suggest returns at most limit suggestions, alphabetically sorted. Each
// source contributes at most ceil(limit/2) candidates regardless of how
// many the others found. Empty input returns an empty list immediately.
func (s *Suggester) Suggest(ctx context.Context, partial string, limit int) ([]models.SearchSuggestion, error) {
	partial = strings.TrimSpace(partial)
	if partial == "" {
		return []models.SearchSuggestion{}, nil
	}
	if limit <= 0 {
		limit = DefaultSuggestionLimit
	}

	perSource := (limit + 1) / 2

	merged := make([]models.SearchSuggestion, 0, limit)
	seen := make(map[string]int) // lowercased text -> index in merged
	for _, source := range s.sources {
		found, err := source.Suggest(ctx, partial, perSource)
		if err != nil {
			return nil, err
		}
		if len(found) > perSource {
			found = found[:perSource]
		}
		for _, suggestion := range found {
			key := strings.ToLower(suggestion.Text)
			if i, dup := seen[key]; dup {
				merged[i].MatchCount += suggestion.MatchCount
				continue
			}
			seen[key] = len(merged)
			merged = append(merged, suggestion)
		}
	}

	if len(merged) > limit {
		merged = merged[:limit]
	}

	// Final deterministic pass.
	sort.SliceStable(merged, func(i, j int) bool {
		return strings.ToLower(merged[i].Text) < strings.ToLower(merged[j].Text)
	})
	return merged, nil
}
