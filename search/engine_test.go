package search

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HandLine-Safety/handline-catalog-backend/models"
)

// stubStore records every query it receives and replays a canned page.
type stubStore struct {
	calls []Query
	page  Page
	err   error
}

func (s *stubStore) Search(ctx context.Context, q Query) (Page, error) {
	s.calls = append(s.calls, q)
	return s.page, s.err
}

func result(id, title string, score float64) models.SearchResult {
	return models.SearchResult{
		ID:          id,
		Title:       title,
		ContentType: models.ContentProduct,
		URL:         "/products/" + id,
		Score:       score,
	}
}

func TestSearchEmptyQueryShortCircuits(t *testing.T) {
	store := &stubStore{}
	engine := NewEngine(store)

	for _, q := range []string{"", "   ", "\t\n"} {
		res, err := engine.Search(context.Background(), q, models.SearchOptions{})
		require.NoError(t, err)
		assert.Empty(t, res.Results)
		assert.Zero(t, res.Total)
		assert.False(t, res.HasMore)
	}

	// No backing-store round-trip may have happened.
	assert.Len(t, store.calls, 0)
}

func TestSearchSimilarityFloorExcludes(t *testing.T) {
	store := &stubStore{page: Page{
		Results: []models.SearchResult{
			result("p1", "Welding gauntlet", 0.9),
			result("p2", "Welding sleeve", 0.31),
			result("p3", "Welding swab", 0.29),
		},
		Total: 3,
	}}
	engine := NewEngine(store)

	res, err := engine.Search(context.Background(), "welding", models.SearchOptions{MinSimilarity: 0.3})
	require.NoError(t, err)

	// The floor is an exclusion, not a soft penalty: p3 must be absent
	// even though only two results remain.
	require.Len(t, res.Results, 2)
	assert.Equal(t, "p1", res.Results[0].ID)
	assert.Equal(t, "p2", res.Results[1].ID)

	require.Len(t, store.calls, 1)
	assert.Equal(t, 0.3, store.calls[0].MinSimilarity)
}

func TestSearchAlphabeticalDeterministicTieBreak(t *testing.T) {
	// Two titles tie after localisation; ordering must come out identical
	// across repeated calls, broken by ID.
	store := &stubStore{page: Page{
		Results: []models.SearchResult{
			result("p9", "Thermal glove", 0.8),
			result("p2", "Thermal glove", 0.7),
			result("p5", "Arc welding jacket", 0.6),
		},
		Total: 3,
	}}
	engine := NewEngine(store)

	opts := models.SearchOptions{Sort: models.SortAlphabetical, Limit: 10}

	first, err := engine.Search(context.Background(), "thermal", opts)
	require.NoError(t, err)
	second, err := engine.Search(context.Background(), "thermal", opts)
	require.NoError(t, err)

	require.Equal(t, first.Results, second.Results)
	assert.Equal(t, "p5", first.Results[0].ID)
	assert.Equal(t, "p2", first.Results[1].ID)
	assert.Equal(t, "p9", first.Results[2].ID)
}

func TestSearchRelevanceIgnoresDirection(t *testing.T) {
	store := &stubStore{}
	engine := NewEngine(store)

	_, err := engine.Search(context.Background(), "glove", models.SearchOptions{
		Sort:          "relevance",
		SortDirection: "asc",
	})
	require.NoError(t, err)

	require.Len(t, store.calls, 1)
	assert.Equal(t, models.SortRelevance, store.calls[0].Sort)
	assert.Empty(t, store.calls[0].Direction)
}

func TestSearchDefaultsAndClamping(t *testing.T) {
	store := &stubStore{}
	engine := NewEngine(store)

	_, err := engine.Search(context.Background(), "glove", models.SearchOptions{
		Limit:  100000,
		Offset: -3,
	})
	require.NoError(t, err)

	require.Len(t, store.calls, 1)
	q := store.calls[0]
	assert.Equal(t, MaxLimit, q.Limit)
	assert.Zero(t, q.Offset)
	assert.Equal(t, "en", q.Locale)
	assert.Equal(t, DefaultMinSimilarity, q.MinSimilarity)
}

func TestSearchHasMorePassthrough(t *testing.T) {
	now := time.Now()
	store := &stubStore{page: Page{
		Results: []models.SearchResult{
			{ID: "b1", Title: "Foundry case study", ContentType: models.ContentCaseStudy, URL: "/case-studies/foundry", Score: 0.5, PublishedAt: &now},
		},
		Total:   41,
		HasMore: true,
	}}
	engine := NewEngine(store)

	res, err := engine.Search(context.Background(), "foundry", models.SearchOptions{Limit: 1})
	require.NoError(t, err)
	assert.True(t, res.HasMore)
	assert.Equal(t, 41, res.Total)
}

func TestSearchStoreErrorPropagates(t *testing.T) {
	storeErr := errors.New("connection refused")
	store := &stubStore{err: storeErr}
	engine := NewEngine(store)

	_, err := engine.Search(context.Background(), "glove", models.SearchOptions{})
	require.ErrorIs(t, err, storeErr)

	// Exactly one round-trip: no retry on a failed read.
	assert.Len(t, store.calls, 1)
}
