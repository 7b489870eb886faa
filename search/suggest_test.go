package search

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HandLine-Safety/handline-catalog-backend/models"
)

// stubSource replays canned suggestions, honouring the limit it is given.
type stubSource struct {
	contentType string
	items       []string
	err         error
	calls       int
}

func (s *stubSource) Suggest(ctx context.Context, partial string, limit int) ([]models.SearchSuggestion, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	out := make([]models.SearchSuggestion, 0, limit)
	for i, text := range s.items {
		if i >= limit {
			break
		}
		out = append(out, models.SearchSuggestion{
			ID:          fmt.Sprintf("%s-%d", s.contentType, i),
			Text:        text,
			ContentType: s.contentType,
			MatchCount:  1,
		})
	}
	return out, nil
}

func manyItems(prefix string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("%s %02d", prefix, i)
	}
	return out
}

func TestSuggestEmptyQueryReturnsImmediately(t *testing.T) {
	products := &stubSource{contentType: models.ContentProduct, items: manyItems("Glove", 5)}
	suggester := NewSuggester(products)

	got, err := suggester.Suggest(context.Background(), "  ", 10)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Zero(t, products.calls, "sources must not be queried for an empty input")
}

func TestSuggestPerSourceCapFairness(t *testing.T) {
	// 20 matching products, 0 matching articles: the product source still
	// contributes at most ceil(10/2) = 5.
	products := &stubSource{contentType: models.ContentProduct, items: manyItems("Glove", 20)}
	articles := &stubSource{contentType: models.ContentBlog}
	suggester := NewSuggester(products, articles)

	got, err := suggester.Suggest(context.Background(), "glo", 10)
	require.NoError(t, err)
	assert.Len(t, got, 5)
	for _, s := range got {
		assert.Equal(t, models.ContentProduct, s.ContentType)
	}
}

func TestSuggestMergesAndSortsAlphabetically(t *testing.T) {
	products := &stubSource{contentType: models.ContentProduct, items: []string{"Welding gauntlet", "Arc sleeve"}}
	articles := &stubSource{contentType: models.ContentBlog, items: []string{"Choosing heat gloves", "Arm protection 101"}}
	suggester := NewSuggester(products, articles)

	got, err := suggester.Suggest(context.Background(), "a", 10)
	require.NoError(t, err)

	require.Len(t, got, 4)
	texts := make([]string, len(got))
	for i, s := range got {
		texts[i] = s.Text
	}
	assert.Equal(t, []string{"Arc sleeve", "Arm protection 101", "Choosing heat gloves", "Welding gauntlet"}, texts)
}

func TestSuggestDeduplicatesAcrossSources(t *testing.T) {
	products := &stubSource{contentType: models.ContentProduct, items: []string{"Foundry"}}
	articles := &stubSource{contentType: models.ContentBlog, items: []string{"foundry"}}
	suggester := NewSuggester(products, articles)

	got, err := suggester.Suggest(context.Background(), "fou", 10)
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].MatchCount)
}

func TestSuggestTruncatesToLimit(t *testing.T) {
	products := &stubSource{contentType: models.ContentProduct, items: manyItems("Glove", 10)}
	articles := &stubSource{contentType: models.ContentBlog, items: manyItems("Post", 10)}
	suggester := NewSuggester(products, articles)

	got, err := suggester.Suggest(context.Background(), "o", 7)
	require.NoError(t, err)
	assert.Len(t, got, 7)
}

func TestSuggestSourceErrorPropagates(t *testing.T) {
	boom := errors.New("timeout")
	products := &stubSource{contentType: models.ContentProduct, err: boom}
	suggester := NewSuggester(products)

	_, err := suggester.Suggest(context.Background(), "glo", 10)
	require.ErrorIs(t, err, boom)
}
