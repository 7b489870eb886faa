package search_controller

import (
	"context"
	"encoding/json"
	"log"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/HandLine-Safety/handline-catalog-backend/models"
	"github.com/HandLine-Safety/handline-catalog-backend/search"
)

// Searcher and SuggestionProvider mirror the engine and suggester so the
// handlers can be exercised against doubles.
type Searcher interface {
	Search(ctx context.Context, queryText string, opts models.SearchOptions) (search.Result, error)
}

type SuggestionProvider interface {
	Suggest(ctx context.Context, partial string, limit int) ([]models.SearchSuggestion, error)
}

var (
	engine    Searcher
	suggester SuggestionProvider
)

// Init wires the handlers to their engine and suggester. Called once from
// main before the routes are mounted.
func Init(e Searcher, s SuggestionProvider) {
	engine = e
	suggester = s
}

// parseContentFilter decodes the JSON-encoded content_filter param.
// Malformed input is logged and treated as "no filter": search availability
// beats strict validation here.
func parseContentFilter(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	var types []string
	if err := json.Unmarshal([]byte(raw), &types); err != nil {
		log.Printf("WARNING malformed content_filter %q, searching unrestricted: %v", raw, err)
		return nil
	}

	out := make([]string, 0, len(types))
	for _, t := range types {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func parseSearchOptions(c *gin.Context) models.SearchOptions {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit_results", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	minSimilarity, _ := strconv.ParseFloat(c.DefaultQuery("min_similarity", "0.1"), 64)

	return models.SearchOptions{
		ContentTypes:  parseContentFilter(c.Query("content_filter")),
		Category:      c.Query("category_filter"),
		Locale:        c.DefaultQuery("locale_preference", "en"),
		Limit:         limit,
		Offset:        offset,
		MinSimilarity: minSimilarity,
		Sort:          c.DefaultQuery("sort", models.SortRelevance),
		SortDirection: c.DefaultQuery("sort_direction", "asc"),
	}
}
