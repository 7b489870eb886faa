package search_controller

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/HandLine-Safety/handline-catalog-backend/config"
	"github.com/HandLine-Safety/handline-catalog-backend/models"
)

// SearchSite godoc
// @Summary Ranked multi-entity search
// @Description Run a ranked full-text search across products, blog posts, case studies, careers, EN resources and industry solutions. An empty query short-circuits to an empty payload without touching the backing store.
// @Tags Storefront - Search
// @Produce json
// @Param q query string true "Search query"
// @Param content_filter query string false "JSON array of content types; malformed input is treated as unrestricted"
// @Param category_filter query string false "Category restriction"
// @Param locale_preference query string false "Locale preference" default(en)
// @Param limit_results query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Param min_similarity query number false "Relevance floor" default(0.1)
// @Param sort query string false "Sort mode (relevance | newest | alphabetical)" default(relevance)
// @Param sort_direction query string false "Sort direction (asc | desc), ignored for relevance" default(asc)
// @Success 200 {object} map[string]any "Search results"
// @Failure 500 {object} map[string]any "Backing store failure"
// @Router /store/search [get]
func SearchSite(c *gin.Context) {
	queryText := strings.TrimSpace(c.Query("q"))
	opts := parseSearchOptions(c)

	if queryText == "" {
		c.JSON(http.StatusOK, gin.H{
			"results":     []models.SearchResult{},
			"query":       queryText,
			"total":       0,
			"total_count": 0,
			"has_more":    false,
			"filters":     opts,
		})
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	res, err := engine.Search(ctx, queryText, opts)
	if err != nil {
		log.Printf("ERROR search failed for %q: %v", queryText, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Search failed",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"results":     res.Results,
		"query":       queryText,
		"total":       len(res.Results),
		"total_count": res.Total,
		"has_more":    res.HasMore,
		"filters":     opts,
	})
}
