package search_controller

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/HandLine-Safety/handline-catalog-backend/config"
	"github.com/HandLine-Safety/handline-catalog-backend/search"
)

// suggestionPayload carries both the new shape (suggestion, content_type,
// match_count) and the legacy shape (id, title, description, url,
// image_url) for older consumers.
type suggestionPayload struct {
	Suggestion  string `json:"suggestion"`
	ContentType string `json:"content_type"`
	MatchCount  int    `json:"match_count"`

	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	ImageURL    string `json:"image_url"`
}

// GetSuggestions godoc
// @Summary Typeahead suggestions
// @Description Literal name/title matches across products and articles, capped per source, alphabetically sorted. Returns a flat JSON array with no wrapper object.
// @Tags Storefront - Search
// @Produce json
// @Param q query string true "Partial query"
// @Param limit query int false "Maximum suggestions" default(10)
// @Success 200 {array} suggestionPayload "Suggestions"
// @Failure 500 {object} map[string]any "Backing store failure"
// @Router /store/search/suggestions [get]
func GetSuggestions(c *gin.Context) {
	partial := strings.TrimSpace(c.Query("q"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if limit < 1 || limit > 50 {
		limit = search.DefaultSuggestionLimit
	}

	if partial == "" {
		c.JSON(http.StatusOK, []suggestionPayload{})
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	suggestions, err := suggester.Suggest(ctx, partial, limit)
	if err != nil {
		log.Printf("ERROR suggestions failed for %q: %v", partial, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Suggestions failed",
			"message": err.Error(),
		})
		return
	}

	payload := make([]suggestionPayload, 0, len(suggestions))
	for _, s := range suggestions {
		payload = append(payload, suggestionPayload{
			Suggestion:  s.Text,
			ContentType: s.ContentType,
			MatchCount:  s.MatchCount,
			ID:          s.ID,
			Title:       s.Text,
			Description: "",
			URL:         s.URL,
			ImageURL:    s.ImageURL,
		})
	}

	c.JSON(http.StatusOK, payload)
}
