package models

import "time"

// Content-type tags for search results and suggestions.
const (
	ContentProduct          = "product"
	ContentBlog             = "blog"
	ContentCaseStudy        = "case_study"
	ContentCareer           = "career"
	ContentENResource       = "en_resource"
	ContentIndustrySolution = "industry_solution"
)

// Sort modes for the search endpoint. Relevance is always best-match-first;
// direction only applies to newest and alphabetical.
const (
	SortRelevance    = "relevance"
	SortNewest       = "newest"
	SortAlphabetical = "alphabetical"
)

// SearchOptions parameterises one search invocation. Zero values mean
// "unrestricted" for the filters and engine defaults for limit/sort.
type SearchOptions struct {
	ContentTypes  []string `json:"content_types,omitempty"`
	Category      string   `json:"category,omitempty"`
	Locale        string   `json:"locale,omitempty"`
	Limit         int      `json:"limit,omitempty"`
	Offset        int      `json:"offset,omitempty"`
	MinSimilarity float64  `json:"min_similarity,omitempty"`
	Sort          string   `json:"sort,omitempty"`
	SortDirection string   `json:"sort_direction,omitempty"`
}

// SearchResult is one normalised match across the searchable entity kinds.
// Image and description are optional; a result is never dropped for
// lacking either.
type SearchResult struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	ContentType string     `json:"content_type"`
	URL         string     `json:"url"`
	ImageURL    string     `json:"image_url,omitempty"`
	Score       float64    `json:"score"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
}

// SearchSuggestion is the lighter typeahead record.
type SearchSuggestion struct {
	ID          string `json:"id"`
	Text        string `json:"suggestion"`
	ContentType string `json:"content_type"`
	URL         string `json:"url"`
	ImageURL    string `json:"image_url,omitempty"`
	MatchCount  int    `json:"match_count"`
}
