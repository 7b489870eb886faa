package search

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/HandLine-Safety/handline-catalog-backend/models"
)

// PostgresStore runs ranked searches through the search_site SQL function,
// which scores every searchable entity (products, blog posts, case
// studies, careers, EN resources, industry solutions) with pg_trgm
// similarity against its localised title, summary and tags.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func orderClause(sortMode, direction string) string {
	dir := "ASC"
	if direction == "desc" {
		dir = "DESC"
	}

	switch sortMode {
	case models.SortNewest:
		return fmt.Sprintf("published_at %s NULLS LAST, id ASC", dir)
	case models.SortAlphabetical:
		return fmt.Sprintf("title %s, id ASC", dir)
	default:
		return "score DESC, id ASC"
	}
}

func (s *PostgresStore) Search(ctx context.Context, q Query) (Page, error) {
	// content_filter and category_filter are NULL when unrestricted.
	var contentTypes any
	if len(q.ContentTypes) > 0 {
		contentTypes = q.ContentTypes
	}
	var category any
	if q.Category != "" {
		category = q.Category
	}

	query := fmt.Sprintf(`
		SELECT id, title, description, content_type, url, image_url, score, published_at,
		       COUNT(*) OVER() AS total_count
		FROM search_site($1, $2, $3, $4, $5)
		ORDER BY %s
		LIMIT $6 OFFSET $7
	`, orderClause(q.Sort, q.Direction))

	rows, err := s.pool.Query(ctx, query,
		q.Text, contentTypes, category, q.Locale, q.MinSimilarity,
		q.Limit, q.Offset,
	)
	if err != nil {
		return Page{}, fmt.Errorf("search query failed: %w", err)
	}
	defer rows.Close()

	page := Page{Results: make([]models.SearchResult, 0, q.Limit)}
	for rows.Next() {
		var r models.SearchResult
		var description, imageURL *string
		if err := rows.Scan(
			&r.ID, &r.Title, &description, &r.ContentType, &r.URL,
			&imageURL, &r.Score, &r.PublishedAt, &page.Total,
		); err != nil {
			return Page{}, fmt.Errorf("search row scan failed: %w", err)
		}
		// Both are optional; a result is never dropped for lacking them.
		if description != nil {
			r.Description = *description
		}
		if imageURL != nil {
			r.ImageURL = *imageURL
		}
		page.Results = append(page.Results, r)
	}
	if err := rows.Err(); err != nil {
		return Page{}, fmt.Errorf("search rows failed: %w", err)
	}

	// The window count reports the full match count, so "more rows exist"
	// never misreports on an exact-boundary page.
	page.HasMore = q.Offset+len(page.Results) < page.Total
	return page, nil
}
