package search

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/HandLine-Safety/handline-catalog-backend/cache"
	"github.com/HandLine-Safety/handline-catalog-backend/models"
)

// ProductNameSource suggests published product names.
type ProductNameSource struct {
	db *gorm.DB
}

func NewProductNameSource(db *gorm.DB) *ProductNameSource {
	return &ProductNameSource{db: db}
}

func (s *ProductNameSource) Suggest(ctx context.Context, partial string, limit int) ([]models.SearchSuggestion, error) {
	products := make([]models.Product, 0, limit)
	pattern := "%" + strings.ToLower(partial) + "%"

	err := s.db.WithContext(ctx).
		Where("published = ? AND LOWER(name) LIKE ?", true, pattern).
		Order("name ASC").
		Limit(limit).
		Find(&products).Error
	if err != nil {
		return nil, err
	}

	suggestions := make([]models.SearchSuggestion, 0, len(products))
	for _, p := range products {
		suggestions = append(suggestions, models.SearchSuggestion{
			ID:          p.ID.String(),
			Text:        p.Name,
			ContentType: models.ContentProduct,
			URL:         "/products/" + p.Slug,
			ImageURL:    p.ImageURL,
			MatchCount:  1,
		})
	}
	return suggestions, nil
}

// ArticleTitleSource suggests published blog post and case study titles.
// The article collection is small, so it matches against the TTL snapshot
// and only hits the database to refill an expired snapshot, not per
// keystroke.
type ArticleTitleSource struct {
	db *gorm.DB
}

func NewArticleTitleSource(db *gorm.DB) *ArticleTitleSource {
	return &ArticleTitleSource{db: db}
}

func articleURL(a models.Article) string {
	if a.Kind == "case_study" {
		return "/case-studies/" + a.Slug
	}
	return "/blog/" + a.Slug
}

func articleContentType(a models.Article) string {
	if a.Kind == "case_study" {
		return models.ContentCaseStudy
	}
	return models.ContentBlog
}

func (s *ArticleTitleSource) Suggest(ctx context.Context, partial string, limit int) ([]models.SearchSuggestion, error) {
	articles, err := s.loadPublishedArticles(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(partial)
	suggestions := make([]models.SearchSuggestion, 0, limit)
	for _, a := range articles {
		if len(suggestions) == limit {
			break
		}
		if !a.Published || !strings.Contains(strings.ToLower(a.Title), needle) {
			continue
		}
		suggestions = append(suggestions, models.SearchSuggestion{
			ID:          a.ID.String(),
			Text:        a.Title,
			ContentType: articleContentType(a),
			URL:         articleURL(a),
			ImageURL:    a.ImageURL,
			MatchCount:  1,
		})
	}
	return suggestions, nil
}

// loadPublishedArticles serves the snapshot when fresh, refilling it from
// the database otherwise. The snapshot is title-ordered so matching in
// order keeps the per-source output alphabetical.
func (s *ArticleTitleSource) loadPublishedArticles(ctx context.Context) ([]models.Article, error) {
	if articles, ok := catalog_cache.GetArticles(); ok {
		return articles, nil
	}

	articles := make([]models.Article, 0)
	if err := s.db.WithContext(ctx).
		Where("published = ?", true).
		Order("title ASC").
		Find(&articles).Error; err != nil {
		return nil, err
	}

	catalog_cache.SetArticles(articles)
	return articles, nil
}
