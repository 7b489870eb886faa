package product_controller

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/HandLine-Safety/handline-catalog-backend/cache"
	"github.com/HandLine-Safety/handline-catalog-backend/catalog"
	"github.com/HandLine-Safety/handline-catalog-backend/config"
	"github.com/HandLine-Safety/handline-catalog-backend/models"
)

// ─────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────

func parsePagination(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "12"))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 12
	}

	return page, limit
}

func parseLocale(c *gin.Context) string {
	locale := strings.TrimSpace(c.DefaultQuery("locale", catalog.DefaultLocale))
	if locale == "" {
		return catalog.DefaultLocale
	}
	return locale
}

// parseSelection reads the repeatable facet params into a Selection.
// Unknown or empty params simply leave their dimension inactive.
func parseSelection(c *gin.Context) catalog.Selection {
	sel := catalog.Selection{
		Lengths:       cleanValues(c.QueryArray("length")),
		Closures:      cleanValues(c.QueryArray("closure")),
		Sizes:         cleanValues(c.QueryArray("size")),
		ClothingSizes: cleanValues(c.QueryArray("clothing_size")),
		Materials:     cleanValues(c.QueryArray("material")),
		Standards:     cleanValues(c.QueryArray("standard")),
		Industries:    cleanValues(c.QueryArray("industry")),
		Environments:  cleanValues(c.QueryArray("environment")),
	}

	// Toggle dimension: only active when explicitly sent.
	if raw, ok := c.GetQuery("thumb_loop"); ok {
		if v, err := strconv.ParseBool(raw); err == nil {
			sel.ThumbLoop = &v
		}
	}

	return sel
}

func cleanValues(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// categoryContext restricts the collection to one catalog bucket before
// facets are derived or predicates evaluated.
func categoryContext(products []models.Product, tag string) []models.Product {
	if tag == "" {
		return products
	}
	want := catalog.CategoryTag(tag)
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		for _, t := range catalog.Classify(p) {
			if t == want {
				out = append(out, p)
				break
			}
		}
	}
	return out
}

// ─────────────────────────────────────────────────────────────
// Database fetcher (snapshot-cached)
// ─────────────────────────────────────────────────────────────

func loadPublishedProducts() ([]models.Product, error) {
	if products, ok := catalog_cache.GetProducts(); ok {
		return products, nil
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	products := make([]models.Product, 0)
	if err := config.CatalogGorm.WithContext(ctx).
		Where("published = ?", true).
		Order("created_at DESC").
		Find(&products).Error; err != nil {
		return nil, err
	}

	catalog_cache.SetProducts(products)
	return products, nil
}
