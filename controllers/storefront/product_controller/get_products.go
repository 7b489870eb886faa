package product_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/HandLine-Safety/handline-catalog-backend/catalog"
	"github.com/HandLine-Safety/handline-catalog-backend/models"
)

// GetProducts godoc
// @Summary Get storefront products with facet filters
// @Description Retrieve published products filtered by any combination of facet dimensions (length, closure, size, clothing size, material, standard, industry, environment, thumb loop), localised for the requested locale. Order is preserved through filtering.
// @Tags Storefront - Products
// @Produce json
// @Param category query string false "Catalog bucket (gloves, heat, welding, …)"
// @Param length query []string false "Length labels, e.g. 45 cm (repeatable)"
// @Param closure query []string false "Closure types (repeatable)"
// @Param size query []string false "Pad sizes (repeatable)"
// @Param clothing_size query []string false "Clothing sizes (repeatable)"
// @Param material query []string false "Materials (repeatable)"
// @Param standard query []string false "EN standards (repeatable)"
// @Param industry query []string false "Industries (repeatable)"
// @Param environment query []string false "Environment suitability flags (repeatable)"
// @Param thumb_loop query bool false "Thumb loop toggle"
// @Param locale query string false "Locale preference" default(en)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(12)
// @Success 200 {object} models.ApiResponse "Products fetched successfully"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /store/products [get]
func GetProducts(c *gin.Context) {
	page, limit := parsePagination(c)
	locale := parseLocale(c)

	products, err := loadPublishedProducts()
	if err != nil {
		log.Printf("ERROR loading published products: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch products"))
		return
	}

	products = categoryContext(products, c.Query("category"))
	matched := catalog.Filter(products, parseSelection(c), locale)

	// Paginate in memory; the snapshot is already ordered upstream.
	total := len(matched)
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	responses := make([]models.StorefrontProduct, 0, end-start)
	for _, p := range matched[start:end] {
		responses = append(responses, models.StorefrontProduct{
			ID:          p.ID,
			Name:        p.Name,
			Slug:        p.Slug,
			Category:    catalog.Resolve(p.CategoryLocales, locale, p.Category),
			SubCategory: catalog.Resolve(p.SubCategoryLocales, locale, p.SubCategory),
			Description: catalog.Resolve(p.ShortDescriptionLocales, locale, p.ShortDescription),
			ImageURL:    p.ImageURL,
		})
	}

	totalPages := (total + limit - 1) / limit
	c.JSON(http.StatusOK, models.PaginatedResponse(
		c,
		"Products fetched successfully",
		responses,
		&models.Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
		},
	))
}
