package product_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/HandLine-Safety/handline-catalog-backend/catalog"
	"github.com/HandLine-Safety/handline-catalog-backend/models"
)

// GetFacetOptions godoc
// @Summary Get derived facet options
// @Description Compute the distinct filter options observed across the published collection for a category context and locale. Dimensions with zero options are omitted, so the UI never renders an empty filter control.
// @Tags Storefront - Products
// @Produce json
// @Param category query string false "Catalog bucket (gloves, heat, welding, …)"
// @Param locale query string false "Locale preference" default(en)
// @Success 200 {object} models.ApiResponse "Facet options derived successfully"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /store/products/facets [get]
func GetFacetOptions(c *gin.Context) {
	locale := parseLocale(c)

	products, err := loadPublishedProducts()
	if err != nil {
		log.Printf("ERROR loading published products: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to derive facet options"))
		return
	}

	products = categoryContext(products, c.Query("category"))

	options := catalog.DeriveAllOptions(products, locale)
	payload := make(map[string][]string, len(options))
	for dim, opts := range options {
		payload[string(dim)] = opts
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Facet options derived successfully", payload))
}
