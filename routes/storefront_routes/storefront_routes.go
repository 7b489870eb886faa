package storefront_routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/HandLine-Safety/handline-catalog-backend/controllers/storefront/product_controller"
	"github.com/HandLine-Safety/handline-catalog-backend/controllers/storefront/search_controller"
	"github.com/HandLine-Safety/handline-catalog-backend/middleware"
)

func SetupStorefrontRoutes(rg *gin.RouterGroup) {
	store := rg.Group("/store")

	// ════════════════════════════════════════════════════════════
	// Products (facets, filters, stats)
	// ════════════════════════════════════════════════════════════
	products := store.Group("/products")
	products.GET("", product_controller.GetProducts)
	products.GET("/facets", product_controller.GetFacetOptions)
	products.GET("/stats", product_controller.GetCategoryStats)

	// ════════════════════════════════════════════════════════════
	// Search (rate limited: search-as-you-type hits these hard)
	// ════════════════════════════════════════════════════════════
	searchGroup := store.Group("/search")
	searchGroup.Use(middleware.RateLimiter(120, time.Minute))
	searchGroup.GET("", search_controller.SearchSite)
	searchGroup.GET("/suggestions", search_controller.GetSuggestions)
}
