// @title HandLine Catalog API
// @version 1.0
// @description HandLine storefront catalog, faceted filtering and search API
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/HandLine-Safety/handline-catalog-backend/config"
	"github.com/HandLine-Safety/handline-catalog-backend/controllers/storefront/search_controller"
	"github.com/HandLine-Safety/handline-catalog-backend/routes/storefront_routes"
	"github.com/HandLine-Safety/handline-catalog-backend/search"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	// Connect to DB
	config.InitDB()
	defer config.CloseDB()
	// Redis connection (rate limiting)
	config.ConnectRedis()
	defer config.CloseRedis()

	// Wire the search engine and suggestion sources
	engine := search.NewEngine(search.NewPostgresStore(config.CatalogDB))
	suggester := search.NewSuggester(
		search.NewProductNameSource(config.CatalogGorm),
		search.NewArticleTitleSource(config.CatalogGorm),
	)
	search_controller.Init(engine, suggester)

	corsCfg := cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:3001"},
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	// Register API routes
	api := router.Group("/api/v1")
	storefront_routes.SetupStorefrontRoutes(api)

	// Swagger docs
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	fmt.Println("🚀 Server is running on http://localhost:" + port)
	router.Run(":" + port)
}
