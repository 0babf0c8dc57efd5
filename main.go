// @title GadgetHub Catalog API
// @version 1.0
// @description Variant-aware catalog engine for the GadgetHub storefront
// @BasePath /api/v1
// @schemes http
package main

import (
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/GadgetHub-Store/gadgets-catalog-backend/config"
	"github.com/GadgetHub-Store/gadgets-catalog-backend/gadgetsapi"
	"github.com/GadgetHub-Store/gadgets-catalog-backend/models"
	"github.com/GadgetHub-Store/gadgets-catalog-backend/routes/storefront_routes"
	"github.com/GadgetHub-Store/gadgets-catalog-backend/services"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	if config.AppEnv() == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Rate limiter backend
	config.ConnectRedis()
	defer config.CloseRedis()

	// Upstream gadgets API + session registry
	client := gadgetsapi.NewClient(config.GadgetsAPIURL(), config.GadgetsAPITimeout())
	services.InitSessionService(client)
	log.Println("✅ Gadgets API client ready:", config.GadgetsAPIURL())

	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:3000",
			"http://localhost:3001",
			"https://gadgethub.store",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "ok", gin.H{
			"sessions": services.GetSessionService().Count(),
		}))
	})

	v1 := router.Group("/api/v1")
	storefront_routes.SetupCatalogRoutes(v1)

	port := config.Port()
	log.Println("✅ Catalog engine listening on :" + port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("❌ server exited: %v", err)
	}
}
