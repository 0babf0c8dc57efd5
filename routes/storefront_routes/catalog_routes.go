package storefront_routes

import (
	"time"

	"github.com/GadgetHub-Store/gadgets-catalog-backend/controllers/storefront/catalog_controller"
	"github.com/GadgetHub-Store/gadgets-catalog-backend/middleware"
	"github.com/gin-gonic/gin"
)

// SetupCatalogRoutes mounts the storefront catalog session API.
// Public routes, rate-limited per IP.
func SetupCatalogRoutes(router *gin.RouterGroup) {
	store := router.Group("/store")
	store.Use(middleware.RateLimiter(120, time.Minute))

	catalog := store.Group("/catalog")
	{
		sessions := catalog.Group("/sessions")
		{
			sessions.POST("", catalog_controller.CreateSession)
			sessions.GET("/:id", catalog_controller.GetSession)
			sessions.DELETE("/:id", catalog_controller.DeleteSession)

			sessions.PUT("/:id/filters", catalog_controller.UpdateFilters)

			sessions.POST("/:id/page/next", catalog_controller.NextPage)
			sessions.POST("/:id/page/prev", catalog_controller.PrevPage)

			sessions.PUT("/:id/search", catalog_controller.UpdateSearch)
			sessions.DELETE("/:id/search", catalog_controller.ClearSearch)

			sessions.GET("/:id/price-ceiling", catalog_controller.GetPriceCeiling)
		}
	}
}
