package catalog_controller

import (
	"net/http"

	"github.com/GadgetHub-Store/gadgets-catalog-backend/config"
	"github.com/GadgetHub-Store/gadgets-catalog-backend/models"
	"github.com/GadgetHub-Store/gadgets-catalog-backend/services"
	"github.com/gin-gonic/gin"
)

// GetPriceCeiling godoc
// @Summary Get the price-range ceiling
// @Description Resolves the effective maximum price for the session's filter context, from the loaded page and a cached background sample
// @Tags Storefront - Catalog
// @Produce json
// @Param id path string true "Session id"
// @Success 200 {object} models.ApiResponse{data=models.PriceCeilingData}
// @Failure 404 {object} models.ApiResponse
// @Router /store/catalog/sessions/{id}/price-ceiling [get]
func GetPriceCeiling(c *gin.Context) {
	session, ok := sessionFromPath(c)
	if !ok {
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Price ceiling resolved", session.PriceCeiling(ctx)))
}

// DeleteSession godoc
// @Summary Discard a catalog session
// @Tags Storefront - Catalog
// @Produce json
// @Param id path string true "Session id"
// @Success 200 {object} models.ApiResponse
// @Router /store/catalog/sessions/{id} [delete]
func DeleteSession(c *gin.Context) {
	services.GetSessionService().Delete(c.Param("id"))
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Catalog session discarded", nil))
}
