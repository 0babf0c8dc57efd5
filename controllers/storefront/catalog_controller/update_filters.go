package catalog_controller

import (
	"net/http"

	"github.com/GadgetHub-Store/gadgets-catalog-backend/models"
	"github.com/gin-gonic/gin"
)

// UpdateFilters godoc
// @Summary Replace the session's filter state
// @Description Applies a new filter context; the list resets to page 1 and any in-flight fetch from the old context is discarded
// @Tags Storefront - Catalog
// @Accept json
// @Produce json
// @Param id path string true "Session id"
// @Param filters body models.FilterState true "New filter state"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /store/catalog/sessions/{id}/filters [put]
func UpdateFilters(c *gin.Context) {
	session, ok := sessionFromPath(c)
	if !ok {
		return
	}

	var filters models.FilterState
	if err := c.ShouldBindJSON(&filters); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid filter payload"))
		return
	}

	session.SetFilters(filters)
	respondSnapshot(c, session, "Filters applied")
}
