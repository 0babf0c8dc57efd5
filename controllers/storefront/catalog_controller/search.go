package catalog_controller

import (
	"net/http"

	"github.com/GadgetHub-Store/gadgets-catalog-backend/models"
	"github.com/gin-gonic/gin"
)

// UpdateSearch godoc
// @Summary Record live-search input
// @Description Stores the query immediately; the remote search dispatches only after the input stays idle for the debounce window
// @Tags Storefront - Catalog
// @Accept json
// @Produce json
// @Param id path string true "Session id"
// @Param search body searchRequest true "Search query"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /store/catalog/sessions/{id}/search [put]
func UpdateSearch(c *gin.Context) {
	session, ok := sessionFromPath(c)
	if !ok {
		return
	}

	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid search payload"))
		return
	}

	session.SetSearch(req.Query)

	// Don't wait out the debounce window here; the snapshot legitimately
	// shows the previous list with the new query text until it fires.
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Search query recorded", session.Snapshot()))
}

// ClearSearch godoc
// @Summary Clear the live search
// @Description Drops the query and immediately restores the filtered catalog (no debounce)
// @Tags Storefront - Catalog
// @Produce json
// @Param id path string true "Session id"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /store/catalog/sessions/{id}/search [delete]
func ClearSearch(c *gin.Context) {
	session, ok := sessionFromPath(c)
	if !ok {
		return
	}

	session.ClearSearch()
	respondSnapshot(c, session, "Search cleared")
}
