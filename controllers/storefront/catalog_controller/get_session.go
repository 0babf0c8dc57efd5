package catalog_controller

import (
	"github.com/gin-gonic/gin"
)

// GetSession godoc
// @Summary Get the current catalog snapshot
// @Description Returns the session's current items, total, page, and loading/error state
// @Tags Storefront - Catalog
// @Produce json
// @Param id path string true "Session id"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /store/catalog/sessions/{id} [get]
func GetSession(c *gin.Context) {
	session, ok := sessionFromPath(c)
	if !ok {
		return
	}

	respondSnapshot(c, session, "Catalog snapshot fetched")
}
