package catalog_controller

import (
	"github.com/gin-gonic/gin"
)

// NextPage godoc
// @Summary Load the next catalog page ("View More")
// @Description Advances the page cursor and appends the new page to the cumulative list
// @Tags Storefront - Catalog
// @Produce json
// @Param id path string true "Session id"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /store/catalog/sessions/{id}/page/next [post]
func NextPage(c *gin.Context) {
	session, ok := sessionFromPath(c)
	if !ok {
		return
	}

	session.NextPage()
	respondSnapshot(c, session, "Next page loaded")
}

// PrevPage godoc
// @Summary Collapse the last catalog page ("View Less")
// @Description Retreats the page cursor and truncates the cumulative list locally; no upstream call is made
// @Tags Storefront - Catalog
// @Produce json
// @Param id path string true "Session id"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /store/catalog/sessions/{id}/page/prev [post]
func PrevPage(c *gin.Context) {
	session, ok := sessionFromPath(c)
	if !ok {
		return
	}

	session.PrevPage()
	respondSnapshot(c, session, "Page collapsed")
}
