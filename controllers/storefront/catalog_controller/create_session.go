package catalog_controller

import (
	"net/http"

	"github.com/GadgetHub-Store/gadgets-catalog-backend/models"
	"github.com/GadgetHub-Store/gadgets-catalog-backend/services"
	"github.com/gin-gonic/gin"
)

// CreateSession godoc
// @Summary Open a catalog browsing session
// @Description Creates a catalog session under optional initial filters and returns its id with the first page snapshot
// @Tags Storefront - Catalog
// @Accept json
// @Produce json
// @Param filters body models.FilterState false "Initial filter state"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Router /store/catalog/sessions [post]
func CreateSession(c *gin.Context) {
	var filters models.FilterState
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&filters); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid filter payload"))
			return
		}
	}

	id, session := services.GetSessionService().Create(filters)
	snap := session.AwaitIdle(settleTimeout)

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Catalog session created", gin.H{
		"session_id": id,
		"snapshot":   snap,
	}))
}
