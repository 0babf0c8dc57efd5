package catalog_controller

import (
	"net/http"
	"time"

	"github.com/GadgetHub-Store/gadgets-catalog-backend/catalog"
	"github.com/GadgetHub-Store/gadgets-catalog-backend/config"
	"github.com/GadgetHub-Store/gadgets-catalog-backend/models"
	"github.com/GadgetHub-Store/gadgets-catalog-backend/services"
	"github.com/gin-gonic/gin"
)

// ─────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────

// settleTimeout bounds how long a handler waits for an in-flight fetch
// before responding with a loading snapshot.
const settleTimeout = 3 * time.Second

// searchRequest is the body for live-search input.
type searchRequest struct {
	Query string `json:"query" binding:"required" example:"pixel"`
}

// sessionFromPath resolves the :id path param to a live session, writing
// the 404 envelope itself when the session is unknown or evicted.
func sessionFromPath(c *gin.Context) (*catalog.Session, bool) {
	id := c.Param("id")

	session, err := services.GetSessionService().Get(id)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Catalog session not found or expired"))
		return nil, false
	}
	return session, true
}

// respondSnapshot waits for the session to settle and writes the
// snapshot with pagination meta. A session-level fetch error is part of
// the view state, not an HTTP failure, so it still ships as 200.
func respondSnapshot(c *gin.Context, session *catalog.Session, message string) {
	snap := session.AwaitIdle(settleTimeout)

	limit := config.ItemsPerPage()
	totalPages := 0
	if snap.Total > 0 {
		totalPages = (snap.Total + limit - 1) / limit
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, message, snap, &models.Pagination{
		Page:       snap.Page,
		Limit:      limit,
		Total:      snap.Total,
		TotalPages: totalPages,
	}))
}
