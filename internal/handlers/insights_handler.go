package handlers

import (
	"net/http"

	"github.com/XDazaiX/La-Habana-Kitchen/internal/dto"
	"github.com/XDazaiX/La-Habana-Kitchen/internal/insights"
	"github.com/gin-gonic/gin"
)

type InsightsHandler struct {
	client *insights.Client
}

func NewInsightsHandler(client *insights.Client) *InsightsHandler {
	return &InsightsHandler{client: client}
}

// Get serves the latest metrics snapshot, or the unavailable notice if none
// has been fetched yet. The provider being down never fails anything else.
func (h *InsightsHandler) Get(c *gin.Context) {
	if h.client == nil {
		c.JSON(http.StatusServiceUnavailable, dto.InsightsUnavailable{
			Status:  "unavailable",
			Message: "insights are not configured",
		})
		return
	}
	snap, ok := h.client.Snapshot()
	if !ok {
		c.JSON(http.StatusServiceUnavailable, dto.InsightsUnavailable{
			Status:  "unavailable",
			Message: "insights are temporarily unavailable",
		})
		return
	}
	c.JSON(http.StatusOK, snap)
}
