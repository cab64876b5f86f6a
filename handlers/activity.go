package handlers

import (
	"net/http"

	"course-server/services"
	"course-server/ws"

	"github.com/gin-gonic/gin"
)

// ActivityHandler exposes the recent-events buffer over HTTP.
type ActivityHandler struct {
	recorder *services.ActivityRecorder
	mgr      *ws.Manager
}

func NewActivityHandler(recorder *services.ActivityRecorder, mgr *ws.Manager) *ActivityHandler {
	return &ActivityHandler{
		recorder: recorder,
		mgr:      mgr,
	}
}

// GetRecentActivity handles GET /api/v1/activity
func (h *ActivityHandler) GetRecentActivity(c *gin.Context) {
	events := h.recorder.Recent()
	c.JSON(http.StatusOK, gin.H{
		"events": events,
		"count":  len(events),
	})
}

// GetActivityStats handles GET /api/v1/activity/stats
func (h *ActivityHandler) GetActivityStats(c *gin.Context) {
	stats := h.recorder.Stats()
	stats["connected_subscribers"] = len(h.mgr.List())
	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"stats":  stats,
	})
}
