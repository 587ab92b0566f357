package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

func (h *Handler) GetStats(c *gin.Context) {
	userID, ok := queryUserID(c)
	if !ok {
		return
	}
	stats, err := h.svc.Stats.Compute(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"stats": stats})
}

// DueReminders handles GET /api/reminders/due. window_minutes sets how far
// ahead of now to look.
func (h *Handler) DueReminders(c *gin.Context) {
	userID, ok := queryUserID(c)
	if !ok {
		return
	}
	var window time.Duration
	if raw := c.Query("window_minutes"); raw != "" {
		minutes, err := strconv.Atoi(raw)
		if err != nil || minutes <= 0 {
			fail(c, http.StatusBadRequest, "invalid window_minutes")
			return
		}
		window = time.Duration(minutes) * time.Minute
	}

	tasks, err := h.svc.Reminders.Due(c.Request.Context(), userID, window)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"tasks": tasks, "total": len(tasks)})
}

// Health reports whether the database answers.
func (h *Handler) Health(c *gin.Context) {
	if h.svc.Ping != nil {
		if err := h.svc.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "status": "unavailable", "error": "database unreachable"})
			return
		}
	}
	respond(c, http.StatusOK, gin.H{"status": "ok"})
}
