package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskflow/internal/service"
)

type updateSettingsRequest struct {
	Theme                *string `json:"theme"`
	NotificationsEnabled *bool   `json:"notifications_enabled"`
	DefaultPriority      *string `json:"default_priority"`
}

func (h *Handler) GetSettings(c *gin.Context) {
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}
	settings, err := h.svc.Settings.Get(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"settings": settings})
}

func (h *Handler) UpdateSettings(c *gin.Context) {
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}
	var req updateSettingsRequest
	if err := bindBody(c, &req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}
	settings, err := h.svc.Settings.Update(c.Request.Context(), userID, service.SettingsUpdate{
		Theme:                req.Theme,
		NotificationsEnabled: req.NotificationsEnabled,
		DefaultPriority:      req.DefaultPriority,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"settings": settings, "message": "Settings updated"})
}
