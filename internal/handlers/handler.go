package handlers

import (
	"context"

	"taskflow/internal/service"
)

// Services are the collaborators the HTTP handlers delegate to.
type Services struct {
	Tasks      *service.TaskService
	Categories *service.CategoryService
	Users      *service.UserService
	Settings   *service.SettingsService
	Stats      *service.StatsService
	Reminders  *service.ReminderService
	Ping       func(ctx context.Context) error
}

// Handler maps HTTP requests onto the services and shapes JSON responses.
type Handler struct {
	svc Services
}

func New(svc Services) *Handler {
	return &Handler{svc: svc}
}
