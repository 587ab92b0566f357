package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"taskflow/internal/repository"
	"taskflow/internal/service"
)

type createTaskRequest struct {
	Text             string `json:"text"`
	Priority         string `json:"priority"`
	CategoryID       *uint  `json:"category_id"`
	ReminderDatetime string `json:"reminder_datetime"`
	UserID           *uint  `json:"user_id"`
}

// updateTaskRequest keeps category_id and reminder_datetime raw so an explicit
// null (clear the field) can be told apart from an absent key.
type updateTaskRequest struct {
	Text             *string         `json:"text"`
	Priority         *string         `json:"priority"`
	CategoryID       json.RawMessage `json:"category_id"`
	ReminderDatetime json.RawMessage `json:"reminder_datetime"`
	Completed        *bool           `json:"completed"`
	Notified         *bool           `json:"notified"`
}

func (r updateTaskRequest) toUpdate() (service.TaskUpdate, bool) {
	upd := service.TaskUpdate{
		Text:      r.Text,
		Priority:  r.Priority,
		Completed: r.Completed,
		Notified:  r.Notified,
	}

	if r.CategoryID != nil {
		upd.SetCategory = true
		if !isNull(r.CategoryID) {
			var id uint
			if err := json.Unmarshal(r.CategoryID, &id); err != nil {
				return upd, false
			}
			upd.CategoryID = &id
		}
	}
	if r.ReminderDatetime != nil {
		upd.SetReminder = true
		if !isNull(r.ReminderDatetime) {
			if err := json.Unmarshal(r.ReminderDatetime, &upd.Reminder); err != nil {
				return upd, false
			}
		}
	}
	return upd, true
}

func isNull(raw json.RawMessage) bool {
	return string(raw) == "null"
}

// ListTasks handles GET /api/tasks with optional completed, priority,
// category_id and user_id filters.
func (h *Handler) ListTasks(c *gin.Context) {
	userID, ok := queryUserID(c)
	if !ok {
		return
	}
	filter := repository.TaskFilter{UserID: userID, Priority: c.Query("priority")}

	if raw := c.Query("completed"); raw != "" {
		completed, err := strconv.ParseBool(raw)
		if err != nil {
			fail(c, http.StatusBadRequest, "invalid completed filter")
			return
		}
		filter.Completed = &completed
	}
	if raw := c.Query("category_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			fail(c, http.StatusBadRequest, "invalid category_id filter")
			return
		}
		categoryID := uint(id)
		filter.CategoryID = &categoryID
	}

	tasks, err := h.svc.Tasks.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"tasks": tasks, "total": len(tasks)})
}

func (h *Handler) CreateTask(c *gin.Context) {
	var req createTaskRequest
	if err := bindBody(c, &req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	task, err := h.svc.Tasks.Create(c.Request.Context(), service.TaskInput{
		UserID:     userIDOrDefault(req.UserID),
		Text:       req.Text,
		Priority:   req.Priority,
		CategoryID: req.CategoryID,
		Reminder:   req.ReminderDatetime,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, gin.H{"task": task, "message": "Task created"})
}

func (h *Handler) GetTask(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	task, err := h.svc.Tasks.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"task": task})
}

func (h *Handler) UpdateTask(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req updateTaskRequest
	if err := bindBody(c, &req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}
	upd, valid := req.toUpdate()
	if !valid {
		fail(c, http.StatusBadRequest, errInvalidBody.Error())
		return
	}

	task, err := h.svc.Tasks.Update(c.Request.Context(), id, upd)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"task": task, "message": "Task updated"})
}

func (h *Handler) DeleteTask(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Tasks.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"message": "Task deleted"})
}

// ToggleTask handles PATCH /api/tasks/toggle/:id.
func (h *Handler) ToggleTask(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	task, err := h.svc.Tasks.Toggle(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	message := "Task reopened"
	if task.Completed {
		message = "Task completed"
	}
	respond(c, http.StatusOK, gin.H{"task": task, "message": message})
}
