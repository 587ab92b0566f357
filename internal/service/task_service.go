package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"

	"taskflow/internal/model"
	"taskflow/internal/repository"
)

// TaskInput represents data required to create a task.
type TaskInput struct {
	UserID     uint
	Text       string
	Priority   string
	CategoryID *uint
	Reminder   string
}

// TaskUpdate describes a partial task update. Nil pointers leave the field
// untouched; SetCategory and SetReminder mark the nullable fields as present,
// in which case a nil CategoryID or empty Reminder clears them.
type TaskUpdate struct {
	Text        *string
	Priority    *string
	SetCategory bool
	CategoryID  *uint
	SetReminder bool
	Reminder    string
	Completed   *bool
	Notified    *bool
}

// TaskService wraps task-related business logic.
type TaskService struct {
	repos *repository.Repositories
	now   func() time.Time
}

func NewTaskService(repos *repository.Repositories) *TaskService {
	return &TaskService{
		repos: repos,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func (s *TaskService) List(ctx context.Context, filter repository.TaskFilter) ([]model.Task, error) {
	filter.CategoryID = normalizeID(filter.CategoryID)
	return s.repos.Tasks.List(ctx, filter)
}

func (s *TaskService) Get(ctx context.Context, taskID uint) (*model.Task, error) {
	task, err := s.repos.Tasks.FindByID(ctx, taskID)
	if err != nil {
		return nil, notFoundOr(err, "task")
	}
	return task, nil
}

func (s *TaskService) Create(ctx context.Context, input TaskInput) (*model.Task, error) {
	if strings.TrimSpace(input.Text) == "" {
		return nil, validationf("task text is required")
	}

	priority := input.Priority
	if priority == "" {
		priority = model.PriorityMedium
	}
	if !model.ValidPriority(priority) {
		return nil, validationf("invalid priority %q", priority)
	}

	reminder, err := ParseReminder(input.Reminder)
	if err != nil {
		return nil, err
	}
	categoryID := normalizeID(input.CategoryID)

	var created *model.Task
	err = s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		if categoryID != nil {
			if err := requireCategory(ctx, tx, *categoryID); err != nil {
				return err
			}
		}

		task := model.Task{
			UserID:           input.UserID,
			Text:             input.Text,
			Priority:         priority,
			CategoryID:       categoryID,
			ReminderDatetime: reminder,
		}
		if err := tx.Tasks.Create(ctx, &task); err != nil {
			return err
		}
		if err := recordActivity(ctx, tx, task.UserID, model.ActionCreated, &task.ID, "Task created: "+task.Text); err != nil {
			return err
		}

		loaded, err := tx.Tasks.FindByID(ctx, task.ID)
		created = loaded
		return err
	})
	if err != nil {
		return nil, err
	}
	countActivity(model.ActionCreated)
	return created, nil
}

// Update applies a partial update and logs one "updated" entry listing every
// changed field. Nothing is logged when no field changed.
func (s *TaskService) Update(ctx context.Context, taskID uint, upd TaskUpdate) (*model.Task, error) {
	if upd.Text != nil && strings.TrimSpace(*upd.Text) == "" {
		return nil, validationf("task text cannot be empty")
	}
	if upd.Priority != nil && !model.ValidPriority(*upd.Priority) {
		return nil, validationf("invalid priority %q", *upd.Priority)
	}
	var reminder *time.Time
	if upd.SetReminder {
		var err error
		if reminder, err = ParseReminder(upd.Reminder); err != nil {
			return nil, err
		}
	}
	categoryID := normalizeID(upd.CategoryID)

	var (
		updated *model.Task
		logged  bool
	)
	err := s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		task, err := tx.Tasks.FindByID(ctx, taskID)
		if err != nil {
			return notFoundOr(err, "task")
		}
		before := snapshotTask(task)
		notifiedBefore := task.Notified

		if upd.Text != nil {
			task.Text = *upd.Text
		}
		if upd.Priority != nil {
			task.Priority = *upd.Priority
		}
		if upd.SetCategory {
			if categoryID != nil {
				if err := requireCategory(ctx, tx, *categoryID); err != nil {
					return err
				}
			}
			task.CategoryID = categoryID
		}
		if upd.Notified != nil {
			task.Notified = *upd.Notified
		}
		if upd.SetReminder {
			if !sameInstant(task.ReminderDatetime, reminder) {
				task.Notified = false
			}
			task.ReminderDatetime = reminder
		}
		if upd.Completed != nil {
			s.setCompleted(task, *upd.Completed)
		}

		changes := diffTask(before, snapshotTask(task))
		if len(changes) == 0 && task.Notified == notifiedBefore {
			updated = task
			return nil
		}

		if err := tx.Tasks.Save(ctx, task); err != nil {
			return err
		}
		if len(changes) > 0 {
			details := "Changes: " + strings.Join(changes, ", ")
			if err := recordActivity(ctx, tx, task.UserID, model.ActionUpdated, &task.ID, details); err != nil {
				return err
			}
			logged = true
		}

		loaded, err := tx.Tasks.FindByID(ctx, task.ID)
		updated = loaded
		return err
	})
	if err != nil {
		return nil, err
	}
	if logged {
		countActivity(model.ActionUpdated)
	}
	return updated, nil
}

// Toggle flips the completion flag of a task.
func (s *TaskService) Toggle(ctx context.Context, taskID uint) (*model.Task, error) {
	var (
		toggled *model.Task
		action  string
	)
	err := s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		task, err := tx.Tasks.FindByID(ctx, taskID)
		if err != nil {
			return notFoundOr(err, "task")
		}

		if task.Completed {
			task.MarkUncompleted()
			action = model.ActionUncompleted
		} else {
			task.MarkCompleted(s.now())
			action = model.ActionCompleted
		}

		if err := tx.Tasks.Save(ctx, task); err != nil {
			return err
		}
		if err := recordActivity(ctx, tx, task.UserID, action, &task.ID, "Status changed to: "+action); err != nil {
			return err
		}
		toggled = task
		return nil
	})
	if err != nil {
		return nil, err
	}
	countActivity(action)
	return toggled, nil
}

// Delete removes a task and its activity history. The "deleted" entry is
// written afterwards without a task reference, so it outlives the task.
func (s *TaskService) Delete(ctx context.Context, taskID uint) error {
	err := s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		task, err := tx.Tasks.FindByID(ctx, taskID)
		if err != nil {
			return notFoundOr(err, "task")
		}
		if err := tx.Tasks.Delete(ctx, task.ID); err != nil {
			return err
		}
		details := fmt.Sprintf("Task deleted: %s", task.Text)
		return recordActivity(ctx, tx, task.UserID, model.ActionDeleted, nil, details)
	})
	if err != nil {
		return err
	}
	countActivity(model.ActionDeleted)
	return nil
}

func (s *TaskService) setCompleted(task *model.Task, completed bool) {
	switch {
	case completed && !task.Completed:
		task.MarkCompleted(s.now())
	case !completed && task.Completed:
		task.MarkUncompleted()
	}
}

func requireCategory(ctx context.Context, tx *repository.Repositories, categoryID uint) error {
	if _, err := tx.Categories.GetByID(ctx, categoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return validationf("category not found")
		}
		return err
	}
	return nil
}

var reminderLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseReminder accepts a bare date (midnight UTC) or a timestamp with or
// without offset (UTC when absent) and returns the instant in UTC. Empty input
// means no reminder. Past instants are accepted.
func ParseReminder(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	for _, layout := range reminderLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			t = t.UTC()
			return &t, nil
		}
	}
	return nil, validationf("invalid date format %q", raw)
}

type taskSnapshot struct {
	text       string
	priority   string
	categoryID *uint
	reminder   *time.Time
	completed  bool
}

func snapshotTask(t *model.Task) taskSnapshot {
	return taskSnapshot{
		text:       t.Text,
		priority:   t.Priority,
		categoryID: t.CategoryID,
		reminder:   t.ReminderDatetime,
		completed:  t.Completed,
	}
}

// diffTask renders each changed field as "field: old → new".
func diffTask(before, after taskSnapshot) []string {
	var changes []string
	add := func(field, oldValue, newValue string) {
		if oldValue != newValue {
			changes = append(changes, fmt.Sprintf("%s: %s → %s", field, oldValue, newValue))
		}
	}
	add("text", before.text, after.text)
	add("priority", before.priority, after.priority)
	add("category_id", formatID(before.categoryID), formatID(after.categoryID))
	add("reminder_datetime", formatTime(before.reminder), formatTime(after.reminder))
	add("completed", strconv.FormatBool(before.completed), strconv.FormatBool(after.completed))
	return changes
}

func formatID(id *uint) string {
	if id == nil {
		return "null"
	}
	return strconv.FormatUint(uint64(*id), 10)
}

func formatTime(t *time.Time) string {
	if t == nil {
		return "null"
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func sameInstant(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}

// normalizeID treats a zero id like an absent one.
func normalizeID(id *uint) *uint {
	if id == nil || *id == 0 {
		return nil
	}
	return id
}
