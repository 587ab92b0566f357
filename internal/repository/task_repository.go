package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"taskflow/internal/model"
)

// TaskFilter narrows ListByUser by exact-match equality. Nil or empty fields
// do not filter.
type TaskFilter struct {
	UserID     uint
	Completed  *bool
	Priority   string
	CategoryID *uint
}

// TaskRepository handles CRUD for tasks.
type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(task).Error; err != nil {
		return fmt.Errorf("create task: %w", err)
	}
	return nil
}

// List returns the matching tasks of a user, newest first, with categories loaded.
func (r *TaskRepository) List(ctx context.Context, filter TaskFilter) ([]model.Task, error) {
	q := r.db.WithContext(ctx).Preload("Category").Where("user_id = ?", filter.UserID)
	if filter.Completed != nil {
		q = q.Where("completed = ?", *filter.Completed)
	}
	if filter.Priority != "" {
		q = q.Where("priority = ?", filter.Priority)
	}
	if filter.CategoryID != nil {
		q = q.Where("category_id = ?", *filter.CategoryID)
	}

	var tasks []model.Task
	if err := q.Order("created_at DESC, id DESC").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *TaskRepository) FindByID(ctx context.Context, taskID uint) (*model.Task, error) {
	var task model.Task
	if err := r.db.WithContext(ctx).Preload("Category").First(&task, taskID).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// Save writes every column of task. The loaded Category is never written back.
func (r *TaskRepository) Save(ctx context.Context, task *model.Task) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(task).Error; err != nil {
		return fmt.Errorf("save task: %w", err)
	}
	return nil
}

// Delete removes a task together with its activity entries.
func (r *TaskRepository) Delete(ctx context.Context, taskID uint) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("task_id = ?", taskID).Delete(&model.ActivityLog{}).Error; err != nil {
		return fmt.Errorf("delete task activity: %w", err)
	}
	if err := db.Delete(&model.Task{}, taskID).Error; err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}

func (r *TaskRepository) CountByCategory(ctx context.Context, categoryID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Task{}).Where("category_id = ?", categoryID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count category tasks: %w", err)
	}
	return count, nil
}

// Count returns the number of tasks of a user, optionally only those whose
// completion flag equals completed.
func (r *TaskRepository) Count(ctx context.Context, userID uint, completed *bool) (int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Task{}).Where("user_id = ?", userID)
	if completed != nil {
		q = q.Where("completed = ?", *completed)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count tasks: %w", err)
	}
	return count, nil
}

// PendingByPriority counts the incomplete tasks of a user per priority.
func (r *TaskRepository) PendingByPriority(ctx context.Context, userID uint) (map[string]int64, error) {
	var rows []struct {
		Priority string
		Count    int64
	}
	if err := r.db.WithContext(ctx).Model(&model.Task{}).
		Select("priority, COUNT(*) AS count").
		Where("user_id = ? AND completed = ?", userID, false).
		Group("priority").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("count pending by priority: %w", err)
	}
	out := make(map[string]int64, len(rows))
	for _, row := range rows {
		out[row.Priority] = row.Count
	}
	return out, nil
}

// PendingByCategory counts incomplete tasks per category id for the given categories.
func (r *TaskRepository) PendingByCategory(ctx context.Context, categoryIDs []uint) (map[uint]int64, error) {
	out := make(map[uint]int64)
	if len(categoryIDs) == 0 {
		return out, nil
	}
	var rows []struct {
		CategoryID uint
		Count      int64
	}
	if err := r.db.WithContext(ctx).Model(&model.Task{}).
		Select("category_id, COUNT(*) AS count").
		Where("category_id IN ? AND completed = ?", categoryIDs, false).
		Group("category_id").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("count pending by category: %w", err)
	}
	for _, row := range rows {
		out[row.CategoryID] = row.Count
	}
	return out, nil
}

// ListPendingReminders returns incomplete, not yet notified tasks of a user
// whose reminder falls in [from, to], earliest first.
func (r *TaskRepository) ListPendingReminders(ctx context.Context, userID uint, from, to time.Time) ([]model.Task, error) {
	var tasks []model.Task
	if err := r.db.WithContext(ctx).Preload("Category").
		Where("user_id = ? AND completed = ? AND notified = ?", userID, false, false).
		Where("reminder_datetime IS NOT NULL AND reminder_datetime >= ? AND reminder_datetime <= ?", from.UTC(), to.UTC()).
		Order("reminder_datetime ASC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// CountOverdueRemindersByUser counts, per user, incomplete and not yet
// notified tasks whose reminder is at or before now.
func (r *TaskRepository) CountOverdueRemindersByUser(ctx context.Context, now time.Time) (map[uint]int64, error) {
	var rows []struct {
		UserID uint
		Count  int64
	}
	if err := r.db.WithContext(ctx).Model(&model.Task{}).
		Select("user_id, COUNT(*) AS count").
		Where("completed = ? AND notified = ?", false, false).
		Where("reminder_datetime IS NOT NULL AND reminder_datetime <= ?", now.UTC()).
		Group("user_id").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("count overdue reminders: %w", err)
	}
	out := make(map[uint]int64, len(rows))
	for _, row := range rows {
		out[row.UserID] = row.Count
	}
	return out, nil
}
