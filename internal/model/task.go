package model

import "time"

// Task is a to-do item owned by a user, optionally filed under a category.
//
// CompletedAt is set exactly while Completed is true; use MarkCompleted and
// MarkUncompleted to move between the two states.
type Task struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	Text             string     `gorm:"type:text;not null" json:"text"`
	Priority         string     `gorm:"size:10;not null;check:chk_tasks_priority,priority IN ('baixa','media','alta')" json:"priority"`
	CategoryID       *uint      `gorm:"index" json:"category_id"`
	Category         *Category  `json:"category"`
	ReminderDatetime *time.Time `json:"reminder_datetime"`
	Completed        bool       `gorm:"not null;default:false" json:"completed"`
	Notified         bool       `gorm:"not null;default:false" json:"notified"`
	UserID           uint       `gorm:"not null;index" json:"user_id"`
	CreatedAt        time.Time  `gorm:"index" json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
	CompletedAt      *time.Time `json:"completed_at"`
}

// MarkCompleted moves the task to the complete state at the given instant.
func (t *Task) MarkCompleted(at time.Time) {
	t.Completed = true
	t.CompletedAt = &at
}

// MarkUncompleted moves the task back to the incomplete state.
func (t *Task) MarkUncompleted() {
	t.Completed = false
	t.CompletedAt = nil
}
