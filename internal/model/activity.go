package model

import "time"

// Activity actions written by the task service.
const (
	ActionCreated     = "created"
	ActionUpdated     = "updated"
	ActionCompleted   = "completed"
	ActionUncompleted = "uncompleted"
	ActionDeleted     = "deleted"
)

// ActivityLog is an append-only audit record of a mutation.
type ActivityLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	TaskID    *uint     `gorm:"index" json:"task_id"`
	Action    string    `gorm:"size:50;not null" json:"action"`
	Details   string    `gorm:"type:text" json:"details"`
	CreatedAt time.Time `json:"created_at"`
}
