package service

import (
	"context"

	"taskflow/internal/metrics"
	"taskflow/internal/model"
	"taskflow/internal/repository"
)

// recordActivity appends an audit entry through tx so it commits or rolls
// back together with the mutation it describes.
func recordActivity(ctx context.Context, tx *repository.Repositories, userID uint, action string, taskID *uint, details string) error {
	return tx.Activity.Append(ctx, &model.ActivityLog{
		UserID:  userID,
		TaskID:  taskID,
		Action:  action,
		Details: details,
	})
}

// countActivity is called once the transaction holding the entry committed.
func countActivity(action string) {
	metrics.ActivityLogWrites.WithLabelValues(action).Inc()
}
