package service

import (
	"context"
	"math"

	"taskflow/internal/model"
	"taskflow/internal/repository"
)

// Stats aggregates the task counters of one user.
type Stats struct {
	TotalTasks     int64            `json:"total_tasks"`
	CompletedTasks int64            `json:"completed_tasks"`
	PendingTasks   int64            `json:"pending_tasks"`
	CompletionRate float64          `json:"completion_rate"`
	PriorityStats  map[string]int64 `json:"priority_stats"`
	CategoryStats  []CategoryStat   `json:"category_stats"`
}

// CategoryStat pairs a category with its number of pending tasks.
type CategoryStat struct {
	Category  model.Category `json:"category"`
	TaskCount int64          `json:"task_count"`
}

type StatsService struct {
	repos *repository.Repositories
}

func NewStatsService(repos *repository.Repositories) *StatsService {
	return &StatsService{repos: repos}
}

func (s *StatsService) Compute(ctx context.Context, userID uint) (*Stats, error) {
	total, err := s.repos.Tasks.Count(ctx, userID, nil)
	if err != nil {
		return nil, err
	}
	done := true
	completed, err := s.repos.Tasks.Count(ctx, userID, &done)
	if err != nil {
		return nil, err
	}

	byPriority, err := s.repos.Tasks.PendingByPriority(ctx, userID)
	if err != nil {
		return nil, err
	}
	priorityStats := make(map[string]int64, len(model.Priorities))
	for _, p := range model.Priorities {
		priorityStats[p] = byPriority[p]
	}

	categories, err := s.repos.Categories.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	ids := make([]uint, 0, len(categories))
	for _, c := range categories {
		ids = append(ids, c.ID)
	}
	byCategory, err := s.repos.Tasks.PendingByCategory(ctx, ids)
	if err != nil {
		return nil, err
	}
	categoryStats := make([]CategoryStat, 0, len(byCategory))
	for _, c := range categories {
		if n := byCategory[c.ID]; n > 0 {
			categoryStats = append(categoryStats, CategoryStat{Category: c, TaskCount: n})
		}
	}

	return &Stats{
		TotalTasks:     total,
		CompletedTasks: completed,
		PendingTasks:   total - completed,
		CompletionRate: completionRate(completed, total),
		PriorityStats:  priorityStats,
		CategoryStats:  categoryStats,
	}, nil
}

// completionRate is completed/total as a percentage with one decimal, or 0.
func completionRate(completed, total int64) float64 {
	if total == 0 {
		return 0
	}
	return math.RoundToEven(float64(completed)/float64(total)*1000) / 10
}
