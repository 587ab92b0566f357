package service

import (
	"context"
	"log"
	"sort"
	"strconv"
	"time"

	"taskflow/internal/metrics"
	"taskflow/internal/model"
	"taskflow/internal/repository"
)

// DefaultReminderWindow is how far ahead Due looks when no window is given.
const DefaultReminderWindow = 5 * time.Minute

// ReminderService answers which reminders are due. It never marks tasks as
// notified; the client acknowledges a reminder through a task update.
type ReminderService struct {
	repos *repository.Repositories
	now   func() time.Time

	reported map[uint]struct{}
}

func NewReminderService(repos *repository.Repositories) *ReminderService {
	return &ReminderService{
		repos:    repos,
		now:      func() time.Time { return time.Now().UTC() },
		reported: make(map[uint]struct{}),
	}
}

// Due lists the pending reminders of a user that fire within window from now.
func (s *ReminderService) Due(ctx context.Context, userID uint, window time.Duration) ([]model.Task, error) {
	if window <= 0 {
		window = DefaultReminderWindow
	}
	now := s.now()
	return s.repos.Tasks.ListPendingReminders(ctx, userID, now, now.Add(window))
}

// Scan counts, per user, reminders that already passed without being
// acknowledged, logs them and publishes them as a gauge.
func (s *ReminderService) Scan(ctx context.Context) (map[uint]int64, error) {
	counts, err := s.repos.Tasks.CountOverdueRemindersByUser(ctx, s.now())
	if err != nil {
		return nil, err
	}

	users := make([]uint, 0, len(counts))
	for userID := range counts {
		users = append(users, userID)
	}
	sort.Slice(users, func(i, j int) bool { return users[i] < users[j] })

	for _, userID := range users {
		log.Printf("[info] user %d has %d overdue reminder(s)", userID, counts[userID])
		metrics.OverdueReminders.WithLabelValues(strconv.FormatUint(uint64(userID), 10)).Set(float64(counts[userID]))
	}
	// Users that were reported before but have nothing overdue now drop to zero.
	for userID := range s.reported {
		if _, ok := counts[userID]; !ok {
			metrics.OverdueReminders.WithLabelValues(strconv.FormatUint(uint64(userID), 10)).Set(0)
		}
	}
	s.reported = make(map[uint]struct{}, len(users))
	for _, userID := range users {
		s.reported[userID] = struct{}{}
	}

	return counts, nil
}
