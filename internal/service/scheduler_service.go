package service

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// SchedulerService runs background jobs on fixed intervals.
type SchedulerService struct {
	cron   *cron.Cron
	logger cron.Logger
}

func NewSchedulerService(loc *time.Location) *SchedulerService {
	return &SchedulerService{
		cron:   cron.New(cron.WithLocation(loc), cron.WithSeconds()),
		logger: cron.PrintfLogger(log.Default()),
	}
}

func (s *SchedulerService) Start() {
	s.cron.Start()
}

// Stop waits for running jobs to return.
func (s *SchedulerService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

// ScheduleInterval registers job to run every interval, rounded down to whole
// seconds. A run still in progress makes the next tick a no-op, and a panic
// in job is logged instead of killing the process.
func (s *SchedulerService) ScheduleInterval(name string, interval time.Duration, job func()) (cron.EntryID, error) {
	seconds := int(interval / time.Second)
	if seconds <= 0 {
		return 0, fmt.Errorf("schedule %s: interval must be at least one second, got %s", name, interval)
	}

	wrapped := cron.NewChain(
		cron.Recover(s.logger),
		cron.SkipIfStillRunning(s.logger),
	).Then(cron.FuncJob(job))

	id, err := s.cron.AddJob(fmt.Sprintf("@every %ds", seconds), wrapped)
	if err != nil {
		return 0, fmt.Errorf("schedule %s: %w", name, err)
	}
	log.Printf("[info] scheduled %s every %s", name, time.Duration(seconds)*time.Second)
	return id, nil
}

// Entries reports how many jobs are registered.
func (s *SchedulerService) Entries() int {
	return len(s.cron.Entries())
}
