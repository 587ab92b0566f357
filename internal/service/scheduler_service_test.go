package service

import (
	"testing"
	"time"
)

func TestScheduleIntervalRejectsNonPositive(t *testing.T) {
	s := NewSchedulerService(time.UTC)
	if _, err := s.ScheduleInterval("noop", 0, func() {}); err == nil {
		t.Error("expected error for zero interval")
	}
	if _, err := s.ScheduleInterval("noop", 500*time.Millisecond, func() {}); err == nil {
		t.Error("expected error for sub-second interval")
	}
	if s.Entries() != 0 {
		t.Errorf("entries = %d", s.Entries())
	}
}

func TestScheduleIntervalRuns(t *testing.T) {
	s := NewSchedulerService(time.UTC)
	ran := make(chan struct{}, 1)
	if _, err := s.ScheduleInterval("tick", time.Second, func() {
		select {
		case ran <- struct{}{}:
		default:
		}
	}); err != nil {
		t.Fatal(err)
	}
	if s.Entries() != 1 {
		t.Fatalf("entries = %d", s.Entries())
	}

	s.Start()
	defer s.Stop()

	select {
	case <-ran:
	case <-time.After(5 * time.Second):
		t.Fatal("job did not run")
	}
}

func TestScheduleIntervalRecoversPanics(t *testing.T) {
	s := NewSchedulerService(time.UTC)
	runs := make(chan struct{}, 4)
	if _, err := s.ScheduleInterval("flaky", time.Second, func() {
		select {
		case runs <- struct{}{}:
		default:
		}
		panic("boom")
	}); err != nil {
		t.Fatal(err)
	}

	s.Start()
	defer s.Stop()

	for i := 0; i < 2; i++ {
		select {
		case <-runs:
		case <-time.After(5 * time.Second):
			t.Fatalf("run %d did not happen", i+1)
		}
	}
}
