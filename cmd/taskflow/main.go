package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"taskflow/internal/config"
	"taskflow/internal/handlers"
	"taskflow/internal/repository"
	"taskflow/internal/router"
	"taskflow/internal/service"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	db, err := repository.NewDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer repository.Close(db)

	repos := repository.New(db)
	if err := service.Seed(ctx, repos, cfg.DefaultPassword); err != nil {
		log.Fatalf("seed: %v", err)
	}

	reminderSvc := service.NewReminderService(repos)
	h := handlers.New(handlers.Services{
		Tasks:      service.NewTaskService(repos),
		Categories: service.NewCategoryService(repos),
		Users:      service.NewUserService(repos),
		Settings:   service.NewSettingsService(repos),
		Stats:      service.NewStatsService(repos),
		Reminders:  reminderSvc,
		Ping:       repos.Ping,
	})

	scheduler := service.NewSchedulerService(time.UTC)
	if interval := cfg.ReminderScanInterval(); interval > 0 {
		if _, err := scheduler.ScheduleInterval("reminder scan", interval, func() {
			jobCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if _, err := reminderSvc.Scan(jobCtx); err != nil && !errors.Is(err, context.Canceled) {
				log.Printf("reminder scan: %v", err)
			}
		}); err != nil {
			log.Fatalf("scheduler: %v", err)
		}
		scheduler.Start()
		defer scheduler.Stop()
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router.NewRouter(h, cfg),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("[info] TaskFlow listening on %s", cfg.HTTPAddr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http server: %v", err)
		}
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
	log.Println("Shutdown complete.")
}
