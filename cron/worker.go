package cron

import (
	"context"
	"fmt"
	"log"
	"time"

	"medagenda/config"
	"medagenda/services/catalog"
	"medagenda/services/tasks"

	"github.com/hibiken/asynq"
)

// InitCatalogWorker runs the async worker and its scheduler in background.
// The worker keeps the specialty and country caches warm so the wizard's
// dropdowns never pay a platform round-trip on the hot path.
func InitCatalogWorker(catalogSvc catalog.Service) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 2,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeCatalogRefresh, handleCatalogRefresh(catalogSvc))

	go func() {
		log.Println("[CatalogWorker] Starting async worker...")
		if err := srv.Run(mux); err != nil {
			log.Printf("[CatalogWorker] Worker stopped: %v", err)
		}
	}()

	scheduler := asynq.NewScheduler(redisOpts, &asynq.SchedulerOpts{})
	task, opts, err := tasks.NewCatalogRefreshTask()
	if err != nil {
		log.Printf("[CatalogWorker] Failed to build refresh task: %v", err)
		return
	}
	spec := fmt.Sprintf("@every %dh", config.AppConfig.CatalogRefreshHours)
	if _, err := scheduler.Register(spec, task, opts...); err != nil {
		log.Printf("[CatalogWorker] Failed to register refresh schedule: %v", err)
		return
	}
	go func() {
		if err := scheduler.Run(); err != nil {
			log.Printf("[CatalogWorker] Scheduler stopped: %v", err)
		}
	}()
}

func handleCatalogRefresh(catalogSvc catalog.Service) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		refreshCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		defer cancel()
		if err := catalogSvc.Refresh(refreshCtx); err != nil {
			log.Printf("[CatalogWorker] Refresh failed: %v", err)
			return err
		}
		return nil
	}
}
