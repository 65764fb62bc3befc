package tasks

import (
	"github.com/hibiken/asynq"
)

const TypeCatalogRefresh = "catalog:refresh"

// NewCatalogRefreshTask builds the periodic cache-warming task.
func NewCatalogRefreshTask() (*asynq.Task, []asynq.Option, error) {
	task := asynq.NewTask(TypeCatalogRefresh, nil)
	opts := []asynq.Option{asynq.MaxRetry(3)}
	return task, opts, nil
}
