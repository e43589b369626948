package jobs

import (
	"fmt"
	"log/slog"

	"compras/internal/core/application/usecases/queries"
	"compras/internal/pkg/metrics"

	"gorm.io/gorm"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	orderStatsJob *OrderStatsJob
	cacheSweepJob *CacheSweepJob
}

// NewJobManager creates a job manager over the shared connection, metrics
// and the operators cache.
func NewJobManager(db *gorm.DB, m *metrics.Metrics, cache *queries.OperatorsCache, logger *slog.Logger) *JobManager {
	return &JobManager{
		orderStatsJob: NewOrderStatsJob(db, m, logger),
		cacheSweepJob: NewCacheSweepJob(cache, logger),
	}
}

// StartAll starts all scheduled jobs. A job that fails to start stops the
// ones already running.
func (jm *JobManager) StartAll() error {
	if err := jm.orderStatsJob.Start(); err != nil {
		return fmt.Errorf("starting order stats job: %w", err)
	}

	if err := jm.cacheSweepJob.Start(); err != nil {
		jm.orderStatsJob.Stop()
		return fmt.Errorf("starting cache sweep job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs.
func (jm *JobManager) StopAll() {
	jm.orderStatsJob.Stop()
	jm.cacheSweepJob.Stop()
}
