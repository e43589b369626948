package jobs

import (
	"log/slog"

	"compras/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// CacheSweepJob periodically evicts expired entries from the operators
// cache. Without it, entries past their TTL linger until the next Get for
// their exact key.
type CacheSweepJob struct {
	cache  *queries.OperatorsCache
	cron   *cron.Cron
	logger *slog.Logger
}

// NewCacheSweepJob creates a job that sweeps the operators cache.
func NewCacheSweepJob(cache *queries.OperatorsCache, logger *slog.Logger) *CacheSweepJob {
	return &CacheSweepJob{
		cache:  cache,
		cron:   cron.New(),
		logger: logger.With("component", "cache_sweep_job"),
	}
}

// Start schedules the sweep every minute.
func (j *CacheSweepJob) Start() error {
	_, err := j.cron.AddFunc("@every 1m", func() {
		if evicted := j.cache.Sweep(); evicted > 0 {
			j.logger.Debug("cache sweep evicted entries", "count", evicted)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("cache sweep job started")
	return nil
}

// Stop stops the job.
func (j *CacheSweepJob) Stop() {
	j.cron.Stop()
	j.logger.Info("cache sweep job stopped")
}
