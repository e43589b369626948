package jobs

import (
	"context"
	"log/slog"

	"compras/internal/pkg/metrics"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// OrderStatsJob periodically refreshes the orders-per-state gauge so
// dashboards see workflow movement without polling the API.
type OrderStatsJob struct {
	db      *gorm.DB
	metrics *metrics.Metrics
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOrderStatsJob creates a job that refreshes order state gauges.
func NewOrderStatsJob(db *gorm.DB, m *metrics.Metrics, logger *slog.Logger) *OrderStatsJob {
	return &OrderStatsJob{
		db:      db,
		metrics: m,
		cron:    cron.New(),
		logger:  logger.With("component", "order_stats_job"),
	}
}

// Start schedules the gauge refresh every 30 seconds. The first refresh runs
// immediately so gauges are populated before the first tick.
func (j *OrderStatsJob) Start() error {
	_, err := j.cron.AddFunc("@every 30s", j.refresh)
	if err != nil {
		return err
	}

	j.refresh()
	j.cron.Start()
	j.logger.Info("order stats job started")
	return nil
}

// Stop stops the job.
func (j *OrderStatsJob) Stop() {
	j.cron.Stop()
	j.logger.Info("order stats job stopped")
}

type orderStateCount struct {
	Codigo string
	Total  int64
}

func (j *OrderStatsJob) refresh() {
	ctx := context.Background()

	var counts []orderStateCount
	err := j.db.WithContext(ctx).Raw(`
		SELECT es.codigo, COUNT(*) AS total
		FROM ordenes o
		JOIN estados es ON es.id = o.estado_actual_id
		GROUP BY es.codigo`).Scan(&counts).Error
	if err != nil {
		j.logger.ErrorContext(ctx, "order stats refresh failed", "error", err)
		return
	}

	j.metrics.OrdersInState.Reset()
	for _, count := range counts {
		j.metrics.OrdersInState.WithLabelValues(count.Codigo).Set(float64(count.Total))
	}
}
