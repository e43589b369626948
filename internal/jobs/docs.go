// Package jobs provides scheduled background tasks for the storefront.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations around order workflow observability.
//
// # Available Jobs
//
// 1. OrderStatsJob - Runs every 30 seconds to refresh the orders-per-state gauge
// 2. CacheSweepJob - Runs every minute to evict expired operators cache entries
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(db, metrics, operatorsCache, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
package jobs
