// Package jobs provides scheduled background tasks for the fulfillment system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for order fulfillment.
//
// # Available Jobs
//
// 1. LowStockReportJob - Runs every minute to report products whose stock has
// fallen below the configured threshold
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(lowStockHandler, threshold, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The low stock report runs at the top of every minute. Stock only moves when
// orders ship, so a minute of staleness is acceptable for a restocking signal.
//
// # Error Handling
//
// - The report job logs query failures and keeps its schedule
// - Failed job starts leave the manager in a stopped state
package jobs
