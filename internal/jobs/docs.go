// Package jobs provides scheduled background tasks for the delivery system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the delivery service.
//
// # Available Jobs
//
// 1. PendingRebroadcastJob - Runs once a minute to re-offer orders stuck in
// pending to the couriers currently available in range
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(rebroadcastHandler, logger)
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
// The rebroadcast job uses the cron expression "0 * * * * *", firing at the
// top of every minute. An order stuck in pending is not an error, so the
// cadence only needs to beat courier patience, not real time.
//
// # Error Handling
//
// Rebroadcast failures are logged and swallowed; the next tick retries from
// scratch since the job reads all pending orders each run.
package jobs
