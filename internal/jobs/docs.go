// Package jobs provides scheduled background tasks for the order tracker.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. StatusSnapshotJob - Runs every minute to log the distribution of
// current order statuses, giving operators a coarse view of the pipeline
// without a metrics stack.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(getCurrentStatusesHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Snapshot failures are logged and the next tick retries; a failed job
// start stops any already running jobs.
package jobs
