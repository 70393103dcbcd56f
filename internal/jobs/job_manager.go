package jobs

import (
	"fmt"
	"log/slog"

	"ordertrack/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	statusSnapshotJob *StatusSnapshotJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	getCurrentStatusesHandler queries.GetCurrentStatusesQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		statusSnapshotJob: NewStatusSnapshotJob(getCurrentStatusesHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.statusSnapshotJob.Start(); err != nil {
		return fmt.Errorf("failed to start status snapshot job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.statusSnapshotJob.Stop()
}
