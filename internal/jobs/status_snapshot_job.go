package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"ordertrack/internal/core/application/usecases/queries"
)

// StatusSnapshotJob periodically logs how many orders sit in each current
// status. Runs once a minute.
type StatusSnapshotJob struct {
	handler queries.GetCurrentStatusesQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewStatusSnapshotJob creates a job that logs the current-status
// distribution.
func NewStatusSnapshotJob(handler queries.GetCurrentStatusesQueryHandler, logger *slog.Logger) *StatusSnapshotJob {
	return &StatusSnapshotJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "status_snapshot_job"),
	}
}

// Start begins the snapshot job to run once a minute.
func (j *StatusSnapshotJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		query, err := queries.NewGetCurrentStatusesQuery(nil)
		if err != nil {
			j.logger.ErrorContext(ctx, "Status snapshot query construction failed", "error", err)
			return
		}

		statuses, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Status snapshot job failed", "error", err)
			return
		}

		distribution := make(map[string]int)
		for _, cs := range statuses {
			distribution[cs.Status.String()]++
		}
		j.logger.InfoContext(ctx, "Current status distribution",
			"orders", len(statuses),
			"distribution", distribution,
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Status snapshot job started (running every minute)")
	return nil
}

// Stop stops the snapshot job.
func (j *StatusSnapshotJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Status snapshot job stopped")
}
