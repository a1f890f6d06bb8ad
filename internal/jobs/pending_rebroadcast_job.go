package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"dispatch/internal/core/application/usecases/commands"
)

// PendingRebroadcastJob periodically re-offers orders stuck in pending.
// Couriers come and go; an order nobody accepted at assignment time may find
// a taker on a later pass.
type PendingRebroadcastJob struct {
	handler commands.RebroadcastPendingOrdersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewPendingRebroadcastJob creates a job that re-runs match and notify for
// every pending order once a minute.
func NewPendingRebroadcastJob(
	handler commands.RebroadcastPendingOrdersCommandHandler, logger *slog.Logger,
) *PendingRebroadcastJob {
	return &PendingRebroadcastJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "pending_rebroadcast_job"),
	}
}

// Start schedules the job at the top of every minute.
func (j *PendingRebroadcastJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewRebroadcastPendingOrdersCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Pending rebroadcast job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pending rebroadcast job started (running every minute)")
	return nil
}

// Stop stops the job.
func (j *PendingRebroadcastJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Pending rebroadcast job stopped")
}
