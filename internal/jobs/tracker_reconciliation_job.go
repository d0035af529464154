package jobs

import (
	"context"
	"log/slog"

	"pizzeria/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultReconcileSchedule runs the reconciliation every 30 seconds.
const DefaultReconcileSchedule = "*/30 * * * * *"

type trackerReconciler interface {
	Handle(ctx context.Context, cmd commands.ReconcileTrackerCommand) (int, error)
}

// TrackerReconciliationJob rebuilds the in-preparation tracker from the store on a
// cron schedule (seconds field included), dropping entries for orders that were served
// or lost elsewhere.
type TrackerReconciliationJob struct {
	handler  trackerReconciler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewTrackerReconciliationJob creates the job. An empty schedule means DefaultReconcileSchedule.
func NewTrackerReconciliationJob(handler trackerReconciler, schedule string, logger *slog.Logger) *TrackerReconciliationJob {
	if schedule == "" {
		schedule = DefaultReconcileSchedule
	}
	return &TrackerReconciliationJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "tracker_reconciliation_job"),
	}
}

// Run reconciles once.
func (j *TrackerReconciliationJob) Run(ctx context.Context) {
	tracked, err := j.handler.Handle(ctx, commands.NewReconcileTrackerCommand())
	if err != nil {
		j.logger.ErrorContext(ctx, "Tracker reconciliation failed", "error", err)
		return
	}
	j.logger.DebugContext(ctx, "Tracker reconciled", "tracked", tracked)
}

// Start reconciles immediately, rebuilding the tracker after a restart, then on schedule.
func (j *TrackerReconciliationJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	}); err != nil {
		return err
	}

	j.Run(context.Background())

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Tracker reconciliation job started", "schedule", j.schedule)
	return nil
}

// Stop stops scheduling and waits for a running reconciliation to finish.
func (j *TrackerReconciliationJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Tracker reconciliation job stopped")
}
