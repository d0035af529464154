package jobs_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingReconciler struct {
	calls atomic.Int32
	err   error
}

func (r *countingReconciler) Handle(_ context.Context, cmd commands.ReconcileTrackerCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}
	r.calls.Add(1)
	return 0, r.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestTrackerReconciliationJob_RunsOnStartAndOnSchedule(t *testing.T) {
	reconciler := &countingReconciler{}
	job := jobs.NewTrackerReconciliationJob(reconciler, "* * * * * *", discardLogger())

	require.NoError(t, job.Start())
	defer job.Stop()

	assert.GreaterOrEqual(t, reconciler.calls.Load(), int32(1), "should reconcile immediately on start")
	assert.Eventually(t, func() bool {
		return reconciler.calls.Load() >= 2
	}, 3*time.Second, 50*time.Millisecond)
}

func TestTrackerReconciliationJob_InvalidSchedule(t *testing.T) {
	reconciler := &countingReconciler{}
	job := jobs.NewTrackerReconciliationJob(reconciler, "not a schedule", discardLogger())

	require.Error(t, job.Start())
	assert.Equal(t, int32(0), reconciler.calls.Load())
}

func TestTrackerReconciliationJob_RunSurvivesErrors(t *testing.T) {
	reconciler := &countingReconciler{err: errors.New("store unavailable")}
	job := jobs.NewTrackerReconciliationJob(reconciler, "", discardLogger())

	job.Run(t.Context())
	job.Run(t.Context())

	assert.Equal(t, int32(2), reconciler.calls.Load())
}

func TestJobManager_StartAll(t *testing.T) {
	t.Run("starts and stops", func(t *testing.T) {
		reconciler := &countingReconciler{}
		manager := jobs.NewJobManager(reconciler, jobs.DefaultReconcileSchedule, discardLogger())

		require.NoError(t, manager.StartAll())
		manager.StopAll()

		assert.GreaterOrEqual(t, reconciler.calls.Load(), int32(1))
	})

	t.Run("reports invalid schedule", func(t *testing.T) {
		manager := jobs.NewJobManager(&countingReconciler{}, "every now and then", discardLogger())

		err := manager.StartAll()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "tracker reconciliation job")
	})
}
