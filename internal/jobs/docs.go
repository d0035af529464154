// Package jobs provides scheduled background tasks for the pizzeria.
//
// Jobs are cron-based, using github.com/robfig/cron/v3 with the seconds field enabled.
//
// # Available Jobs
//
// TrackerReconciliationJob - rebuilds the in-memory in-preparation tracker from the
// ongoing orders in the store. It runs once on start, so a restarted process knows what
// every staff member is preparing, then on its schedule (DefaultReconcileSchedule unless
// RECONCILE_SCHEDULE is set).
//
// # Usage
//
//	jobManager := jobs.NewJobManager(reconcileHandler, config.ReconcileSchedule, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed run is logged and retried on the next tick. An invalid schedule makes
// StartAll fail.
package jobs
