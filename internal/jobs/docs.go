// Package jobs provides scheduled background tasks for the order system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the pizzeria backend.
//
// # Available Jobs
//
// 1. TotalReconciliationJob - Runs every minute to recompute stored order
// totals from their line items and repair any drift.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(reconcileTotalsHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Reconciliation failures are logged and retried on the next tick; the job
// never takes the process down.
package jobs
