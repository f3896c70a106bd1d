package jobs

import (
	"context"
	"log/slog"

	"pizzaria/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// TotalReconciliationJob periodically recomputes the totals of open orders
// from their line items. Stored totals can drift from the items when rows
// are touched outside the aggregate; the job repairs that drift.
type TotalReconciliationJob struct {
	handler commands.ReconcileOrderTotalsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewTotalReconciliationJob creates a job that reconciles order totals every minute.
func NewTotalReconciliationJob(
	handler commands.ReconcileOrderTotalsCommandHandler,
	logger *slog.Logger,
) *TotalReconciliationJob {
	return &TotalReconciliationJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "total_reconciliation_job"),
	}
}

// Start begins the reconciliation job to run every minute.
func (j *TotalReconciliationJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewReconcileOrderTotalsCommand()
		if err != nil {
			j.logger.ErrorContext(ctx, "Total reconciliation command creation failed", "error", err)
			return
		}

		reconciled, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Total reconciliation job failed", "error", err)
			return
		}

		if reconciled > 0 {
			j.logger.InfoContext(ctx, "Reconciled drifted order totals", "orders", reconciled)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Total reconciliation job started (running every minute)")
	return nil
}

// Stop stops the reconciliation job.
func (j *TotalReconciliationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Total reconciliation job stopped")
}
