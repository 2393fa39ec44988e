package jobs

import (
	"context"
	"log/slog"
	"time"

	"tableorders/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// OrdersCreatedSinceQueryHandler is the read path the summary job reports on.
type OrdersCreatedSinceQueryHandler interface {
	Handle(ctx context.Context, query queries.GetOrdersCreatedSinceQuery) ([]queries.OrderResponse, error)
}

// DailySummaryJob logs an end-of-day summary of the orders placed since local
// midnight, broken down by status. Read-only; it never mutates orders.
type DailySummaryJob struct {
	handler OrdersCreatedSinceQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
	now     func() time.Time
}

// NewDailySummaryJob creates the end-of-day order summary job.
func NewDailySummaryJob(handler OrdersCreatedSinceQueryHandler, logger *slog.Logger) *DailySummaryJob {
	return &DailySummaryJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "daily_summary_job"),
		now:     time.Now,
	}
}

// Start schedules the job for 23:59 local time every day.
func (j *DailySummaryJob) Start() error {
	_, err := j.cron.AddFunc("0 59 23 * * *", func() {
		j.run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Daily summary job started (running at 23:59 local time)")
	return nil
}

// Stop stops the daily summary job.
func (j *DailySummaryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Daily summary job stopped")
}

func (j *DailySummaryJob) run(ctx context.Context) {
	query, err := queries.NewGetOrdersCreatedSinceQuery(queries.StartOfToday(j.now()))
	if err != nil {
		j.logger.ErrorContext(ctx, "Daily summary job failed to build query", "error", err)
		return
	}

	orders, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Daily summary job failed", "error", err)
		return
	}

	byStatus := make(map[string]int)
	for _, o := range orders {
		byStatus[o.Status.String()]++
	}

	j.logger.InfoContext(ctx, "Daily order summary",
		"total", len(orders),
		"by_status", byStatus,
	)
}
