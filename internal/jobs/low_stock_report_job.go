package jobs

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// LowStockReportJob periodically reports products whose stock has fallen
// below the configured threshold so operators can restock before orders
// start failing at shipment.
type LowStockReportJob struct {
	handler   queries.GetLowStockProductsQueryHandler
	threshold int
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewLowStockReportJob creates a new job that scans for low stock products.
func NewLowStockReportJob(handler queries.GetLowStockProductsQueryHandler, threshold int, logger *slog.Logger) *LowStockReportJob {
	return &LowStockReportJob{
		handler:   handler,
		threshold: threshold,
		cron:      cron.New(),
		logger:    logger.With("component", "low_stock_report_job"),
	}
}

// Start begins the low stock scan, running at the top of every minute.
func (j *LowStockReportJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		query, err := queries.NewGetLowStockProductsQuery(j.threshold)
		if err != nil {
			j.logger.ErrorContext(ctx, "Low stock report job misconfigured", "error", err)
			return
		}

		products, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Low stock report job failed", "error", err)
			return
		}

		for _, p := range products {
			j.logger.WarnContext(ctx, "Product is running low on stock",
				"product_id", p.ID.String(),
				"name", p.Name,
				"stock", p.Stock,
				"threshold", j.threshold,
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Low stock report job started (running every minute)")
	return nil
}

// Stop stops the low stock report job.
func (j *LowStockReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Low stock report job stopped")
}
