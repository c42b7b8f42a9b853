package jobs

import (
	"context"
	"time"

	"ordering/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
)

// DefaultStockMonitorSchedule runs the scan at the start of every minute.
const DefaultStockMonitorSchedule = "0 * * * * *"

// LowStockFinder is satisfied by queries.GetLowStockProductsQueryHandler.
type LowStockFinder interface {
	Handle(ctx context.Context, query queries.GetLowStockProductsQuery) ([]queries.ProductQueryResponse, error)
}

// LowStockGauge is satisfied by metrics.OrderMetrics.
type LowStockGauge interface {
	SetLowStockProducts(count int)
}

// StockMonitorJob periodically reports products that are running out.
type StockMonitorJob struct {
	finder   LowStockFinder
	gauge    LowStockGauge
	query    queries.GetLowStockProductsQuery
	schedule string
	timeout  time.Duration
	cron     *cron.Cron
	logger   *log.Entry
}

// NewStockMonitorJob creates the job. An empty schedule means
// DefaultStockMonitorSchedule. gauge may be nil.
func NewStockMonitorJob(
	finder LowStockFinder,
	gauge LowStockGauge,
	threshold int,
	schedule string,
	logger *log.Entry,
) (*StockMonitorJob, error) {
	query, err := queries.NewGetLowStockProductsQuery(threshold)
	if err != nil {
		return nil, err
	}
	if schedule == "" {
		schedule = DefaultStockMonitorSchedule
	}
	if logger == nil {
		logger = log.NewEntry(log.StandardLogger())
	}

	return &StockMonitorJob{
		finder:   finder,
		gauge:    gauge,
		query:    query,
		schedule: schedule,
		timeout:  30 * time.Second,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.WithField("component", "stock_monitor_job"),
	}, nil
}

// Start schedules the scan. An invalid schedule is reported here.
func (j *StockMonitorJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
		defer cancel()

		if _, runErr := j.RunOnce(ctx); runErr != nil {
			j.logger.WithError(runErr).Error("Stock monitor run failed")
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.WithFields(log.Fields{
		"schedule":  j.schedule,
		"threshold": j.query.Threshold(),
	}).Info("Stock monitor job started")
	return nil
}

// Stop stops scheduling and waits for a running scan to finish.
func (j *StockMonitorJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Stock monitor job stopped")
}

// RunOnce performs a single scan and returns the low stock products.
func (j *StockMonitorJob) RunOnce(ctx context.Context) ([]queries.ProductQueryResponse, error) {
	low, err := j.finder.Handle(ctx, j.query)
	if err != nil {
		return nil, err
	}

	if j.gauge != nil {
		j.gauge.SetLowStockProducts(len(low))
	}

	for _, p := range low {
		entry := j.logger.WithFields(log.Fields{
			"product_id": p.ID.String(),
			"name":       p.Name,
			"quantity":   p.Quantity,
		})
		if p.Quantity == 0 {
			entry.Warn("Product is sold out")
			continue
		}
		entry.Info("Product stock is low")
	}

	return low, nil
}
