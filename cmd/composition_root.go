package cmd

import (
	httpin "ordering/internal/adapters/in/http"
	"ordering/internal/adapters/out/postgres"
	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/jobs"
	"ordering/internal/metrics"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	metrics    *metrics.OrderMetrics
	logger     *log.Entry
}

// NewCompositionRoot wires the application. registerer receives the business
// metrics; nil means the prometheus default registerer.
func NewCompositionRoot(config Config, gormDB *gorm.DB, registerer prometheus.Registerer, logger *log.Entry) CompositionRoot {
	if logger == nil {
		logger = log.NewEntry(log.StandardLogger())
	}
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		metrics:    metrics.NewOrderMetricsWithRegisterer(registerer),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateCustomerCommandHandler() commands.CreateCustomerCommandHandler {
	var f commands.CustomerUoWFactory = FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.CreateGorm()
	})
	return commands.NewCreateCustomerCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.CreateGorm()
	})
	return commands.NewCreateProductCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.CreateGorm()
	})
	return commands.NewCreateOrderCommandHandler(f, c.metrics, c.logger)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListProductsQueryHandler() queries.ListProductsQueryHandler {
	return queries.NewListProductsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetLowStockProductsQueryHandler() queries.GetLowStockProductsQueryHandler {
	return queries.NewGetLowStockProductsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	createCustomer := c.CreateCreateCustomerCommandHandler()
	createProduct := c.CreateCreateProductCommandHandler()
	createOrder := c.CreateCreateOrderCommandHandler()

	return httpin.NewServer(
		&createCustomer,
		&createProduct,
		&createOrder,
		c.CreateGetOrderQueryHandler(),
		c.CreateListProductsQueryHandler(),
		c.logger,
	)
}

func (c *CompositionRoot) CreateStockMonitorJob() (*jobs.StockMonitorJob, error) {
	return jobs.NewStockMonitorJob(
		c.CreateGetLowStockProductsQueryHandler(),
		c.metrics,
		c.config.LowStockThreshold,
		c.config.LowStockSchedule,
		c.logger,
	)
}

func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	stockMonitor, err := c.CreateStockMonitorJob()
	if err != nil {
		return nil, err
	}
	return jobs.NewJobManager(stockMonitor), nil
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
