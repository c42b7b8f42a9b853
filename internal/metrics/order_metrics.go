// Package metrics exposes business metrics of the ordering service to Prometheus.
package metrics

import (
	"fmt"

	"ordering/internal/core/domain/model/order"

	"github.com/prometheus/client_golang/prometheus"
)

// OrderMetrics counts order placement outcomes and tracks stock health.
type OrderMetrics struct {
	ordersPlaced   prometheus.Counter
	ordersRejected *prometheus.CounterVec
	lineItems      prometheus.Counter
	unitsSold      prometheus.Counter
	orderValue     prometheus.Histogram

	lowStockProducts prometheus.Gauge
}

// NewOrderMetrics registers the collectors with the default registerer.
func NewOrderMetrics() *OrderMetrics {
	return NewOrderMetricsWithRegisterer(prometheus.DefaultRegisterer)
}

// NewOrderMetricsWithRegisterer registers the collectors with registerer.
// Registering twice with the same registerer reuses the existing collectors.
func NewOrderMetricsWithRegisterer(registerer prometheus.Registerer) *OrderMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &OrderMetrics{
		ordersPlaced: registerCounter(registerer, prometheus.CounterOpts{
			Name: "ordering_orders_placed_total",
			Help: "Total number of orders placed",
		}),
		ordersRejected: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "ordering_orders_rejected_total",
			Help: "Total number of order requests rejected, by reason",
		}, []string{"reason"}),
		lineItems: registerCounter(registerer, prometheus.CounterOpts{
			Name: "ordering_order_lines_total",
			Help: "Total number of order lines placed",
		}),
		unitsSold: registerCounter(registerer, prometheus.CounterOpts{
			Name: "ordering_units_sold_total",
			Help: "Total number of product units withdrawn from stock by orders",
		}),
		orderValue: registerHistogram(registerer, prometheus.HistogramOpts{
			Name:    "ordering_order_value",
			Help:    "Order totals in catalog currency",
			Buckets: []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
		}),
		lowStockProducts: registerGauge(registerer, prometheus.GaugeOpts{
			Name: "ordering_low_stock_products",
			Help: "Number of products at or below the low stock threshold at the last scan",
		}),
	}
}

// OrderPlaced records a committed order.
func (m *OrderMetrics) OrderPlaced(placed *order.Order) {
	m.ordersPlaced.Inc()

	lines := placed.Lines()
	m.lineItems.Add(float64(len(lines)))
	for _, line := range lines {
		m.unitsSold.Add(float64(line.Quantity()))
	}

	total, _ := placed.Total().Decimal().Float64()
	m.orderValue.Observe(total)
}

// OrderRejected records a request that was turned down.
func (m *OrderMetrics) OrderRejected(reason string) {
	m.ordersRejected.WithLabelValues(reason).Inc()
}

// SetLowStockProducts publishes the result of the latest stock scan.
func (m *OrderMetrics) SetLowStockProducts(count int) {
	m.lowStockProducts.Set(float64(count))
}

func registerCounter(registerer prometheus.Registerer, opts prometheus.CounterOpts) prometheus.Counter {
	collector := prometheus.NewCounter(opts)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(prometheus.Counter)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter %q: %v", opts.Name, err))
	}
	return collector
}

func registerCounterVec(
	registerer prometheus.Registerer,
	opts prometheus.CounterOpts,
	labels []string,
) *prometheus.CounterVec {
	collector := prometheus.NewCounterVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.CounterVec)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter vec %q: %v", opts.Name, err))
	}
	return collector
}

func registerGauge(registerer prometheus.Registerer, opts prometheus.GaugeOpts) prometheus.Gauge {
	collector := prometheus.NewGauge(opts)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(prometheus.Gauge)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register gauge %q: %v", opts.Name, err))
	}
	return collector
}

func registerHistogram(registerer prometheus.Registerer, opts prometheus.HistogramOpts) prometheus.Histogram {
	collector := prometheus.NewHistogram(opts)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(prometheus.Histogram)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register histogram %q: %v", opts.Name, err))
	}
	return collector
}
