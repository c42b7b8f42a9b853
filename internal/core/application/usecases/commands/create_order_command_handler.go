package commands

import (
	"context"
	"errors"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/product"
	"ordering/internal/core/domain/services"
	"ordering/internal/pkg/errs"

	log "github.com/sirupsen/logrus"
)

// Rejection reasons reported to OrderMetrics.
const (
	RejectCustomerNotFound  = "customer_not_found"
	RejectNoProductsFound   = "no_products_found"
	RejectProductsNotFound  = "products_not_found"
	RejectInsufficientStock = "insufficient_stock"
	RejectStockConflict     = "stock_conflict"
)

// OrderMetrics receives the outcome of every order placement attempt.
type OrderMetrics interface {
	OrderPlaced(placed *order.Order)
	OrderRejected(reason string)
}

type nopOrderMetrics struct{}

func (nopOrderMetrics) OrderPlaced(*order.Order) {}
func (nopOrderMetrics) OrderRejected(string)     {}

// CreateOrderCommandHandler places orders.
//
// The customer lookup, the product reads, the order write and the stock
// writes all run in one unit of work: either the order exists and stock was
// decremented, or neither happened. Product rows are locked by FindAllByID
// for the rest of the transaction, so two orders for the same product are
// serialized instead of both passing the stock check.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	placer     services.OrderPlacer
	metrics    OrderMetrics
	logger     *log.Entry
}

// NewCreateOrderCommandHandler creates the handler. metrics and logger may be nil.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	metrics OrderMetrics,
	logger *log.Entry,
) CreateOrderCommandHandler {
	if metrics == nil {
		metrics = nopOrderMetrics{}
	}
	if logger == nil {
		logger = log.NewEntry(log.StandardLogger())
	}

	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		placer:     services.NewOrderPlacer(),
		metrics:    metrics,
		logger:     logger.WithField("handler", "create_order"),
	}
}

// Handle validates the request against current data and, if everything
// checks out, persists the order and the decremented stock.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	logger := h.logger.WithFields(log.Fields{
		"order_id":    cmd.OrderID().String(),
		"customer_id": cmd.CustomerID().String(),
	})

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	buyer, err := uow.CustomerRepository().Get(ctx, cmd.CustomerID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, h.reject(logger, ErrCustomerNotFound)
		}
		return nil, err
	}

	productRepo := uow.ProductRepository()
	found, err := productRepo.FindAllByID(ctx, cmd.ProductIDs())
	if err != nil {
		return nil, err
	}

	placed, touched, err := h.placer.Place(cmd.OrderID(), buyer, cmd.Items(), found)
	if err != nil {
		if errors.Is(err, errs.ErrBusinessRule) {
			return nil, h.reject(logger, err)
		}
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, placed); err != nil {
		return nil, err
	}

	updates := make([]product.QuantityUpdate, len(touched))
	for i, p := range touched {
		updates[i] = p.QuantityUpdate()
	}

	if _, err = productRepo.UpdateQuantity(ctx, updates); err != nil {
		if errors.Is(err, errs.ErrVersionIsInvalid) {
			h.metrics.OrderRejected(RejectStockConflict)
			logger.WithError(err).Warn("stock changed concurrently, order rolled back")
		}
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.metrics.OrderPlaced(placed)
	logger.WithFields(log.Fields{
		"lines": len(placed.Lines()),
		"total": placed.Total().String(),
	}).Info("order placed")

	return placed, nil
}

func (h *CreateOrderCommandHandler) reject(logger *log.Entry, err error) error {
	reason := rejectionReason(err)
	h.metrics.OrderRejected(reason)
	logger.WithField("reason", reason).WithError(err).Info("order rejected")
	return err
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, ErrCustomerNotFound):
		return RejectCustomerNotFound
	case errors.Is(err, services.ErrNoProductsFound):
		return RejectNoProductsFound
	case errors.Is(err, services.ErrProductsNotFound):
		return RejectProductsNotFound
	case errors.Is(err, services.ErrInsufficientStock):
		return RejectInsufficientStock
	default:
		return "other"
	}
}
