package services

import (
	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/product"
)

// RequestedItem is one (product, quantity) pair of an order request.
type RequestedItem struct {
	ProductID kernel.UUID
	Quantity  int
}

type OrderPlacer struct{}

func NewOrderPlacer() OrderPlacer {
	return OrderPlacer{}
}

// Place turns a request into an order. found is whatever the product store
// returned for the requested ids, in any order and possibly incomplete.
//
// Checks run in a fixed order and the first failing one wins: nothing found,
// unknown ids, insufficient stock. Only when all pass are prices snapshotted
// and stock withdrawn. The returned products carry the decremented quantities
// in request order.
func (s OrderPlacer) Place(
	orderID kernel.UUID,
	buyer *customer.Customer,
	items []RequestedItem,
	found []*product.Product,
) (*order.Order, []*product.Product, error) {
	if err := buyer.Validate(); err != nil {
		return nil, nil, err
	}

	requestedIDs := make([]kernel.UUID, len(items))
	for i, item := range items {
		requestedIDs[i] = item.ProductID
	}

	if len(found) == 0 {
		return nil, nil, &ProductsNotFoundError{IDs: requestedIDs, noneFound: true}
	}

	byID := make(map[kernel.UUID]*product.Product, len(found))
	for _, p := range found {
		if err := p.Validate(); err != nil {
			return nil, nil, err
		}
		byID[p.ID()] = p
	}

	var missing []kernel.UUID
	for _, id := range requestedIDs {
		if _, ok := byID[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		return nil, nil, &ProductsNotFoundError{IDs: missing}
	}

	var overdrawn []kernel.UUID
	for _, item := range items {
		if !byID[item.ProductID].HasStock(item.Quantity) {
			overdrawn = append(overdrawn, item.ProductID)
		}
	}
	if len(overdrawn) > 0 {
		return nil, nil, &InsufficientStockError{IDs: overdrawn}
	}

	lines := make([]*order.Line, 0, len(items))
	for _, item := range items {
		line, err := order.NewLine(kernel.NewUUID(), item.ProductID, item.Quantity, byID[item.ProductID].Price())
		if err != nil {
			return nil, nil, err
		}
		lines = append(lines, line)
	}

	placed, err := order.NewOrder(orderID, buyer.ID(), lines)
	if err != nil {
		return nil, nil, err
	}

	touched := make([]*product.Product, 0, len(items))
	for _, item := range items {
		p := byID[item.ProductID]
		if err = p.Withdraw(item.Quantity); err != nil {
			return nil, nil, err
		}
		touched = append(touched, p)
	}

	return placed, touched, nil
}
