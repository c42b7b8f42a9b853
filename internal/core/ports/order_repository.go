package ports

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
)

// OrderRepository stores order aggregates together with their lines.
type OrderRepository interface {
	// Add persists the order and all of its lines as one write.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get returns the order with its lines or an errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
