// Package ports defines the persistence contracts the use cases depend on.
// Adapters under internal/adapters/out implement them.
package ports

import (
	"context"

	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/domain/model/kernel"
)

// CustomerRepository stores customer aggregates.
type CustomerRepository interface {
	// Add persists a new customer. A second customer with the same email fails.
	Add(ctx context.Context, aggregate *customer.Customer) error

	// Get returns the customer or an errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)

	// FindByEmail returns the customer or an errs.ObjectNotFoundError.
	FindByEmail(ctx context.Context, email string) (*customer.Customer, error)
}
