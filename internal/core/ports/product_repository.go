package ports

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/product"
)

// ProductRepository is the product store. It holds no business rules.
type ProductRepository interface {
	// Add persists a new product. A second product with the same name fails.
	Add(ctx context.Context, aggregate *product.Product) error

	// FindByName returns the product or an errs.ObjectNotFoundError.
	FindByName(ctx context.Context, name string) (*product.Product, error)

	// FindAllByID resolves the whole id set before returning and yields the
	// subset that exists, ordered by id. Absent ids are not an error, so the
	// result may be shorter than ids. Inside a transaction the rows stay locked
	// until commit or rollback.
	FindAllByID(ctx context.Context, ids []kernel.UUID) ([]*product.Product, error)

	// UpdateQuantity writes every update before returning and yields the
	// updated products in input order. An update whose Version no longer
	// matches the stored row fails with errs.VersionIsInvalidError.
	UpdateQuantity(ctx context.Context, updates []product.QuantityUpdate) ([]*product.Product, error)
}
