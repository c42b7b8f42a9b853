package queries

import (
	"context"

	"gorm.io/gorm"
)

type GetLowStockProductsQueryHandler struct {
	db *gorm.DB
}

func NewGetLowStockProductsQueryHandler(db *gorm.DB) GetLowStockProductsQueryHandler {
	return GetLowStockProductsQueryHandler{db: db}
}

// Handle lists the lowest stock first.
func (h GetLowStockProductsQueryHandler) Handle(
	ctx context.Context,
	query GetLowStockProductsQuery,
) ([]ProductQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return scanProducts(h.db.WithContext(ctx).Raw(`
		SELECT id, name, price, quantity
		FROM products
		WHERE quantity <= ?
		ORDER BY quantity, name
	`, query.Threshold()))
}
