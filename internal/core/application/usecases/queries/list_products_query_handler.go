package queries

import (
	"context"

	"ordering/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ListProductsQueryHandler struct {
	db *gorm.DB
}

func NewListProductsQueryHandler(db *gorm.DB) ListProductsQueryHandler {
	return ListProductsQueryHandler{db: db}
}

func (h ListProductsQueryHandler) Handle(ctx context.Context, query ListProductsQuery) ([]ProductQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return scanProducts(h.db.WithContext(ctx).Raw(`
		SELECT id, name, price, quantity
		FROM products
		ORDER BY name
	`))
}

// scanProducts reads (id, name, price, quantity) rows.
func scanProducts(raw *gorm.DB) ([]ProductQueryResponse, error) {
	rows, err := raw.Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]ProductQueryResponse, 0)
	for rows.Next() {
		var (
			id       uuid.UUID
			name     string
			price    decimal.Decimal
			quantity int
		)
		if err = rows.Scan(&id, &name, &price, &quantity); err != nil {
			return nil, err
		}

		item := ProductQueryResponse{Name: name, Quantity: quantity}
		if item.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if item.Price, err = kernel.NewMoney(price); err != nil {
			return nil, err
		}
		products = append(products, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
