package queries

import (
	"context"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns errs.ObjectNotFoundError when the order does not exist.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	db := h.db.WithContext(ctx)

	var header struct {
		ID         uuid.UUID
		CustomerID uuid.UUID
		CreatedAt  time.Time
	}
	result := db.Raw(`
		SELECT id, customer_id, created_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Scan(&header)
	if result.Error != nil {
		return GetOrderQueryResponse{}, result.Error
	}
	if result.RowsAffected == 0 {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	response := GetOrderQueryResponse{
		ID:        query.OrderID(),
		CreatedAt: header.CreatedAt,
		Total:     kernel.ZeroMoney(),
		Lines:     make([]GetOrderQueryLine, 0),
	}
	var err error
	if response.CustomerID, err = kernel.UUIDFromBytes(header.CustomerID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}

	rows, err := db.Raw(`
		SELECT product_id, quantity, unit_price
		FROM order_lines
		WHERE order_id = ?
		ORDER BY position
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			productID uuid.UUID
			quantity  int
			unitPrice decimal.Decimal
		)
		if err = rows.Scan(&productID, &quantity, &unitPrice); err != nil {
			return GetOrderQueryResponse{}, err
		}

		line := GetOrderQueryLine{Quantity: quantity}
		if line.ProductID, err = kernel.UUIDFromBytes(productID[:]); err != nil {
			return GetOrderQueryResponse{}, err
		}
		if line.UnitPrice, err = kernel.NewMoney(unitPrice); err != nil {
			return GetOrderQueryResponse{}, err
		}

		response.Total = response.Total.Add(line.UnitPrice.Multiply(quantity))
		response.Lines = append(response.Lines, line)
	}

	if err = rows.Err(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	return response, nil
}
