package services

import (
	"errors"
	"fmt"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

var (
	ErrNoProductsFound   = errors.New("Products not found")
	ErrProductsNotFound  = errors.New("products not found")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// ProductsNotFoundError lists requested product ids that do not exist, in
// request order. When none of the requested products exist it also matches
// ErrNoProductsFound.
type ProductsNotFoundError struct {
	IDs       []kernel.UUID
	noneFound bool
}

func (e *ProductsNotFoundError) Error() string {
	if e.noneFound {
		return ErrNoProductsFound.Error()
	}
	return fmt.Sprintf("Could not find products with id %s", kernel.JoinUUIDs(e.IDs))
}

func (e *ProductsNotFoundError) Unwrap() []error {
	if e.noneFound {
		return []error{errs.ErrBusinessRule, ErrProductsNotFound, ErrNoProductsFound}
	}
	return []error{errs.ErrBusinessRule, ErrProductsNotFound}
}

// InsufficientStockError lists product ids whose requested quantity exceeds stock.
type InsufficientStockError struct {
	IDs []kernel.UUID
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("The quantity of the products with id %s are not available.", kernel.JoinUUIDs(e.IDs))
}

func (e *InsufficientStockError) Unwrap() []error {
	return []error{errs.ErrBusinessRule, ErrInsufficientStock}
}
