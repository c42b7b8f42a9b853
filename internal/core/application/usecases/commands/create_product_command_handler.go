package commands

import (
	"context"
	"errors"

	"ordering/internal/core/domain/model/product"
	"ordering/internal/pkg/errs"
)

// CreateProductCommandHandler adds products to the catalog. Names are unique.
type CreateProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

func NewCreateProductCommandHandler(uowFactory ProductUoWFactory) CreateProductCommandHandler {
	return CreateProductCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) (*product.Product, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	productRepo := uow.ProductRepository()
	_, err := productRepo.FindByName(ctx, cmd.Name())
	switch {
	case err == nil:
		return nil, ErrProductAlreadyExists
	case !errors.Is(err, errs.ErrObjectNotFound):
		return nil, err
	}

	created, err := product.NewProduct(cmd.ProductID(), cmd.Name(), cmd.Price(), cmd.Quantity())
	if err != nil {
		return nil, err
	}

	if err = productRepo.Add(ctx, created); err != nil {
		if errors.Is(err, errs.ErrObjectAlreadyExists) {
			return nil, ErrProductAlreadyExists
		}
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
