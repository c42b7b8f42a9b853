package commands

import (
	"context"
	"errors"

	"ordering/internal/core/domain/model/customer"
	"ordering/internal/pkg/errs"
)

// CreateCustomerCommandHandler registers customers. Emails are unique.
type CreateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

func NewCreateCustomerCommandHandler(uowFactory CustomerUoWFactory) CreateCustomerCommandHandler {
	return CreateCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *CreateCustomerCommandHandler) Handle(ctx context.Context, cmd CreateCustomerCommand) (*customer.Customer, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	created, err := customer.NewCustomer(cmd.CustomerID(), cmd.Name(), cmd.Email())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	customerRepo := uow.CustomerRepository()
	_, err = customerRepo.FindByEmail(ctx, created.Email())
	switch {
	case err == nil:
		return nil, ErrEmailAlreadyUsed
	case !errors.Is(err, errs.ErrObjectNotFound):
		return nil, err
	}

	if err = customerRepo.Add(ctx, created); err != nil {
		if errors.Is(err, errs.ErrObjectAlreadyExists) {
			return nil, ErrEmailAlreadyUsed
		}
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
