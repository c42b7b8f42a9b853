package commands

import (
	"errors"
	"fmt"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/services"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrItemsAreRequired = errs.NewValueIsRequiredError("products")
	ErrDuplicateProduct = errors.New("each product may be requested only once per order")
)

// CreateOrderCommand asks to place an order for a customer.
//
//	cmd, err := NewCreateOrderCommand(customerID, []services.RequestedItem{
//	    {ProductID: keyboardID, Quantity: 2},
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order request: %w", err)
//	}
//	placed, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID kernel.UUID
	items      []services.RequestedItem

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the request shape. It does not check that
// the customer or products exist; that is the handler's job.
func NewCreateOrderCommand(customerID kernel.UUID, items []services.RequestedItem) (CreateOrderCommand, error) {
	command := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(kernel.NewUUID()),
		command.setCustomerID(customerID),
		command.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return command, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Items returns a copy of the requested items in request order.
func (c CreateOrderCommand) Items() []services.RequestedItem {
	items := make([]services.RequestedItem, len(c.items))
	copy(items, c.items)
	return items
}

func (c CreateOrderCommand) ProductIDs() []kernel.UUID {
	ids := make([]kernel.UUID, len(c.items))
	for i, item := range c.items {
		ids[i] = item.ProductID
	}
	return ids
}

func (c *CreateOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.orderID = id
	return nil
}

func (c *CreateOrderCommand) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer_id", err)
	}

	c.customerID = id
	return nil
}

func (c *CreateOrderCommand) setItems(items []services.RequestedItem) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	var problems []error
	seen := make(map[kernel.UUID]struct{}, len(items))
	for i, item := range items {
		if err := item.ProductID.Validate(); err != nil {
			problems = append(problems, errs.NewValueIsRequiredErrorWithCause(fmt.Sprintf("products[%d].id", i), err))
			continue
		}
		if item.Quantity <= 0 {
			problems = append(problems, errs.NewValueIsOutOfRangeError(
				fmt.Sprintf("products[%d].quantity", i), item.Quantity, 1, "unbounded"))
		}
		if _, dup := seen[item.ProductID]; dup {
			problems = append(problems, fmt.Errorf("%w: %s", ErrDuplicateProduct, item.ProductID))
		}
		seen[item.ProductID] = struct{}{}
	}
	if len(problems) > 0 {
		return errors.Join(problems...)
	}

	c.items = append(make([]services.RequestedItem, 0, len(items)), items...)
	return nil
}
