package order

import (
	"errors"
	"fmt"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

var (
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
	ErrDuplicateLineProduct  = errors.New("product appears on more than one line")
)

type Order struct {
	id         kernel.UUID
	customerID kernel.UUID
	lines      []*Line
	createdAt  time.Time

	isConstructed bool
}

func NewOrder(id, customerID kernel.UUID, lines []*Line) (*Order, error) {
	return RestoreOrder(id, customerID, lines, time.Now().UTC())
}

// RestoreOrder rebuilds an order from persisted state.
func RestoreOrder(id, customerID kernel.UUID, lines []*Line, createdAt time.Time) (*Order, error) {
	o := &Order{
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setLines(lines),
	); err != nil {
		return nil, err
	}

	return o, nil
}

func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Lines returns a copy of the order lines in placement order.
func (o *Order) Lines() []*Line {
	lines := make([]*Line, len(o.lines))
	copy(lines, o.lines)
	return lines
}

// Total sums quantity * unit price over all lines.
func (o *Order) Total() kernel.Money {
	total := kernel.ZeroMoney()
	for _, l := range o.lines {
		total = total.Add(l.Total())
	}
	return total
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.customerID = id
	return nil
}

func (o *Order) setLines(lines []*Line) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("lines")
	}

	seen := make(map[kernel.UUID]struct{}, len(lines))
	for _, l := range lines {
		if err := l.Validate(); err != nil {
			return err
		}
		if _, dup := seen[l.ProductID()]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateLineProduct, l.ProductID())
		}
		seen[l.ProductID()] = struct{}{}
	}

	o.lines = append(make([]*Line, 0, len(lines)), lines...)
	return nil
}
