package order

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")

// Line is one product of an order with its price snapshot.
type Line struct {
	id        kernel.UUID
	productID kernel.UUID
	quantity  int
	unitPrice kernel.Money

	isConstructed bool
}

func NewLine(id, productID kernel.UUID, quantity int, unitPrice kernel.Money) (*Line, error) {
	l := &Line{isConstructed: true}

	if err := errors.Join(
		l.setID(id),
		l.setProductID(productID),
		l.setQuantity(quantity),
		l.setUnitPrice(unitPrice),
	); err != nil {
		return nil, err
	}

	return l, nil
}

func (l *Line) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLineIsNotConstructed
	}
	return nil
}

func (l *Line) ID() kernel.UUID {
	return l.id
}

func (l *Line) ProductID() kernel.UUID {
	return l.productID
}

func (l *Line) Quantity() int {
	return l.quantity
}

func (l *Line) UnitPrice() kernel.Money {
	return l.unitPrice
}

func (l *Line) Total() kernel.Money {
	return l.unitPrice.Multiply(l.quantity)
}

func (l *Line) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Line) setProductID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.productID = id
	return nil
}

func (l *Line) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, "unbounded")
	}
	l.quantity = quantity
	return nil
}

func (l *Line) setUnitPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	l.unitPrice = price
	return nil
}
