package product

import (
	"errors"
	"fmt"
	"strings"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

var (
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")
	ErrNotEnoughStock          = errors.New("not enough stock")
)

type Product struct {
	id       kernel.UUID
	name     string
	price    kernel.Money
	quantity int
	version  int64

	isConstructed bool
}

// QuantityUpdate is the stock write issued after an order has been placed.
// Version is the product version the new quantity was computed from.
type QuantityUpdate struct {
	ID       kernel.UUID
	Quantity int
	Version  int64
}

func NewProduct(id kernel.UUID, name string, price kernel.Money, quantity int) (*Product, error) {
	return RestoreProduct(id, name, price, quantity, 0)
}

// RestoreProduct rebuilds a product from persisted state.
func RestoreProduct(id kernel.UUID, name string, price kernel.Money, quantity int, version int64) (*Product, error) {
	p := &Product{
		version:       version,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setPrice(price),
		p.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

func (p *Product) ID() kernel.UUID {
	return p.id
}

func (p *Product) Name() string {
	return p.name
}

func (p *Product) Price() kernel.Money {
	return p.price
}

func (p *Product) Quantity() int {
	return p.quantity
}

func (p *Product) Version() int64 {
	return p.version
}

func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// HasStock reports whether requested units are available.
func (p *Product) HasStock(requested int) bool {
	return requested <= p.quantity
}

// Withdraw takes units out of stock.
func (p *Product) Withdraw(requested int) error {
	if requested <= 0 {
		return errs.NewValueIsOutOfRangeError("requested quantity", requested, 1, p.quantity)
	}
	if !p.HasStock(requested) {
		return fmt.Errorf("%w: product %s has %d, requested %d", ErrNotEnoughStock, p.id, p.quantity, requested)
	}

	p.quantity -= requested
	return nil
}

// QuantityUpdate describes the current quantity as a write against the loaded version.
func (p *Product) QuantityUpdate() QuantityUpdate {
	return QuantityUpdate{
		ID:       p.id,
		Quantity: p.quantity,
		Version:  p.version,
	}
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	p.price = price
	return nil
}

func (p *Product) setQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 0, "unbounded")
	}
	p.quantity = quantity
	return nil
}
