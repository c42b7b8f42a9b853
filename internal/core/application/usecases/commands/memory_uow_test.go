package commands_test

import (
	"context"
	"errors"
	"maps"
	"slices"
	"strings"
	"sync"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/product"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"
)

var errNoTransaction = errors.New("no transaction in progress")

type productRow struct {
	name     string
	price    kernel.Money
	quantity int
	version  int64
}

type memState struct {
	customers map[kernel.UUID]*customer.Customer
	products  map[kernel.UUID]productRow
	orders    map[kernel.UUID]*order.Order
}

func (s memState) clone() memState {
	return memState{
		customers: maps.Clone(s.customers),
		products:  maps.Clone(s.products),
		orders:    maps.Clone(s.orders),
	}
}

// memStore keeps committed state. A unit of work edits a private copy and
// swaps it in on commit, so rolled back work leaves no trace.
type memStore struct {
	mu        sync.Mutex
	committed memState

	// stockWriteErr, when set, fails every UpdateQuantity call.
	stockWriteErr error
}

func newMemStore() *memStore {
	return &memStore{
		committed: memState{
			customers: map[kernel.UUID]*customer.Customer{},
			products:  map[kernel.UUID]productRow{},
			orders:    map[kernel.UUID]*order.Order{},
		},
	}
}

func (s *memStore) stock(id kernel.UUID) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.committed.products[id].quantity
}

func (s *memStore) orderCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.committed.orders)
}

func (s *memStore) setPrice(id kernel.UUID, price kernel.Money) {
	s.mu.Lock()
	defer s.mu.Unlock()
	row := s.committed.products[id]
	row.price = price
	s.committed.products[id] = row
}

func (s *memStore) orderFactory() commands.OrderUoWFactory {
	return memOrderUoWFactory{store: s}
}

func (s *memStore) customerFactory() commands.CustomerUoWFactory {
	return memCustomerUoWFactory{store: s}
}

func (s *memStore) productFactory() commands.ProductUoWFactory {
	return memProductUoWFactory{store: s}
}

type memOrderUoWFactory struct{ store *memStore }

func (f memOrderUoWFactory) Create() commands.OrderUoW { return &memUoW{store: f.store} }

type memCustomerUoWFactory struct{ store *memStore }

func (f memCustomerUoWFactory) Create() commands.CustomerUoW { return &memUoW{store: f.store} }

type memProductUoWFactory struct{ store *memStore }

func (f memProductUoWFactory) Create() commands.ProductUoW { return &memUoW{store: f.store} }

type memUoW struct {
	store *memStore
	work  *memState
}

func (u *memUoW) Begin(_ context.Context) error {
	u.store.mu.Lock()
	defer u.store.mu.Unlock()
	work := u.store.committed.clone()
	u.work = &work
	return nil
}

func (u *memUoW) Commit(_ context.Context) error {
	if u.work == nil {
		return errNoTransaction
	}
	u.store.mu.Lock()
	defer u.store.mu.Unlock()
	u.store.committed = *u.work
	u.work = nil
	return nil
}

func (u *memUoW) Rollback(_ context.Context) error {
	if u.work == nil {
		return errNoTransaction
	}
	u.work = nil
	return nil
}

func (u *memUoW) CustomerRepository() ports.CustomerRepository { return memCustomerRepo{uow: u} }
func (u *memUoW) ProductRepository() ports.ProductRepository   { return memProductRepo{uow: u} }
func (u *memUoW) OrderRepository() ports.OrderRepository       { return memOrderRepo{uow: u} }

type memCustomerRepo struct{ uow *memUoW }

func (r memCustomerRepo) Add(_ context.Context, c *customer.Customer) error {
	for _, existing := range r.uow.work.customers {
		if existing.Email() == c.Email() {
			return errs.ErrObjectAlreadyExists
		}
	}
	r.uow.work.customers[c.ID()] = c
	return nil
}

func (r memCustomerRepo) Get(_ context.Context, id kernel.UUID) (*customer.Customer, error) {
	c, ok := r.uow.work.customers[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("customer", id)
	}
	return c, nil
}

func (r memCustomerRepo) FindByEmail(_ context.Context, email string) (*customer.Customer, error) {
	for _, c := range r.uow.work.customers {
		if c.Email() == email {
			return c, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("email", email)
}

type memProductRepo struct{ uow *memUoW }

func (r memProductRepo) restore(id kernel.UUID, row productRow) (*product.Product, error) {
	return product.RestoreProduct(id, row.name, row.price, row.quantity, row.version)
}

func (r memProductRepo) Add(_ context.Context, p *product.Product) error {
	for _, row := range r.uow.work.products {
		if row.name == p.Name() {
			return errs.ErrObjectAlreadyExists
		}
	}
	r.uow.work.products[p.ID()] = productRow{name: p.Name(), price: p.Price(), quantity: p.Quantity(), version: p.Version()}
	return nil
}

func (r memProductRepo) FindByName(_ context.Context, name string) (*product.Product, error) {
	for id, row := range r.uow.work.products {
		if row.name == name {
			return r.restore(id, row)
		}
	}
	return nil, errs.NewObjectNotFoundError("name", name)
}

func (r memProductRepo) FindAllByID(_ context.Context, ids []kernel.UUID) ([]*product.Product, error) {
	var found []*product.Product
	for _, id := range ids {
		row, ok := r.uow.work.products[id]
		if !ok {
			continue
		}
		p, err := r.restore(id, row)
		if err != nil {
			return nil, err
		}
		found = append(found, p)
	}
	slices.SortFunc(found, func(a, b *product.Product) int {
		return strings.Compare(a.ID().String(), b.ID().String())
	})
	return found, nil
}

func (r memProductRepo) UpdateQuantity(
	_ context.Context,
	updates []product.QuantityUpdate,
) ([]*product.Product, error) {
	if err := r.uow.store.stockWriteErr; err != nil {
		return nil, err
	}

	updated := make([]*product.Product, 0, len(updates))
	for _, u := range updates {
		row, ok := r.uow.work.products[u.ID]
		if !ok || row.version != u.Version {
			return nil, errs.NewVersionIsInvalidError("product " + u.ID.String())
		}
		row.quantity = u.Quantity
		row.version++
		r.uow.work.products[u.ID] = row

		p, err := r.restore(u.ID, row)
		if err != nil {
			return nil, err
		}
		updated = append(updated, p)
	}
	return updated, nil
}

type memOrderRepo struct{ uow *memUoW }

func (r memOrderRepo) Add(_ context.Context, o *order.Order) error {
	if _, ok := r.uow.work.orders[o.ID()]; ok {
		return errs.ErrObjectAlreadyExists
	}
	r.uow.work.orders[o.ID()] = o
	return nil
}

func (r memOrderRepo) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	o, ok := r.uow.work.orders[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id)
	}
	return o, nil
}
