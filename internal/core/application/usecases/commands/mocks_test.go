package commands_test

import (
	"context"
	"sync"

	"ecommerce/internal/core/application/usecases/commands"
	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/core/domain/model/order"
	"ecommerce/internal/core/domain/model/product"
	"ecommerce/internal/core/domain/model/tariff"
	"ecommerce/internal/core/ports"
	"ecommerce/internal/pkg/errs"
)

// fakeStore is a transaction-aware in-memory backend shared by the fake
// units of work. Mutations stage in the unit of work and reach the store
// only on Commit, so handler tests observe real rollback semantics.
type fakeStore struct {
	mu       sync.Mutex
	products map[string]*product.Product
	orders   map[string]*order.Order

	shippingConfig *tariff.ShippingConfig
	taxTable       *tariff.TaxTable

	// updateConflicts injects a conflict error into the next N order
	// updates, simulating lost optimistic-versioning races.
	updateConflicts int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		products: make(map[string]*product.Product),
		orders:   make(map[string]*order.Order),
	}
}

func (s *fakeStore) putProduct(p *product.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products[p.ID().String()] = p
}

func (s *fakeStore) productStock(id kernel.UUID) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.products[id.String()].Stock()
}

func (s *fakeStore) putOrder(o *order.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[o.ID().String()] = o
}

func (s *fakeStore) order(id kernel.UUID) *order.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orders[id.String()]
}

func (s *fakeStore) orderCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.orders)
}

func cloneProduct(p *product.Product) (*product.Product, error) {
	return product.RestoreProduct(p.ID(), p.Name(), p.Price(), p.Stock())
}

func cloneOrder(o *order.Order, version int) (*order.Order, error) {
	return order.RestoreOrder(order.RestoreOrderParams{
		ID:                   o.ID(),
		UserID:               o.UserID(),
		Lines:                o.Lines(),
		Address:              o.Address(),
		Subtotal:             o.Subtotal(),
		Tax:                  o.Tax(),
		Shipping:             o.Shipping(),
		Status:               o.Status(),
		PaymentStatus:        o.PaymentStatus(),
		ReturnStatus:         o.ReturnStatus(),
		PaymentMethod:        o.PaymentMethod(),
		PaymentRef:           o.PaymentRef(),
		TrackingNumber:       o.TrackingNumber(),
		Carrier:              o.Carrier(),
		ReturnTrackingNumber: o.ReturnTrackingNumber(),
		ReturnCarrier:        o.ReturnCarrier(),
		ReturnRequestedAt:    o.ReturnRequestedAt(),
		RefundIssuedAt:       o.RefundIssuedAt(),
		RefundAmount:         o.RefundAmount(),
		CreatedAt:            o.CreatedAt(),
		Version:              version,
	})
}

// fakeUoW implements every unit-of-work shape the command handlers need.
type fakeUoW struct {
	store *fakeStore

	stagedProducts map[string]*product.Product
	stagedOrders   map[string]*order.Order
	addedOrders    map[string]*order.Order
	deletedOrders  []string

	stagedShipping *tariff.ShippingConfig
	stagedTaxTable *tariff.TaxTable
}

func newFakeUoW(store *fakeStore) *fakeUoW {
	return &fakeUoW{
		store:          store,
		stagedProducts: make(map[string]*product.Product),
		stagedOrders:   make(map[string]*order.Order),
		addedOrders:    make(map[string]*order.Order),
	}
}

func (u *fakeUoW) Begin(context.Context) error    { return nil }
func (u *fakeUoW) Rollback(context.Context) error { return nil }

func (u *fakeUoW) Commit(context.Context) error {
	u.store.mu.Lock()
	defer u.store.mu.Unlock()

	for id, p := range u.stagedProducts {
		u.store.products[id] = p
	}
	for id, o := range u.addedOrders {
		u.store.orders[id] = o
	}
	for id, o := range u.stagedOrders {
		clone, err := cloneOrder(o, o.Version()+1)
		if err != nil {
			return err
		}
		u.store.orders[id] = clone
	}
	for _, id := range u.deletedOrders {
		delete(u.store.orders, id)
	}
	if u.stagedShipping != nil {
		u.store.shippingConfig = u.stagedShipping
	}
	if u.stagedTaxTable != nil {
		u.store.taxTable = u.stagedTaxTable
	}

	u.stagedProducts = make(map[string]*product.Product)
	u.stagedOrders = make(map[string]*order.Order)
	u.addedOrders = make(map[string]*order.Order)
	u.deletedOrders = nil
	return nil
}

func (u *fakeUoW) OrderRepository() ports.OrderRepository     { return fakeOrderRepo{u} }
func (u *fakeUoW) ProductRepository() ports.ProductRepository { return fakeProductRepo{u} }
func (u *fakeUoW) TariffRepository() ports.TariffRepository   { return fakeTariffRepo{u} }

type fakeProductRepo struct{ uow *fakeUoW }

func (r fakeProductRepo) Add(_ context.Context, aggregate *product.Product) error {
	r.uow.stagedProducts[aggregate.ID().String()] = aggregate
	return nil
}

func (r fakeProductRepo) Update(_ context.Context, aggregate *product.Product) error {
	r.uow.stagedProducts[aggregate.ID().String()] = aggregate
	return nil
}

func (r fakeProductRepo) Get(_ context.Context, id kernel.UUID) (*product.Product, error) {
	if staged, ok := r.uow.stagedProducts[id.String()]; ok {
		return staged, nil
	}

	r.uow.store.mu.Lock()
	stored, ok := r.uow.store.products[id.String()]
	r.uow.store.mu.Unlock()
	if !ok {
		return nil, errs.NewObjectNotFoundError("product", id)
	}
	return cloneProduct(stored)
}

func (r fakeProductRepo) GetForUpdate(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	return r.Get(ctx, id)
}

func (r fakeProductRepo) GetAll(context.Context) ([]*product.Product, error) {
	r.uow.store.mu.Lock()
	defer r.uow.store.mu.Unlock()

	all := make([]*product.Product, 0, len(r.uow.store.products))
	for _, stored := range r.uow.store.products {
		clone, err := cloneProduct(stored)
		if err != nil {
			return nil, err
		}
		all = append(all, clone)
	}
	return all, nil
}

type fakeOrderRepo struct{ uow *fakeUoW }

func (r fakeOrderRepo) Add(_ context.Context, aggregate *order.Order) error {
	r.uow.addedOrders[aggregate.ID().String()] = aggregate
	return nil
}

func (r fakeOrderRepo) Update(_ context.Context, aggregate *order.Order) error {
	r.uow.store.mu.Lock()
	conflict := r.uow.store.updateConflicts > 0
	if conflict {
		r.uow.store.updateConflicts--
	}
	r.uow.store.mu.Unlock()

	if conflict {
		return errs.NewConflictError("order", aggregate.ID())
	}

	r.uow.stagedOrders[aggregate.ID().String()] = aggregate
	return nil
}

func (r fakeOrderRepo) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	r.uow.store.mu.Lock()
	stored, ok := r.uow.store.orders[id.String()]
	r.uow.store.mu.Unlock()
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id)
	}
	return cloneOrder(stored, stored.Version())
}

func (r fakeOrderRepo) GetAllByUser(_ context.Context, userID kernel.UUID) ([]*order.Order, error) {
	r.uow.store.mu.Lock()
	defer r.uow.store.mu.Unlock()

	matched := make([]*order.Order, 0)
	for _, stored := range r.uow.store.orders {
		if stored.UserID().IsEqual(userID) {
			clone, err := cloneOrder(stored, stored.Version())
			if err != nil {
				return nil, err
			}
			matched = append(matched, clone)
		}
	}
	return matched, nil
}

func (r fakeOrderRepo) GetAllInStatus(_ context.Context, status order.Status) ([]*order.Order, error) {
	r.uow.store.mu.Lock()
	defer r.uow.store.mu.Unlock()

	matched := make([]*order.Order, 0)
	for _, stored := range r.uow.store.orders {
		if stored.Status() == status {
			clone, err := cloneOrder(stored, stored.Version())
			if err != nil {
				return nil, err
			}
			matched = append(matched, clone)
		}
	}
	return matched, nil
}

func (r fakeOrderRepo) Delete(_ context.Context, id kernel.UUID) error {
	r.uow.deletedOrders = append(r.uow.deletedOrders, id.String())
	return nil
}

type fakeTariffRepo struct{ uow *fakeUoW }

func (r fakeTariffRepo) GetShippingConfig(context.Context) (tariff.ShippingConfig, error) {
	r.uow.store.mu.Lock()
	defer r.uow.store.mu.Unlock()

	if r.uow.store.shippingConfig != nil {
		return *r.uow.store.shippingConfig, nil
	}
	return tariff.DefaultShippingConfig(), nil
}

func (r fakeTariffRepo) SaveShippingConfig(_ context.Context, config tariff.ShippingConfig) error {
	r.uow.stagedShipping = &config
	return nil
}

func (r fakeTariffRepo) GetTaxTable(context.Context) (tariff.TaxTable, error) {
	r.uow.store.mu.Lock()
	defer r.uow.store.mu.Unlock()

	if r.uow.store.taxTable != nil {
		return *r.uow.store.taxTable, nil
	}
	return tariff.DefaultTaxTable(), nil
}

func (r fakeTariffRepo) SaveTaxTable(_ context.Context, table tariff.TaxTable) error {
	r.uow.stagedTaxTable = &table
	return nil
}

// fakeUoWFactory satisfies every factory interface in this package.
type fakeUoWFactory struct{ store *fakeStore }

func (f fakeUoWFactory) Create() *fakeUoW { return newFakeUoW(f.store) }

type fakeFullUoWFactory fakeUoWFactory

func (f fakeFullUoWFactory) Create() commands.UoW { return newFakeUoW(f.store) }

type fakeOrderUoWFactory fakeUoWFactory

func (f fakeOrderUoWFactory) Create() commands.OrderUoW { return newFakeUoW(f.store) }

type fakeOrderProductUoWFactory fakeUoWFactory

func (f fakeOrderProductUoWFactory) Create() commands.OrderProductUoW { return newFakeUoW(f.store) }

type fakeProductUoWFactory fakeUoWFactory

func (f fakeProductUoWFactory) Create() commands.ProductUoW { return newFakeUoW(f.store) }

type fakeTariffUoWFactory fakeUoWFactory

func (f fakeTariffUoWFactory) Create() commands.TariffUoW { return newFakeUoW(f.store) }
