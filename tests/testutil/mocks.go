package testutil

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/swiftora/marketplace/internal/domain/catalog"
	"github.com/swiftora/marketplace/internal/domain/identity"
	"github.com/swiftora/marketplace/internal/domain/ordering"
	"github.com/swiftora/marketplace/internal/domain/partner"
	"github.com/swiftora/marketplace/internal/domain/shared"
	"github.com/swiftora/marketplace/internal/domain/tieup"
	"github.com/swiftora/marketplace/internal/infrastructure/geocode"
)

// =============================================================================
// Repository mocks
// =============================================================================

// MockUserRepository is a mock implementation of identity.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) Save(ctx context.Context, user *identity.User) error {
	return m.Called(ctx, user).Error(0)
}

// MockSupplierRepository is a mock implementation of partner.SupplierRepository
type MockSupplierRepository struct {
	mock.Mock
}

func (m *MockSupplierRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Supplier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*partner.Supplier, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) FindAll(ctx context.Context) ([]partner.Supplier, error) {
	args := m.Called(ctx)
	return args.Get(0).([]partner.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]partner.Supplier, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]partner.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) Save(ctx context.Context, supplier *partner.Supplier) error {
	return m.Called(ctx, supplier).Error(0)
}

// MockSupermarketRepository is a mock implementation of partner.SupermarketRepository
type MockSupermarketRepository struct {
	mock.Mock
}

func (m *MockSupermarketRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Supermarket, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Supermarket), args.Error(1)
}

func (m *MockSupermarketRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*partner.Supermarket, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Supermarket), args.Error(1)
}

func (m *MockSupermarketRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]partner.Supermarket, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]partner.Supermarket), args.Error(1)
}

func (m *MockSupermarketRepository) Save(ctx context.Context, s *partner.Supermarket) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockSupermarketRepository) SaveWithLock(ctx context.Context, s *partner.Supermarket) error {
	return m.Called(ctx, s).Error(0)
}

// MockProductRepository is a mock implementation of catalog.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindBySupplier(ctx context.Context, supplierID uuid.UUID) ([]catalog.Product, error) {
	args := m.Called(ctx, supplierID)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindBySuppliers(ctx context.Context, supplierIDs []uuid.UUID) ([]catalog.Product, error) {
	args := m.Called(ctx, supplierIDs)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) CreateIfAbsent(ctx context.Context, product *catalog.Product) (bool, error) {
	args := m.Called(ctx, product)
	return args.Bool(0), args.Error(1)
}

func (m *MockProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *MockProductRepository) TryDecrementStock(ctx context.Context, productID uuid.UUID, quantity int) (bool, error) {
	args := m.Called(ctx, productID, quantity)
	return args.Bool(0), args.Error(1)
}

// MockTieUpRepository is a mock implementation of tieup.Repository
type MockTieUpRepository struct {
	mock.Mock
}

func (m *MockTieUpRepository) FindByPair(ctx context.Context, supermarketID, supplierID uuid.UUID) (*tieup.TieUp, error) {
	args := m.Called(ctx, supermarketID, supplierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tieup.TieUp), args.Error(1)
}

func (m *MockTieUpRepository) CreateIfAbsent(ctx context.Context, t *tieup.TieUp) (bool, error) {
	args := m.Called(ctx, t)
	return args.Bool(0), args.Error(1)
}

func (m *MockTieUpRepository) SaveWithLock(ctx context.Context, t *tieup.TieUp) error {
	return m.Called(ctx, t).Error(0)
}

func (m *MockTieUpRepository) FindAcceptedBySupermarket(ctx context.Context, supermarketID uuid.UUID) ([]tieup.TieUp, error) {
	args := m.Called(ctx, supermarketID)
	return args.Get(0).([]tieup.TieUp), args.Error(1)
}

func (m *MockTieUpRepository) FindBySupplier(ctx context.Context, supplierID uuid.UUID) ([]tieup.TieUp, error) {
	args := m.Called(ctx, supplierID)
	return args.Get(0).([]tieup.TieUp), args.Error(1)
}

// MockOrderRepository is a mock implementation of ordering.Repository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*ordering.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ordering.Order), args.Error(1)
}

func (m *MockOrderRepository) FindBySupplier(ctx context.Context, supplierID uuid.UUID) ([]ordering.Order, error) {
	args := m.Called(ctx, supplierID)
	return args.Get(0).([]ordering.Order), args.Error(1)
}

func (m *MockOrderRepository) FindBySupermarket(ctx context.Context, supermarketID uuid.UUID) ([]ordering.Order, error) {
	args := m.Called(ctx, supermarketID)
	return args.Get(0).([]ordering.Order), args.Error(1)
}

func (m *MockOrderRepository) Save(ctx context.Context, order *ordering.Order) error {
	return m.Called(ctx, order).Error(0)
}

func (m *MockOrderRepository) SaveWithLock(ctx context.Context, order *ordering.Order) error {
	return m.Called(ctx, order).Error(0)
}

// MockGeocoder is a mock implementation of geocode.Resolver
type MockGeocoder struct {
	mock.Mock
}

func (m *MockGeocoder) Reverse(ctx context.Context, loc partner.Location) (string, error) {
	args := m.Called(ctx, loc)
	return args.String(0), args.Error(1)
}

func (m *MockGeocoder) Forward(ctx context.Context, address string) (partner.Location, error) {
	args := m.Called(ctx, address)
	return args.Get(0).(partner.Location), args.Error(1)
}

// =============================================================================
// Event recording
// =============================================================================

// RecordingPublisher collects published events
type RecordingPublisher struct {
	mu     sync.Mutex
	events []shared.DomainEvent
	Err    error
}

// Publish records events and returns Err
func (p *RecordingPublisher) Publish(_ context.Context, events ...shared.DomainEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, events...)
	return p.Err
}

// Types returns the recorded event types in publish order
func (p *RecordingPublisher) Types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.events))
	for i, e := range p.events {
		out[i] = e.EventType()
	}
	return out
}

// Events returns a copy of the recorded events
func (p *RecordingPublisher) Events() []shared.DomainEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]shared.DomainEvent(nil), p.events...)
}

var (
	_ identity.UserRepository       = (*MockUserRepository)(nil)
	_ partner.SupplierRepository    = (*MockSupplierRepository)(nil)
	_ partner.SupermarketRepository = (*MockSupermarketRepository)(nil)
	_ catalog.ProductRepository     = (*MockProductRepository)(nil)
	_ tieup.Repository              = (*MockTieUpRepository)(nil)
	_ ordering.Repository           = (*MockOrderRepository)(nil)
	_ geocode.Resolver              = (*MockGeocoder)(nil)
	_ shared.EventPublisher         = (*RecordingPublisher)(nil)
)
