package persistence

import (
	"context"

	appidentity "github.com/swiftora/marketplace/internal/application/identity"
	appordering "github.com/swiftora/marketplace/internal/application/ordering"
	"github.com/swiftora/marketplace/internal/domain/catalog"
	"github.com/swiftora/marketplace/internal/domain/identity"
	"github.com/swiftora/marketplace/internal/domain/ordering"
	"github.com/swiftora/marketplace/internal/domain/partner"
	"gorm.io/gorm"
)

// GormTransactionScope runs registration writes in one database transaction
type GormTransactionScope struct {
	db *gorm.DB
}

// NewGormTransactionScope creates a new GormTransactionScope
func NewGormTransactionScope(db *gorm.DB) *GormTransactionScope {
	return &GormTransactionScope{db: db}
}

// Execute commits when fn returns nil and rolls back otherwise
func (s *GormTransactionScope) Execute(ctx context.Context, fn func(repos appidentity.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormTransactionalRepositories{tx: tx})
	})
}

type gormTransactionalRepositories struct {
	tx *gorm.DB
}

func (r *gormTransactionalRepositories) Users() identity.UserRepository {
	return NewGormUserRepository(r.tx)
}

func (r *gormTransactionalRepositories) Suppliers() partner.SupplierRepository {
	return NewGormSupplierRepository(r.tx)
}

func (r *gormTransactionalRepositories) Supermarkets() partner.SupermarketRepository {
	return NewGormSupermarketRepository(r.tx)
}

// GormOrderingTransactionScope runs order placement in one database transaction
type GormOrderingTransactionScope struct {
	db *gorm.DB
}

// NewGormOrderingTransactionScope creates a new GormOrderingTransactionScope
func NewGormOrderingTransactionScope(db *gorm.DB) *GormOrderingTransactionScope {
	return &GormOrderingTransactionScope{db: db}
}

// Execute commits when fn returns nil and rolls back otherwise
func (s *GormOrderingTransactionScope) Execute(ctx context.Context, fn func(repos appordering.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormTransactionalRepositories{tx: tx})
	})
}

func (r *gormTransactionalRepositories) Orders() ordering.Repository {
	return NewGormOrderRepository(r.tx)
}

func (r *gormTransactionalRepositories) Products() catalog.ProductRepository {
	return NewGormProductRepository(r.tx)
}

var (
	_ appidentity.TransactionScope          = (*GormTransactionScope)(nil)
	_ appidentity.TransactionalRepositories = (*gormTransactionalRepositories)(nil)
	_ appordering.TransactionScope          = (*GormOrderingTransactionScope)(nil)
	_ appordering.TransactionalRepositories = (*gormTransactionalRepositories)(nil)
)
