package ordering

import (
	"context"

	"github.com/swiftora/marketplace/internal/domain/catalog"
	"github.com/swiftora/marketplace/internal/domain/ordering"
)

// TransactionScope runs order placement in one database transaction, so a
// stock reservation and the order row commit or roll back together
type TransactionScope interface {
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories are the repositories bound to a transaction
type TransactionalRepositories interface {
	Orders() ordering.Repository
	Products() catalog.ProductRepository
}
