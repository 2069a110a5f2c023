package identity

import (
	"context"

	"github.com/swiftora/marketplace/internal/domain/identity"
	"github.com/swiftora/marketplace/internal/domain/partner"
)

// TransactionScope runs fn inside a single database transaction.
// Repositories handed to fn share that transaction.
type TransactionScope interface {
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories are the repositories bound to a transaction
type TransactionalRepositories interface {
	Users() identity.UserRepository
	Suppliers() partner.SupplierRepository
	Supermarkets() partner.SupermarketRepository
}
