package partner

import (
	"context"

	"github.com/google/uuid"
)

// SupplierRepository defines the interface for supplier persistence
type SupplierRepository interface {
	// FindByID finds a supplier by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Supplier, error)

	// FindByUserID finds the supplier bound to a user account
	FindByUserID(ctx context.Context, userID uuid.UUID) (*Supplier, error)

	// FindAll lists every supplier, ordered by name
	FindAll(ctx context.Context) ([]Supplier, error)

	// FindByIDs loads suppliers by ID; missing IDs are skipped
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Supplier, error)

	// Save creates or updates a supplier
	Save(ctx context.Context, supplier *Supplier) error
}

// SupermarketRepository defines the interface for supermarket persistence
type SupermarketRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Supermarket, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*Supermarket, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Supermarket, error)

	// Save creates or updates a supermarket
	Save(ctx context.Context, supermarket *Supermarket) error

	// SaveWithLock updates a supermarket only if its version is unchanged
	SaveWithLock(ctx context.Context, supermarket *Supermarket) error
}
