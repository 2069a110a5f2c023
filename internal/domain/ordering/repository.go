package ordering

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for order persistence
type Repository interface {
	// FindByID finds an order by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)

	// FindBySupplier lists orders addressed to a supplier, newest first
	FindBySupplier(ctx context.Context, supplierID uuid.UUID) ([]Order, error)

	// FindBySupermarket lists orders placed by a supermarket, newest first
	FindBySupermarket(ctx context.Context, supermarketID uuid.UUID) ([]Order, error)

	// Save creates or updates an order
	Save(ctx context.Context, order *Order) error

	// SaveWithLock updates an order only if its version is unchanged.
	// Returns shared.ErrConcurrencyConflict otherwise.
	SaveWithLock(ctx context.Context, order *Order) error
}
