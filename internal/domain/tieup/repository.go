package tieup

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for tie-up persistence
type Repository interface {
	// FindByPair finds the tie-up between a supermarket and a supplier.
	// Returns shared.ErrNotFound when none exists.
	FindByPair(ctx context.Context, supermarketID, supplierID uuid.UUID) (*TieUp, error)

	// CreateIfAbsent inserts the tie-up unless one already exists for the pair.
	// It must be a single atomic conditional insert; created is false when
	// another row won.
	CreateIfAbsent(ctx context.Context, t *TieUp) (created bool, err error)

	// SaveWithLock updates the tie-up only if its version is unchanged
	SaveWithLock(ctx context.Context, t *TieUp) error

	// FindAcceptedBySupermarket lists accepted tie-ups of a supermarket
	FindAcceptedBySupermarket(ctx context.Context, supermarketID uuid.UUID) ([]TieUp, error)

	// FindBySupplier lists every tie-up addressed to a supplier, newest first
	FindBySupplier(ctx context.Context, supplierID uuid.UUID) ([]TieUp, error)
}
