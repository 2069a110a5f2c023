package catalog

import (
	"context"

	"github.com/google/uuid"
)

// ProductRepository defines the interface for product persistence
type ProductRepository interface {
	// FindByID finds a product by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)

	// FindBySupplier lists a supplier's products ordered by name
	FindBySupplier(ctx context.Context, supplierID uuid.UUID) ([]Product, error)

	// FindBySuppliers lists the products of several suppliers
	FindBySuppliers(ctx context.Context, supplierIDs []uuid.UUID) ([]Product, error)

	// CreateIfAbsent inserts the product unless its supplier already uses the
	// SKU. It must be a single atomic conditional insert; created is false
	// when the SKU was taken.
	CreateIfAbsent(ctx context.Context, product *Product) (created bool, err error)

	// Save creates or updates a product
	Save(ctx context.Context, product *Product) error

	// TryDecrementStock removes quantity from stock in a single conditional
	// update. It returns false, without error, when stock is insufficient.
	TryDecrementStock(ctx context.Context, productID uuid.UUID, quantity int) (bool, error)
}
