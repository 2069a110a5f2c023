package ordering

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/swiftora/marketplace/internal/domain/shared"
)

// StockPolicy decides what happens to product stock when an order is placed.
// The store is always authoritative; a policy only runs after the stock
// bound check has passed against freshly loaded product data.
type StockPolicy interface {
	Name() string
	Apply(ctx context.Context, productID uuid.UUID, quantity int) error
}

// StockPolicy names
const (
	StockPolicyCheckOnly = "check_only"
	StockPolicyReserve   = "reserve"
)

// StockDecrementer is the persistence port used by the reserve policy
type StockDecrementer interface {
	TryDecrementStock(ctx context.Context, productID uuid.UUID, quantity int) (bool, error)
}

// CheckOnlyPolicy leaves stock untouched; stock movement is owned by the
// supplier's inventory operations.
type CheckOnlyPolicy struct{}

// Name returns the policy name
func (CheckOnlyPolicy) Name() string { return StockPolicyCheckOnly }

// Apply does nothing
func (CheckOnlyPolicy) Apply(context.Context, uuid.UUID, int) error { return nil }

// ReservePolicy decrements stock at placement with a conditional update, so
// two concurrent orders can never take the same units.
type ReservePolicy struct {
	store StockDecrementer
}

// NewReservePolicy creates a ReservePolicy
func NewReservePolicy(store StockDecrementer) *ReservePolicy {
	return &ReservePolicy{store: store}
}

// Name returns the policy name
func (p *ReservePolicy) Name() string { return StockPolicyReserve }

// Apply takes quantity units from the product
func (p *ReservePolicy) Apply(ctx context.Context, productID uuid.UUID, quantity int) error {
	ok, err := p.store.TryDecrementStock(ctx, productID, quantity)
	if err != nil {
		return fmt.Errorf("reserve stock: %w", err)
	}
	if !ok {
		return shared.ErrInsufficientStock
	}
	return nil
}

// NewStockPolicy resolves a configured policy name
func NewStockPolicy(name string, store StockDecrementer) (StockPolicy, error) {
	switch name {
	case "", StockPolicyCheckOnly:
		return CheckOnlyPolicy{}, nil
	case StockPolicyReserve:
		return NewReservePolicy(store), nil
	default:
		return nil, shared.ErrInvalidInput.WithMessage("Unknown stock policy: " + name)
	}
}
