package tieup

import (
	"time"

	"github.com/google/uuid"
	"github.com/swiftora/marketplace/internal/domain/shared"
)

// TieUp is the partnership between one supplier and one supermarket.
// At most one exists per pair. It is created Pending by the supermarket and
// only the supplier moves it to Accepted.
type TieUp struct {
	shared.BaseAggregateRoot
	SupplierID    uuid.UUID
	SupermarketID uuid.UUID
	Status        Status
	RequestedAt   time.Time
	AcceptedAt    *time.Time
}

// NewTieUp creates a pending tie-up request
func NewTieUp(supermarketID, supplierID uuid.UUID, now time.Time) (*TieUp, error) {
	if supermarketID == uuid.Nil {
		return nil, shared.ErrInvalidInput.WithMessage("Supermarket ID cannot be empty")
	}
	if supplierID == uuid.Nil {
		return nil, shared.ErrInvalidInput.WithMessage("Supplier ID cannot be empty")
	}

	t := &TieUp{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		SupplierID:        supplierID,
		SupermarketID:     supermarketID,
		Status:            Pending(),
		RequestedAt:       now,
	}
	t.CreatedAt = now
	t.UpdatedAt = now

	t.AddDomainEvent(NewTieUpRequestedEvent(t))

	return t, nil
}

// Accept moves a pending tie-up to accepted
func (t *TieUp) Accept(now time.Time) error {
	if !t.Status.IsPending() {
		return shared.ErrIllegalTransition.WithMessage(
			"Cannot accept tie-up in status " + t.Status.String())
	}

	t.Status = Accepted()
	t.AcceptedAt = &now
	t.Modified(now)

	t.AddDomainEvent(NewTieUpAcceptedEvent(t))

	return nil
}

// Involves reports whether the tie-up is between the given parties
func (t *TieUp) Involves(supermarketID, supplierID uuid.UUID) bool {
	return t.SupermarketID == supermarketID && t.SupplierID == supplierID
}
