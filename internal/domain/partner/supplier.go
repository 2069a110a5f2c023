package partner

import (
	"github.com/google/uuid"
	"github.com/swiftora/marketplace/internal/domain/shared"
)

// Supplier is a seller on the marketplace. Suppliers are created at
// registration and are read-only to the tie-up and ordering flows.
type Supplier struct {
	shared.BaseAggregateRoot
	UserID uuid.UUID
	Profile
}

// NewSupplier creates a supplier bound to a user account
func NewSupplier(userID uuid.UUID, profile Profile) (*Supplier, error) {
	if userID == uuid.Nil {
		return nil, shared.ErrInvalidInput.WithMessage("Supplier must belong to a user")
	}
	if err := profile.validate(); err != nil {
		return nil, err
	}
	return &Supplier{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		UserID:            userID,
		Profile:           profile,
	}, nil
}
