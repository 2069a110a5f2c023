package partner

import (
	"time"

	"github.com/google/uuid"
	"github.com/swiftora/marketplace/internal/domain/shared"
)

// Supermarket is a buyer on the marketplace
type Supermarket struct {
	shared.BaseAggregateRoot
	UserID uuid.UUID
	Profile
}

// NewSupermarket creates a supermarket bound to a user account
func NewSupermarket(userID uuid.UUID, profile Profile) (*Supermarket, error) {
	if userID == uuid.Nil {
		return nil, shared.ErrInvalidInput.WithMessage("Supermarket must belong to a user")
	}
	if err := profile.validate(); err != nil {
		return nil, err
	}
	return &Supermarket{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		UserID:            userID,
		Profile:           profile,
	}, nil
}

// UpdateProfile replaces the editable profile fields. Email is the login
// identity and is not editable here.
func (s *Supermarket) UpdateProfile(name, contact, address string, location Location) error {
	next := s.Profile
	next.Name = name
	next.Contact = contact
	next.Address = address
	next.Location = location
	if err := next.validate(); err != nil {
		return err
	}

	s.Profile = next
	s.Modified(time.Now())
	return nil
}
