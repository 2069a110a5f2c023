package partner

import (
	"strings"

	"github.com/swiftora/marketplace/internal/domain/shared"
)

// Profile holds the contact details shared by suppliers and supermarkets
type Profile struct {
	Name     string
	Email    string
	Contact  string
	Address  string
	Location Location
}

func (p Profile) validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return shared.ErrInvalidInput.WithMessage("Name cannot be empty")
	}
	if len(p.Name) > 200 {
		return shared.ErrInvalidInput.WithMessage("Name cannot exceed 200 characters")
	}
	if len(p.Contact) > 50 {
		return shared.ErrInvalidInput.WithMessage("Contact cannot exceed 50 characters")
	}
	if !p.Location.IsValid() {
		return shared.ErrInvalidInput.WithMessage("Location is out of range")
	}
	return nil
}
