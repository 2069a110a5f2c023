package partner

import (
	"time"

	"github.com/google/uuid"
	"github.com/swiftora/marketplace/internal/domain/partner"
)

// SupplierResponse is a supplier as listed to supermarkets
type SupplierResponse struct {
	ID        uuid.UUID `json:"supplier_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Contact   string    `json:"contact"`
	Address   string    `json:"address"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
}

// SupermarketResponse is a supermarket profile
type SupermarketResponse struct {
	ID        uuid.UUID `json:"supermarket_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Contact   string    `json:"contact"`
	Address   string    `json:"address"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Version   int       `json:"version"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UpdateSupermarketRequest edits a supermarket profile. Nil coordinates
// leave the location to geocoding of Address.
type UpdateSupermarketRequest struct {
	Name      string
	Contact   string
	Address   string
	Latitude  *float64
	Longitude *float64
}

// ToSupplierResponse converts a domain supplier
func ToSupplierResponse(s *partner.Supplier) SupplierResponse {
	return SupplierResponse{
		ID:        s.ID,
		Name:      s.Name,
		Email:     s.Email,
		Contact:   s.Contact,
		Address:   s.Address,
		Latitude:  s.Location.Lat,
		Longitude: s.Location.Lng,
	}
}

// ToSupplierResponses converts a slice of domain suppliers
func ToSupplierResponses(suppliers []partner.Supplier) []SupplierResponse {
	out := make([]SupplierResponse, len(suppliers))
	for i := range suppliers {
		out[i] = ToSupplierResponse(&suppliers[i])
	}
	return out
}

// ToSupermarketResponse converts a domain supermarket
func ToSupermarketResponse(s *partner.Supermarket) SupermarketResponse {
	return SupermarketResponse{
		ID:        s.ID,
		Name:      s.Name,
		Email:     s.Email,
		Contact:   s.Contact,
		Address:   s.Address,
		Latitude:  s.Location.Lat,
		Longitude: s.Location.Lng,
		Version:   s.Version,
		UpdatedAt: s.UpdatedAt,
	}
}
