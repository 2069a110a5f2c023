package tieup

import (
	"time"

	"github.com/google/uuid"
	"github.com/swiftora/marketplace/internal/domain/partner"
	"github.com/swiftora/marketplace/internal/domain/tieup"
)

// TieUpResponse is a persisted tie-up
type TieUpResponse struct {
	ID            uuid.UUID    `json:"tie_up_id"`
	SupplierID    uuid.UUID    `json:"supplier_id"`
	SupermarketID uuid.UUID    `json:"supermarket_id"`
	Status        tieup.Status `json:"status"`
	RequestedAt   time.Time    `json:"requested_at"`
	AcceptedAt    *time.Time   `json:"accepted_at,omitempty"`
}

// StatusResponse is the tie-up state of one supplier as seen by a
// supermarket. TieUp is nil when nothing was requested yet.
type StatusResponse struct {
	SupplierID uuid.UUID      `json:"supplier_id"`
	TieUp      *TieUpResponse `json:"tieUp"`
	Status     tieup.Status   `json:"status"`
}

// PartySummary is the counterpart of a tie-up with a display address
type PartySummary struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Contact        string    `json:"contact"`
	DisplayAddress string    `json:"display_address"`
}

// AcceptedTieUpResponse pairs an accepted tie-up with its supplier
type AcceptedTieUpResponse struct {
	TieUp    TieUpResponse `json:"tieUp"`
	Supplier PartySummary  `json:"supplier"`
}

// TieUpRequestResponse pairs a tie-up with the supermarket that requested it
type TieUpRequestResponse struct {
	TieUp       TieUpResponse `json:"tieUp"`
	Supermarket PartySummary  `json:"supermarket"`
}

// ToTieUpResponse converts a domain tie-up
func ToTieUpResponse(t *tieup.TieUp) TieUpResponse {
	return TieUpResponse{
		ID:            t.ID,
		SupplierID:    t.SupplierID,
		SupermarketID: t.SupermarketID,
		Status:        t.Status,
		RequestedAt:   t.RequestedAt,
		AcceptedAt:    t.AcceptedAt,
	}
}

func notRequested(supplierID uuid.UUID) StatusResponse {
	return StatusResponse{SupplierID: supplierID, Status: tieup.NotRequested()}
}

func toPartySummary(id uuid.UUID, p partner.Profile, displayAddress string) PartySummary {
	return PartySummary{
		ID:             id,
		Name:           p.Name,
		Email:          p.Email,
		Contact:        p.Contact,
		DisplayAddress: displayAddress,
	}
}
