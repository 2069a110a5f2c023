package tieup

import (
	"github.com/google/uuid"
	"github.com/swiftora/marketplace/internal/domain/shared"
)

// Aggregate type constant
const AggregateTypeTieUp = "TieUp"

// Event type constants
const (
	EventTypeTieUpRequested = "TieUpRequested"
	EventTypeTieUpAccepted  = "TieUpAccepted"
)

// TieUpRequestedEvent is published when a supermarket asks a supplier to partner
type TieUpRequestedEvent struct {
	shared.BaseDomainEvent
	TieUpID       uuid.UUID `json:"tie_up_id"`
	SupplierID    uuid.UUID `json:"supplier_id"`
	SupermarketID uuid.UUID `json:"supermarket_id"`
}

// NewTieUpRequestedEvent creates a new TieUpRequestedEvent
func NewTieUpRequestedEvent(t *TieUp) *TieUpRequestedEvent {
	return &TieUpRequestedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeTieUpRequested, AggregateTypeTieUp, t.ID),
		TieUpID:         t.ID,
		SupplierID:      t.SupplierID,
		SupermarketID:   t.SupermarketID,
	}
}

// TieUpAcceptedEvent is published when the supplier accepts a request
type TieUpAcceptedEvent struct {
	shared.BaseDomainEvent
	TieUpID       uuid.UUID `json:"tie_up_id"`
	SupplierID    uuid.UUID `json:"supplier_id"`
	SupermarketID uuid.UUID `json:"supermarket_id"`
}

// NewTieUpAcceptedEvent creates a new TieUpAcceptedEvent
func NewTieUpAcceptedEvent(t *TieUp) *TieUpAcceptedEvent {
	return &TieUpAcceptedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeTieUpAccepted, AggregateTypeTieUp, t.ID),
		TieUpID:         t.ID,
		SupplierID:      t.SupplierID,
		SupermarketID:   t.SupermarketID,
	}
}
