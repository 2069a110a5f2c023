package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/swiftora/marketplace/internal/domain/tieup"
)

// TieUpModel is the persistence model for the TieUp aggregate. The unique
// pair index is what makes CreateIfAbsent atomic.
type TieUpModel struct {
	AggregateModel
	SupplierID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_tie_ups_pair,priority:1"`
	SupermarketID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_tie_ups_pair,priority:2;index"`
	Status        string    `gorm:"type:varchar(32);not null"`
	RequestedAt   time.Time `gorm:"not null"`
	AcceptedAt    *time.Time
}

// TableName returns the table name for GORM
func (TieUpModel) TableName() string {
	return "tie_ups"
}

// ToDomain converts the model to a domain TieUp
func (m *TieUpModel) ToDomain() *tieup.TieUp {
	return &tieup.TieUp{
		BaseAggregateRoot: m.AggregateRoot(),
		SupplierID:        m.SupplierID,
		SupermarketID:     m.SupermarketID,
		Status:            tieup.ParseStatus(m.Status),
		RequestedAt:       m.RequestedAt,
		AcceptedAt:        m.AcceptedAt,
	}
}

// FromDomain populates the model from a domain TieUp
func (m *TieUpModel) FromDomain(t *tieup.TieUp) {
	m.FromDomainAggregateRoot(t.BaseAggregateRoot)
	m.SupplierID = t.SupplierID
	m.SupermarketID = t.SupermarketID
	m.Status = t.Status.String()
	m.RequestedAt = t.RequestedAt
	m.AcceptedAt = t.AcceptedAt
}

// TieUpModelFromDomain creates a new model from a domain TieUp
func TieUpModelFromDomain(t *tieup.TieUp) *TieUpModel {
	m := &TieUpModel{}
	m.FromDomain(t)
	return m
}
