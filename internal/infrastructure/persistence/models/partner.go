package models

import (
	"github.com/google/uuid"
	"github.com/swiftora/marketplace/internal/domain/partner"
)

// ProfileColumns are the contact columns shared by suppliers and supermarkets
type ProfileColumns struct {
	Name      string  `gorm:"type:varchar(200);not null"`
	Email     string  `gorm:"type:varchar(200)"`
	Contact   string  `gorm:"type:varchar(50)"`
	Address   string  `gorm:"type:text"`
	Latitude  float64 `gorm:"not null;default:0"`
	Longitude float64 `gorm:"not null;default:0"`
}

func (c ProfileColumns) toDomain() partner.Profile {
	return partner.Profile{
		Name:     c.Name,
		Email:    c.Email,
		Contact:  c.Contact,
		Address:  c.Address,
		Location: partner.Location{Lat: c.Latitude, Lng: c.Longitude},
	}
}

func profileColumns(p partner.Profile) ProfileColumns {
	return ProfileColumns{
		Name:      p.Name,
		Email:     p.Email,
		Contact:   p.Contact,
		Address:   p.Address,
		Latitude:  p.Location.Lat,
		Longitude: p.Location.Lng,
	}
}

// SupplierModel is the persistence model for the Supplier aggregate
type SupplierModel struct {
	AggregateModel
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	ProfileColumns
}

// TableName returns the table name for GORM
func (SupplierModel) TableName() string {
	return "suppliers"
}

// ToDomain converts the model to a domain Supplier
func (m *SupplierModel) ToDomain() *partner.Supplier {
	return &partner.Supplier{
		BaseAggregateRoot: m.AggregateRoot(),
		UserID:            m.UserID,
		Profile:           m.ProfileColumns.toDomain(),
	}
}

// FromDomain populates the model from a domain Supplier
func (m *SupplierModel) FromDomain(s *partner.Supplier) {
	m.FromDomainAggregateRoot(s.BaseAggregateRoot)
	m.UserID = s.UserID
	m.ProfileColumns = profileColumns(s.Profile)
}

// SupplierModelFromDomain creates a new model from a domain Supplier
func SupplierModelFromDomain(s *partner.Supplier) *SupplierModel {
	m := &SupplierModel{}
	m.FromDomain(s)
	return m
}

// SupermarketModel is the persistence model for the Supermarket aggregate
type SupermarketModel struct {
	AggregateModel
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	ProfileColumns
}

// TableName returns the table name for GORM
func (SupermarketModel) TableName() string {
	return "supermarkets"
}

// ToDomain converts the model to a domain Supermarket
func (m *SupermarketModel) ToDomain() *partner.Supermarket {
	return &partner.Supermarket{
		BaseAggregateRoot: m.AggregateRoot(),
		UserID:            m.UserID,
		Profile:           m.ProfileColumns.toDomain(),
	}
}

// FromDomain populates the model from a domain Supermarket
func (m *SupermarketModel) FromDomain(s *partner.Supermarket) {
	m.FromDomainAggregateRoot(s.BaseAggregateRoot)
	m.UserID = s.UserID
	m.ProfileColumns = profileColumns(s.Profile)
}

// SupermarketModelFromDomain creates a new model from a domain Supermarket
func SupermarketModelFromDomain(s *partner.Supermarket) *SupermarketModel {
	m := &SupermarketModel{}
	m.FromDomain(s)
	return m
}
