package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/swiftora/marketplace/internal/domain/ordering"
)

// OrderModel is the persistence model for the Order aggregate
type OrderModel struct {
	AggregateModel
	SupermarketID uuid.UUID `gorm:"type:uuid;not null;index"`
	SupplierID    uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID     uuid.UUID `gorm:"type:uuid;not null"`
	SKU           string    `gorm:"column:sku;type:varchar(64);not null"`
	Quantity      int       `gorm:"column:order_quantity;not null;check:order_quantity > 0"`
	Status        string    `gorm:"column:order_status;type:varchar(20);not null;default:'pending'"`
	OrderDate     time.Time `gorm:"not null;index"`
	DeliveryDate  *time.Time
}

// TableName returns the table name for GORM
func (OrderModel) TableName() string {
	return "orders"
}

// ToDomain converts the model to a domain Order
func (m *OrderModel) ToDomain() *ordering.Order {
	return &ordering.Order{
		BaseAggregateRoot: m.AggregateRoot(),
		SupermarketID:     m.SupermarketID,
		SupplierID:        m.SupplierID,
		ProductID:         m.ProductID,
		SKU:               m.SKU,
		Quantity:          m.Quantity,
		Status:            ordering.Status(m.Status),
		OrderDate:         m.OrderDate,
		DeliveryDate:      m.DeliveryDate,
	}
}

// FromDomain populates the model from a domain Order
func (m *OrderModel) FromDomain(o *ordering.Order) {
	m.FromDomainAggregateRoot(o.BaseAggregateRoot)
	m.SupermarketID = o.SupermarketID
	m.SupplierID = o.SupplierID
	m.ProductID = o.ProductID
	m.SKU = o.SKU
	m.Quantity = o.Quantity
	m.Status = o.Status.String()
	m.OrderDate = o.OrderDate
	m.DeliveryDate = o.DeliveryDate
}

// OrderModelFromDomain creates a new model from a domain Order
func OrderModelFromDomain(o *ordering.Order) *OrderModel {
	m := &OrderModel{}
	m.FromDomain(o)
	return m
}

// All returns every model, in dependency order, for AutoMigrate in tests
func All() []any {
	return []any{
		&UserModel{},
		&SupplierModel{},
		&SupermarketModel{},
		&ProductModel{},
		&TieUpModel{},
		&OrderModel{},
	}
}
