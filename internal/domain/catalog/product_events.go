package catalog

import (
	"github.com/google/uuid"
	"github.com/swiftora/marketplace/internal/domain/shared"
)

// Aggregate type constant
const AggregateTypeProduct = "Product"

// Event type constants
const (
	EventTypeProductAdded        = "ProductAdded"
	EventTypeProductStockChanged = "ProductStockChanged"
)

// ProductAddedEvent is published when a supplier adds a product to its catalog
type ProductAddedEvent struct {
	shared.BaseDomainEvent
	ProductID  uuid.UUID `json:"product_id"`
	SupplierID uuid.UUID `json:"supplier_id"`
	SKU        string    `json:"sku"`
	Stock      int       `json:"stock"`
}

// NewProductAddedEvent creates a new ProductAddedEvent
func NewProductAddedEvent(p *Product) *ProductAddedEvent {
	return &ProductAddedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeProductAdded, AggregateTypeProduct, p.ID),
		ProductID:       p.ID,
		SupplierID:      p.SupplierID,
		SKU:             p.SKU,
		Stock:           p.Stock,
	}
}

// ProductStockChangedEvent is published when stock moves
type ProductStockChangedEvent struct {
	shared.BaseDomainEvent
	ProductID uuid.UUID `json:"product_id"`
	Delta     int       `json:"delta"`
	Stock     int       `json:"stock"`
}

// NewProductStockChangedEvent creates a new ProductStockChangedEvent
func NewProductStockChangedEvent(p *Product, delta int) *ProductStockChangedEvent {
	return &ProductStockChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeProductStockChanged, AggregateTypeProduct, p.ID),
		ProductID:       p.ID,
		Delta:           delta,
		Stock:           p.Stock,
	}
}
