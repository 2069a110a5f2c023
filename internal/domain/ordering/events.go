package ordering

import (
	"time"

	"github.com/google/uuid"
	"github.com/swiftora/marketplace/internal/domain/shared"
)

// Aggregate type constant
const AggregateTypeOrder = "Order"

// Event type constants
const (
	EventTypeOrderPlaced        = "OrderPlaced"
	EventTypeOrderStatusChanged = "OrderStatusChanged"
	EventTypeOrderDelivered     = "OrderDelivered"
)

// OrderPlacedEvent is published when a supermarket places an order
type OrderPlacedEvent struct {
	shared.BaseDomainEvent
	OrderID       uuid.UUID `json:"order_id"`
	SupermarketID uuid.UUID `json:"supermarket_id"`
	SupplierID    uuid.UUID `json:"supplier_id"`
	ProductID     uuid.UUID `json:"product_id"`
	SKU           string    `json:"sku"`
	Quantity      int       `json:"order_quantity"`
}

// NewOrderPlacedEvent creates a new OrderPlacedEvent
func NewOrderPlacedEvent(o *Order) *OrderPlacedEvent {
	return &OrderPlacedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOrderPlaced, AggregateTypeOrder, o.ID),
		OrderID:         o.ID,
		SupermarketID:   o.SupermarketID,
		SupplierID:      o.SupplierID,
		ProductID:       o.ProductID,
		SKU:             o.SKU,
		Quantity:        o.Quantity,
	}
}

// OrderStatusChangedEvent is published on every lifecycle step
type OrderStatusChangedEvent struct {
	shared.BaseDomainEvent
	OrderID    uuid.UUID `json:"order_id"`
	SupplierID uuid.UUID `json:"supplier_id"`
	From       Status    `json:"from"`
	To         Status    `json:"to"`
}

// NewOrderStatusChangedEvent creates a new OrderStatusChangedEvent
func NewOrderStatusChangedEvent(o *Order, from Status) *OrderStatusChangedEvent {
	return &OrderStatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOrderStatusChanged, AggregateTypeOrder, o.ID),
		OrderID:         o.ID,
		SupplierID:      o.SupplierID,
		From:            from,
		To:              o.Status,
	}
}

// OrderDeliveredEvent is published when an order reaches delivered
type OrderDeliveredEvent struct {
	shared.BaseDomainEvent
	OrderID       uuid.UUID `json:"order_id"`
	SupermarketID uuid.UUID `json:"supermarket_id"`
	ProductID     uuid.UUID `json:"product_id"`
	Quantity      int       `json:"order_quantity"`
	OrderDate     time.Time `json:"order_date"`
	DeliveryDate  time.Time `json:"delivery_date"`
}

// NewOrderDeliveredEvent creates a new OrderDeliveredEvent
func NewOrderDeliveredEvent(o *Order) *OrderDeliveredEvent {
	e := &OrderDeliveredEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOrderDelivered, AggregateTypeOrder, o.ID),
		OrderID:         o.ID,
		SupermarketID:   o.SupermarketID,
		ProductID:       o.ProductID,
		Quantity:        o.Quantity,
		OrderDate:       o.OrderDate,
	}
	if o.DeliveryDate != nil {
		e.DeliveryDate = *o.DeliveryDate
	}
	return e
}
