package ordering

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/swiftora/marketplace/internal/domain/shared"
)

// Order is a supermarket's purchase of one product from one supplier.
// It is created by the supermarket and only the owning supplier advances
// it through pending, accepted, shipped and delivered.
type Order struct {
	shared.BaseAggregateRoot
	SupermarketID uuid.UUID
	SupplierID    uuid.UUID
	ProductID     uuid.UUID
	SKU           string
	Quantity      int
	Status        Status
	OrderDate     time.Time
	DeliveryDate  *time.Time
}

// PlaceOrderParams holds what a supermarket submits when ordering
type PlaceOrderParams struct {
	SupermarketID uuid.UUID
	SupplierID    uuid.UUID
	ProductID     uuid.UUID
	SKU           string
	Quantity      int
}

// PlaceOrder creates a new pending order
func PlaceOrder(p PlaceOrderParams, now time.Time) (*Order, error) {
	if p.Quantity <= 0 {
		return nil, shared.ErrInvalidQuantity
	}
	if p.SupermarketID == uuid.Nil || p.SupplierID == uuid.Nil || p.ProductID == uuid.Nil {
		return nil, shared.ErrInvalidInput.WithMessage("Supermarket, supplier and product are required")
	}
	sku := strings.TrimSpace(p.SKU)
	if sku == "" {
		return nil, shared.ErrInvalidInput.WithMessage("SKU cannot be empty")
	}

	o := &Order{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		SupermarketID:     p.SupermarketID,
		SupplierID:        p.SupplierID,
		ProductID:         p.ProductID,
		SKU:               sku,
		Quantity:          p.Quantity,
		Status:            StatusPending,
		OrderDate:         now,
	}
	o.CreatedAt = now
	o.UpdatedAt = now

	o.AddDomainEvent(NewOrderPlacedEvent(o))

	return o, nil
}

// Advance moves the order to target. Only the single next lifecycle state is
// accepted. Entering delivered stamps the delivery date.
func (o *Order) Advance(target Status, now time.Time) error {
	if !target.IsValid() {
		return shared.ErrIllegalTransition.WithMessage("Unknown order status: " + target.String())
	}
	if !o.Status.CanTransitionTo(target) {
		return shared.ErrIllegalTransition.WithMessage(
			"Cannot change order status from " + o.Status.String() + " to " + target.String())
	}

	from := o.Status
	o.Status = target
	if target == StatusDelivered {
		delivered := now
		if delivered.Before(o.OrderDate) {
			delivered = o.OrderDate
		}
		o.DeliveryDate = &delivered
	}
	o.Modified(now)

	o.AddDomainEvent(NewOrderStatusChangedEvent(o, from))
	if target == StatusDelivered {
		o.AddDomainEvent(NewOrderDeliveredEvent(o))
	}

	return nil
}

// OwnedBySupplier reports whether supplierID may advance this order
func (o *Order) OwnedBySupplier(supplierID uuid.UUID) bool {
	return o.SupplierID == supplierID
}

// PlacedBy reports whether the order belongs to the supermarket
func (o *Order) PlacedBy(supermarketID uuid.UUID) bool {
	return o.SupermarketID == supermarketID
}

// Label returns the tracking label for the current status
func (o *Order) Label() string {
	return DisplayLabel(o.Status, o.DeliveryDate)
}
