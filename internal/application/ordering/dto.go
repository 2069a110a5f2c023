package ordering

import (
	"time"

	"github.com/google/uuid"
	appcatalog "github.com/swiftora/marketplace/internal/application/catalog"
	"github.com/swiftora/marketplace/internal/domain/ordering"
)

// PlaceOrderRequest is a supermarket's order for one product
type PlaceOrderRequest struct {
	SupermarketID uuid.UUID
	SupplierID    uuid.UUID
	ProductID     uuid.UUID
	SKU           string
	Quantity      int
}

// OrderResponse is an order with its tracking label
type OrderResponse struct {
	ID            uuid.UUID       `json:"order_id"`
	SupermarketID uuid.UUID       `json:"supermarket_id"`
	SupplierID    uuid.UUID       `json:"supplier_id"`
	ProductID     uuid.UUID       `json:"product_id"`
	ProductName   string          `json:"product_name,omitempty"`
	SKU           string          `json:"sku"`
	Quantity      int             `json:"order_quantity"`
	Status        ordering.Status `json:"order_status"`
	OrderDate     time.Time       `json:"order_date"`
	DeliveryDate  *time.Time      `json:"delivery_date,omitempty"`
	DisplayLabel  string          `json:"display_label"`
	Version       int             `json:"version"`
}

// SupplierSummary names a supplier in the ordering view
type SupplierSummary struct {
	ID      uuid.UUID `json:"supplier_id"`
	Name    string    `json:"name"`
	Contact string    `json:"contact,omitempty"`
}

// ProductsForOrderingResponse lists what a supermarket may order, keyed to
// the suppliers it has an accepted tie-up with
type ProductsForOrderingResponse struct {
	Products    []appcatalog.ProductResponse `json:"products"`
	SupplierMap map[string]SupplierSummary   `json:"supplierMap"`
}

// ToOrderResponse converts a domain order
func ToOrderResponse(o *ordering.Order) OrderResponse {
	return OrderResponse{
		ID:            o.ID,
		SupermarketID: o.SupermarketID,
		SupplierID:    o.SupplierID,
		ProductID:     o.ProductID,
		SKU:           o.SKU,
		Quantity:      o.Quantity,
		Status:        o.Status,
		OrderDate:     o.OrderDate,
		DeliveryDate:  o.DeliveryDate,
		DisplayLabel:  o.Label(),
		Version:       o.Version,
	}
}

// ToOrderResponses converts orders, filling product names from names
func ToOrderResponses(orders []ordering.Order, names map[uuid.UUID]string) []OrderResponse {
	out := make([]OrderResponse, len(orders))
	for i := range orders {
		out[i] = ToOrderResponse(&orders[i])
		out[i].ProductName = names[orders[i].ProductID]
	}
	return out
}
