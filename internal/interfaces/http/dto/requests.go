package dto

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/swiftora/marketplace/internal/domain/ordering"
	"github.com/swiftora/marketplace/internal/domain/shared"
)

// Request bodies accept every field spelling the dashboard has sent. Each
// one exposes a method that collapses the aliases, so handlers and services
// only ever see one name per field.

// pickID returns the first non-nil id
func pickID(ids ...uuid.UUID) uuid.UUID {
	for _, id := range ids {
		if id != uuid.Nil {
			return id
		}
	}
	return uuid.Nil
}

func pickString(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}

func pickQuantity(values ...*Quantity) *Quantity {
	for _, v := range values {
		if v != nil {
			return v
		}
	}
	return nil
}

// Quantity is an order quantity as the client sent it: a JSON number or a
// numeric string. Decoding never fails, so text like "abc" or a fraction
// reaches the quantity rule instead of failing the whole body.
type Quantity struct {
	raw string
}

// UnmarshalJSON keeps the literal, unquoting strings
func (q *Quantity) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if unquoted, err := strconv.Unquote(raw); err == nil {
		raw = strings.TrimSpace(unquoted)
	}
	q.raw = raw
	return nil
}

// Int parses the quantity as a whole number
func (q Quantity) Int() (int, error) {
	n, err := strconv.Atoi(q.raw)
	if err != nil {
		return 0, shared.ErrInvalidQuantity.WithMessage("Quantity must be a whole number, got " + strconv.Quote(q.raw))
	}
	return n, nil
}

// RegisterRequest creates an account and its supplier or supermarket
type RegisterRequest struct {
	Email     string  `json:"email" binding:"required,email,max=255"`
	Password  string  `json:"password" binding:"required,min=8,max=128"`
	Name      string  `json:"name" binding:"required,min=1,max=200"`
	Role      string  `json:"role" binding:"required,oneof=supplier supermarket"`
	Contact   string  `json:"contact" binding:"max=50"`
	Address   string  `json:"address" binding:"max=500"`
	Latitude  float64 `json:"latitude" binding:"min=-90,max=90"`
	Longitude float64 `json:"longitude" binding:"min=-180,max=180"`
}

// LoginRequest represents the request body for login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RequestTieUpRequest names the supplier a supermarket wants to work with
type RequestTieUpRequest struct {
	SupplierID      uuid.UUID `json:"supplierId"`
	SupplierIDSnake uuid.UUID `json:"supplier_id"`
}

// Supplier returns the requested supplier
func (r RequestTieUpRequest) Supplier() (uuid.UUID, error) {
	id := pickID(r.SupplierID, r.SupplierIDSnake)
	if id == uuid.Nil {
		return uuid.Nil, shared.ErrInvalidInput.WithMessage("supplierId is required")
	}
	return id, nil
}

// AcceptTieUpRequest identifies the tie-up a supplier accepts
type AcceptTieUpRequest struct {
	SupermarketID      uuid.UUID `json:"supermarketId"`
	SupermarketIDSnake uuid.UUID `json:"supermarket_id"`
	SupplierID         uuid.UUID `json:"supplierId"`
	SupplierIDSnake    uuid.UUID `json:"supplier_id"`
}

// Pair returns the supermarket and supplier of the tie-up
func (r AcceptTieUpRequest) Pair() (supermarketID, supplierID uuid.UUID, err error) {
	supermarketID = pickID(r.SupermarketID, r.SupermarketIDSnake)
	supplierID = pickID(r.SupplierID, r.SupplierIDSnake)
	if supermarketID == uuid.Nil || supplierID == uuid.Nil {
		return uuid.Nil, uuid.Nil, shared.ErrInvalidInput.WithMessage("supermarketId and supplierId are required")
	}
	return supermarketID, supplierID, nil
}

// PlaceOrderRequest is a supermarket's order for one product
type PlaceOrderRequest struct {
	SupermarketID      uuid.UUID `json:"supermarketId"`
	SupermarketIDSnake uuid.UUID `json:"supermarket_id"`
	SupplierID         uuid.UUID `json:"supplierId"`
	SupplierIDSnake    uuid.UUID `json:"supplier_id"`
	ProductID          uuid.UUID `json:"productId"`
	ProductIDSnake     uuid.UUID `json:"product_id"`
	SKU                string    `json:"sku" binding:"max=100"`
	OrderQuantity      *Quantity `json:"orderQuantity" swaggertype:"integer"`
	OrderQuantitySnake *Quantity `json:"order_quantity" swaggertype:"integer"`
	Quantity           *Quantity `json:"quantity" swaggertype:"integer"`
}

// PlaceOrderInput is a PlaceOrderRequest with its aliases collapsed
type PlaceOrderInput struct {
	SupermarketID uuid.UUID
	SupplierID    uuid.UUID
	ProductID     uuid.UUID
	SKU           string
	Quantity      int
}

// Normalize collapses aliases. A missing quantity is reported as zero and
// left to the quantity rule; a non-numeric one is ErrInvalidQuantity.
func (r PlaceOrderRequest) Normalize() (PlaceOrderInput, error) {
	in := PlaceOrderInput{
		SupermarketID: pickID(r.SupermarketID, r.SupermarketIDSnake),
		SupplierID:    pickID(r.SupplierID, r.SupplierIDSnake),
		ProductID:     pickID(r.ProductID, r.ProductIDSnake),
		SKU:           strings.TrimSpace(r.SKU),
	}
	if q := pickQuantity(r.OrderQuantity, r.OrderQuantitySnake, r.Quantity); q != nil {
		n, err := q.Int()
		if err != nil {
			return PlaceOrderInput{}, err
		}
		in.Quantity = n
	}
	if in.SupplierID == uuid.Nil || in.ProductID == uuid.Nil {
		return PlaceOrderInput{}, shared.ErrInvalidInput.WithMessage("supplierId and productId are required")
	}
	return in, nil
}

// UpdateOrderStatusRequest moves an order to its next status
type UpdateOrderStatusRequest struct {
	OrderStatus      string `json:"order_status" binding:"omitempty,order_status"`
	OrderStatusCamel string `json:"orderStatus" binding:"omitempty,order_status"`
	Status           string `json:"status" binding:"omitempty,order_status"`
}

// Target returns the requested status
func (r UpdateOrderStatusRequest) Target() (ordering.Status, error) {
	raw := strings.ToLower(pickString(r.OrderStatus, r.OrderStatusCamel, r.Status))
	if raw == "" {
		return "", shared.ErrInvalidInput.WithMessage("order_status is required")
	}
	status := ordering.Status(raw)
	if !status.IsValid() {
		return "", shared.ErrInvalidInput.WithMessage("Unknown order status: " + raw)
	}
	return status, nil
}

// UpdateSupermarketRequest edits a supermarket's profile. Coordinates are
// optional and must be given together.
type UpdateSupermarketRequest struct {
	Name      string   `json:"name" binding:"required,min=1,max=200"`
	Contact   string   `json:"contact" binding:"max=50"`
	Address   string   `json:"address" binding:"max=500"`
	Latitude  *float64 `json:"latitude" binding:"omitempty,min=-90,max=90"`
	Longitude *float64 `json:"longitude" binding:"omitempty,min=-180,max=180"`
}

// AddProductRequest is a new catalog entry
type AddProductRequest struct {
	SKU              string          `json:"sku" binding:"required,min=1,max=100"`
	ProductName      string          `json:"product_name" binding:"required_without=ProductNameCamel,max=200"`
	ProductNameCamel string          `json:"productName" binding:"max=200"`
	Company          string          `json:"company" binding:"max=200"`
	Barcode          string          `json:"barcode" binding:"max=50"`
	Category         string          `json:"category" binding:"max=100"`
	HSNNo            string          `json:"hsn_no" binding:"max=20"`
	Unit             string          `json:"unit" binding:"max=20"`
	CostPrice        decimal.Decimal `json:"cost_price"`
	PurchasePrice    decimal.Decimal `json:"purchase_price"`
	SalesPrice       decimal.Decimal `json:"sales_price"`
	MRPPrice         decimal.Decimal `json:"mrp_price"`
	Discount         decimal.Decimal `json:"discount"`
	Stock            int             `json:"stock" binding:"min=0"`
	ExpiryDate       *time.Time      `json:"expiry_date"`
}

// Name returns the product name under either spelling
func (r AddProductRequest) Name() string {
	return pickString(r.ProductName, r.ProductNameCamel)
}
