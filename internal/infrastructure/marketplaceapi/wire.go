package marketplaceapi

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/swiftora/marketplace/internal/domain/identity"
	"github.com/swiftora/marketplace/internal/domain/ordering"
	"github.com/swiftora/marketplace/internal/domain/partner"
	"github.com/swiftora/marketplace/internal/domain/shared"
	"github.com/swiftora/marketplace/internal/domain/tieup"
)

// Wire types accept every field spelling the API has used. They are
// converted to one canonical shape here and never leave this package.

// firstNonEmpty returns the first non-blank value
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}

// parseID parses the first non-blank candidate, or returns uuid.Nil
func parseID(candidates ...string) uuid.UUID {
	id, err := uuid.Parse(firstNonEmpty(candidates...))
	if err != nil {
		return uuid.Nil
	}
	return id
}

func firstTime(candidates ...*time.Time) *time.Time {
	for _, t := range candidates {
		if t != nil && !t.IsZero() {
			return t
		}
	}
	return nil
}

func firstInt(candidates ...*int) (int, bool) {
	for _, n := range candidates {
		if n != nil {
			return *n, true
		}
	}
	return 0, false
}

type wireOrder struct {
	OrderNumber        string     `json:"orderNumber"`
	OrderIDSnake       string     `json:"order_id"`
	ID                 string     `json:"id"`
	SupermarketID      string     `json:"supermarketId"`
	SupermarketIDSnake string     `json:"supermarket_id"`
	SupplierID         string     `json:"supplierId"`
	SupplierIDSnake    string     `json:"supplier_id"`
	ProductID          string     `json:"productId"`
	ProductIDSnake     string     `json:"product_id"`
	ProductName        string     `json:"productName"`
	ProductNameSnake   string     `json:"product_name"`
	SKU                string     `json:"sku"`
	OrderQuantity      *int       `json:"orderQuantity"`
	OrderQuantitySnake *int       `json:"order_quantity"`
	Quantity           *int       `json:"quantity"`
	OrderStatus        string     `json:"orderStatus"`
	OrderStatusSnake   string     `json:"order_status"`
	OrderDate          *time.Time `json:"orderDate"`
	OrderDateSnake     *time.Time `json:"order_date"`
	DeliveryDate       *time.Time `json:"deliveryDate"`
	DeliveryDateSnake  *time.Time `json:"delivery_date"`
	Version            int        `json:"version"`
}

// OrderSnapshot is an order as last read from the API
type OrderSnapshot struct {
	ordering.Order
	ProductName string
}

func (w wireOrder) toSnapshot() (OrderSnapshot, error) {
	id := parseID(w.OrderNumber, w.OrderIDSnake, w.ID)
	if id == uuid.Nil {
		return OrderSnapshot{}, shared.ErrUpstreamUnavailable.WithMessage("Order without a valid identifier in response")
	}
	qty, _ := firstInt(w.OrderQuantity, w.OrderQuantitySnake, w.Quantity)

	o := ordering.Order{
		SupermarketID: parseID(w.SupermarketID, w.SupermarketIDSnake),
		SupplierID:    parseID(w.SupplierID, w.SupplierIDSnake),
		ProductID:     parseID(w.ProductID, w.ProductIDSnake),
		SKU:           strings.TrimSpace(w.SKU),
		Quantity:      qty,
		Status:        ordering.Status(strings.ToLower(firstNonEmpty(w.OrderStatus, w.OrderStatusSnake))),
		DeliveryDate:  firstTime(w.DeliveryDate, w.DeliveryDateSnake),
	}
	o.ID = id
	o.Version = w.Version
	if od := firstTime(w.OrderDate, w.OrderDateSnake); od != nil {
		o.OrderDate = *od
		o.CreatedAt = *od
	}

	return OrderSnapshot{
		Order:       o,
		ProductName: firstNonEmpty(w.ProductName, w.ProductNameSnake),
	}, nil
}

func toSnapshots(ws []wireOrder) ([]OrderSnapshot, error) {
	out := make([]OrderSnapshot, 0, len(ws))
	for _, w := range ws {
		s, err := w.toSnapshot()
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// wireOrderStatusUpdate is the status change body; the server accepts
// either spelling and this client sends the canonical one
type wireOrderStatusUpdate struct {
	OrderStatus string `json:"order_status"`
}

type wirePlaceOrder struct {
	SupermarketID uuid.UUID `json:"supermarket_id"`
	SupplierID    uuid.UUID `json:"supplier_id"`
	ProductID     uuid.UUID `json:"product_id"`
	SKU           string    `json:"sku"`
	Quantity      int       `json:"order_quantity"`
}

// Party is a supplier or supermarket as listed by the API
type Party struct {
	ID             uuid.UUID
	Name           string
	Email          string
	Contact        string
	Address        string
	DisplayAddress string
	Location       partner.Location
}

type wireParty struct {
	SupplierID         string  `json:"supplierId"`
	SupplierIDSnake    string  `json:"supplier_id"`
	SupermarketID      string  `json:"supermarketId"`
	SupermarketIDSnake string  `json:"supermarket_id"`
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	Email              string  `json:"email"`
	Contact            string  `json:"contact"`
	Address            string  `json:"address"`
	DisplayAddress     string  `json:"display_address"`
	Latitude           float64 `json:"latitude"`
	Longitude          float64 `json:"longitude"`
}

func (w wireParty) toParty() Party {
	return Party{
		ID:             parseID(w.SupplierID, w.SupplierIDSnake, w.SupermarketID, w.SupermarketIDSnake, w.ID),
		Name:           strings.TrimSpace(w.Name),
		Email:          w.Email,
		Contact:        w.Contact,
		Address:        w.Address,
		DisplayAddress: w.DisplayAddress,
		Location:       partner.Location{Lat: w.Latitude, Lng: w.Longitude},
	}
}

// TieUp is a tie-up as returned by the API
type TieUp struct {
	ID            uuid.UUID
	SupplierID    uuid.UUID
	SupermarketID uuid.UUID
	Status        tieup.Status
	RequestedAt   time.Time
	AcceptedAt    *time.Time
}

type wireTieUp struct {
	TieUpID            string       `json:"tie_up_id"`
	ID                 string       `json:"id"`
	SupplierID         string       `json:"supplierId"`
	SupplierIDSnake    string       `json:"supplier_id"`
	SupermarketID      string       `json:"supermarketId"`
	SupermarketIDSnake string       `json:"supermarket_id"`
	Status             tieup.Status `json:"status"`
	RequestedAt        *time.Time   `json:"requested_at"`
	AcceptedAt         *time.Time   `json:"accepted_at"`
}

func (w wireTieUp) toTieUp() TieUp {
	t := TieUp{
		ID:            parseID(w.TieUpID, w.ID),
		SupplierID:    parseID(w.SupplierID, w.SupplierIDSnake),
		SupermarketID: parseID(w.SupermarketID, w.SupermarketIDSnake),
		Status:        w.Status,
		AcceptedAt:    w.AcceptedAt,
	}
	if w.RequestedAt != nil {
		t.RequestedAt = *w.RequestedAt
	}
	return t
}

type wireTieUpStatus struct {
	TieUp  *wireTieUp    `json:"tieUp"`
	Status *tieup.Status `json:"status"`
}

func (w wireTieUpStatus) status() tieup.Status {
	switch {
	case w.Status != nil:
		return *w.Status
	case w.TieUp != nil:
		return w.TieUp.Status
	default:
		return tieup.NotRequested()
	}
}

// AcceptedTieUp is an accepted tie-up with its supplier
type AcceptedTieUp struct {
	TieUp    TieUp
	Supplier Party
}

type wireAcceptedTieUp struct {
	TieUp    wireTieUp `json:"tieUp"`
	Supplier wireParty `json:"supplier"`
}

// TieUpRequest is a tie-up addressed to a supplier with its supermarket
type TieUpRequest struct {
	TieUp       TieUp
	Supermarket Party
}

type wireTieUpRequest struct {
	TieUp       wireTieUp `json:"tieUp"`
	Supermarket wireParty `json:"supermarket"`
}

// Product is a catalog entry as returned by the API
type Product struct {
	ID         uuid.UUID
	SupplierID uuid.UUID
	SKU        string
	Name       string
	Unit       string
	SalesPrice decimal.Decimal
	NetPrice   decimal.Decimal
	MRPPrice   decimal.Decimal
	Stock      int
	StockLevel string
	Expired    bool
}

type wireProduct struct {
	ProductID        string          `json:"product_id"`
	ID               string          `json:"id"`
	SupplierID       string          `json:"supplier_id"`
	SupplierIDCamel  string          `json:"supplierId"`
	SKU              string          `json:"sku"`
	ProductName      string          `json:"product_name"`
	ProductNameCamel string          `json:"productName"`
	Unit             string          `json:"unit"`
	SalesPrice       decimal.Decimal `json:"sales_price"`
	NetSalesPrice    decimal.Decimal `json:"net_sales_price"`
	MRPPrice         decimal.Decimal `json:"mrp_price"`
	Stock            int             `json:"stock"`
	StockLevel       string          `json:"stock_level"`
	Expired          bool            `json:"expired"`
}

func (w wireProduct) toProduct() Product {
	return Product{
		ID:         parseID(w.ProductID, w.ID),
		SupplierID: parseID(w.SupplierID, w.SupplierIDCamel),
		SKU:        strings.TrimSpace(w.SKU),
		Name:       firstNonEmpty(w.ProductName, w.ProductNameCamel),
		Unit:       w.Unit,
		SalesPrice: w.SalesPrice,
		NetPrice:   w.NetSalesPrice,
		MRPPrice:   w.MRPPrice,
		Stock:      w.Stock,
		StockLevel: w.StockLevel,
		Expired:    w.Expired,
	}
}

// OrderingCatalog lists orderable products and the suppliers they belong to
type OrderingCatalog struct {
	Products  []Product
	Suppliers map[uuid.UUID]Party
}

type wireOrderingCatalog struct {
	Products    []wireProduct        `json:"products"`
	SupplierMap map[string]wireParty `json:"supplierMap"`
}

type wireLogin struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
	User        struct {
		ID      string        `json:"id"`
		ActorID string        `json:"actor_id"`
		Role    identity.Role `json:"role"`
	} `json:"user"`
}

// Profile is the caller's identity as resolved by the server
type Profile struct {
	UserID   uuid.UUID
	ActorID  uuid.UUID
	Role     identity.Role
	Name     string
	Email    string
	Contact  string
	Address  string
	Location partner.Location
}

type wireProfile struct {
	UserID    string        `json:"user_id"`
	ActorID   string        `json:"actor_id"`
	Role      identity.Role `json:"role"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Contact   string        `json:"contact"`
	Address   string        `json:"address"`
	Latitude  float64       `json:"latitude"`
	Longitude float64       `json:"longitude"`
}

func (w wireProfile) toProfile() Profile {
	return Profile{
		UserID:   parseID(w.UserID),
		ActorID:  parseID(w.ActorID),
		Role:     w.Role,
		Name:     w.Name,
		Email:    w.Email,
		Contact:  w.Contact,
		Address:  w.Address,
		Location: partner.Location{Lat: w.Latitude, Lng: w.Longitude},
	}
}
