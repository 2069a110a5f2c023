package marketplaceapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/swiftora/marketplace/internal/domain/catalog"
	"github.com/swiftora/marketplace/internal/domain/identity"
	"github.com/swiftora/marketplace/internal/domain/ordering"
	"github.com/swiftora/marketplace/internal/domain/shared"
)

// PlaceOrderInput describes an order to submit. KnownStock is the stock the
// caller last saw, or nil when unknown; the server has the final word.
type PlaceOrderInput struct {
	SupermarketID uuid.UUID
	SupplierID    uuid.UUID
	ProductID     uuid.UUID
	SKU           string
	Quantity      int
	KnownStock    *int
}

// PlaceOrder submits an order after checking the quantity locally
func (c *Client) PlaceOrder(ctx context.Context, session identity.Session, in PlaceOrderInput) (OrderSnapshot, error) {
	if in.Quantity <= 0 {
		return OrderSnapshot{}, shared.ErrInvalidQuantity
	}
	if in.KnownStock != nil {
		if err := catalog.CheckOrderQuantity(in.Quantity, *in.KnownStock); err != nil {
			return OrderSnapshot{}, err
		}
	}
	if in.SupplierID == uuid.Nil || in.ProductID == uuid.Nil {
		return OrderSnapshot{}, shared.ErrInvalidInput.WithMessage("Supplier ID and product ID are required")
	}

	var out wireOrder
	err := c.do(ctx, session, call{
		method: http.MethodPost,
		path:   "/orders/placeorder",
		body: wirePlaceOrder{
			SupermarketID: in.SupermarketID,
			SupplierID:    in.SupplierID,
			ProductID:     in.ProductID,
			SKU:           strings.TrimSpace(in.SKU),
			Quantity:      in.Quantity,
		},
	}, &out)
	if err != nil {
		return OrderSnapshot{}, err
	}
	return out.toSnapshot()
}

// SupplierOrders lists orders addressed to the session's supplier
func (c *Client) SupplierOrders(ctx context.Context, session identity.Session) ([]OrderSnapshot, error) {
	var out []wireOrder
	if err := c.do(ctx, session, call{method: http.MethodGet, path: "/orders/getorder"}, &out); err != nil {
		return nil, err
	}
	return toSnapshots(out)
}

// SupermarketOrders lists orders placed by a supermarket
func (c *Client) SupermarketOrders(ctx context.Context, session identity.Session, supermarketID uuid.UUID) ([]OrderSnapshot, error) {
	var out []wireOrder
	err := c.do(ctx, session, call{
		method: http.MethodGet,
		path:   "/orders/supermarket/" + supermarketID.String(),
	}, &out)
	if err != nil {
		return nil, err
	}
	return toSnapshots(out)
}

// UpdateOrderStatus moves an order to target. Unknown targets are rejected
// before any request is sent.
func (c *Client) UpdateOrderStatus(ctx context.Context, session identity.Session, orderID uuid.UUID, target ordering.Status) (OrderSnapshot, error) {
	if !target.IsValid() {
		return OrderSnapshot{}, shared.ErrInvalidInput.WithMessage("Unknown order status: " + target.String())
	}
	var out wireOrder
	err := c.do(ctx, session, call{
		method: http.MethodPut,
		path:   "/orders/" + orderID.String() + "/status",
		body:   wireOrderStatusUpdate{OrderStatus: target.String()},
	}, &out)
	if err != nil {
		return OrderSnapshot{}, err
	}
	return out.toSnapshot()
}
