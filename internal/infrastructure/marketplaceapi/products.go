package marketplaceapi

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/swiftora/marketplace/internal/domain/identity"
	"go.uber.org/zap"
)

// ProductsForOrdering lists the products a supermarket may order, drawn from
// its accepted suppliers
func (c *Client) ProductsForOrdering(ctx context.Context, session identity.Session, supermarketID uuid.UUID) (OrderingCatalog, error) {
	var out wireOrderingCatalog
	err := c.do(ctx, session, call{
		method: http.MethodGet,
		path:   "/orders/by-supermarket/" + supermarketID.String(),
	}, &out)
	if err != nil {
		return OrderingCatalog{}, err
	}

	cat := OrderingCatalog{
		Products:  make([]Product, 0, len(out.Products)),
		Suppliers: make(map[uuid.UUID]Party, len(out.SupplierMap)),
	}
	for _, p := range out.Products {
		cat.Products = append(cat.Products, p.toProduct())
	}
	for key, w := range out.SupplierMap {
		party := w.toParty()
		if party.ID == uuid.Nil {
			party.ID = parseID(key)
		}
		if party.ID == uuid.Nil {
			c.logger.Warn("skipping supplier with unparseable id", zap.String("key", key))
			continue
		}
		cat.Suppliers[party.ID] = party
	}
	return cat, nil
}

// OwnProducts lists the session supplier's catalog
func (c *Client) OwnProducts(ctx context.Context, session identity.Session) ([]Product, error) {
	var out []wireProduct
	if err := c.do(ctx, session, call{method: http.MethodGet, path: "/products/all"}, &out); err != nil {
		return nil, err
	}
	products := make([]Product, 0, len(out))
	for _, w := range out {
		products = append(products, w.toProduct())
	}
	return products, nil
}
