package marketplaceapi

import (
	"context"
	"net/http"
	"net/url"

	"github.com/google/uuid"
	"github.com/swiftora/marketplace/internal/domain/identity"
	"github.com/swiftora/marketplace/internal/domain/shared"
	"github.com/swiftora/marketplace/internal/domain/tieup"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ListSuppliers returns every supplier on the marketplace
func (c *Client) ListSuppliers(ctx context.Context, session identity.Session) ([]Party, error) {
	var out []wireParty
	if err := c.do(ctx, session, call{method: http.MethodGet, path: "/supermarkets/findsupplier"}, &out); err != nil {
		return nil, err
	}
	parties := make([]Party, 0, len(out))
	for _, w := range out {
		parties = append(parties, w.toParty())
	}
	return parties, nil
}

// TieUpStatus returns the caller's tie-up status with one supplier.
// A missing relationship is NotRequested, never an error.
func (c *Client) TieUpStatus(ctx context.Context, session identity.Session, supplierID uuid.UUID) (tieup.Status, error) {
	if supplierID == uuid.Nil {
		return tieup.Status{}, shared.ErrInvalidInput.WithMessage("Supplier ID is required")
	}

	var out wireTieUpStatus
	err := c.do(ctx, session, call{
		method: http.MethodGet,
		path:   "/supermarkets/tieup-status",
		query:  url.Values{"supplierId": {supplierID.String()}},
	}, &out)
	if err != nil {
		if IsNotFound(err) {
			return tieup.NotRequested(), nil
		}
		return tieup.Status{}, err
	}
	return out.status(), nil
}

// TieUpStatuses looks up the status for each supplier concurrently. A
// failed lookup leaves that supplier at NotRequested and is logged; it does
// not fail the batch.
func (c *Client) TieUpStatuses(ctx context.Context, session identity.Session, supplierIDs []uuid.UUID) map[uuid.UUID]tieup.Status {
	results := make([]tieup.Status, len(supplierIDs))

	var g errgroup.Group
	g.SetLimit(c.concurrency)
	for i, id := range supplierIDs {
		g.Go(func() error {
			status, err := c.TieUpStatus(ctx, session, id)
			if err != nil {
				c.logger.Warn("tie-up status lookup failed, showing not requested",
					zap.String("supplier_id", id.String()), zap.Error(err))
				status = tieup.NotRequested()
			}
			results[i] = status
			return nil
		})
	}
	_ = g.Wait()

	out := make(map[uuid.UUID]tieup.Status, len(supplierIDs))
	for i, id := range supplierIDs {
		out[id] = results[i]
	}
	return out
}

// RequestTieUp asks a supplier for a tie-up on behalf of the session's
// supermarket
func (c *Client) RequestTieUp(ctx context.Context, session identity.Session, supplierID uuid.UUID) (TieUp, error) {
	if supplierID == uuid.Nil {
		return TieUp{}, shared.ErrInvalidInput.WithMessage("Supplier ID is required")
	}
	var out wireTieUp
	err := c.do(ctx, session, call{
		method: http.MethodPost,
		path:   "/supermarkets/request-tieup",
		body:   map[string]string{"supplierId": supplierID.String()},
	}, &out)
	if err != nil {
		return TieUp{}, err
	}
	return out.toTieUp(), nil
}

// AcceptTieUp accepts a pending request as the session's supplier
func (c *Client) AcceptTieUp(ctx context.Context, session identity.Session, supermarketID, supplierID uuid.UUID) (TieUp, error) {
	if supermarketID == uuid.Nil || supplierID == uuid.Nil {
		return TieUp{}, shared.ErrInvalidInput.WithMessage("Supermarket ID and supplier ID are required")
	}
	var out wireTieUp
	err := c.do(ctx, session, call{
		method: http.MethodPut,
		path:   "/suppliers/accept-tieup",
		body: map[string]string{
			"supermarketId": supermarketID.String(),
			"supplierId":    supplierID.String(),
		},
	}, &out)
	if err != nil {
		return TieUp{}, err
	}
	return out.toTieUp(), nil
}

// ListAcceptedTieUps returns the suppliers a supermarket may order from
func (c *Client) ListAcceptedTieUps(ctx context.Context, session identity.Session, supermarketID uuid.UUID) ([]AcceptedTieUp, error) {
	var out []wireAcceptedTieUp
	err := c.do(ctx, session, call{
		method: http.MethodGet,
		path:   "/supermarkets/accepted-status/" + supermarketID.String(),
	}, &out)
	if err != nil {
		return nil, err
	}
	accepted := make([]AcceptedTieUp, 0, len(out))
	for _, w := range out {
		accepted = append(accepted, AcceptedTieUp{TieUp: w.TieUp.toTieUp(), Supplier: w.Supplier.toParty()})
	}
	return accepted, nil
}

// TieUpRequests lists the tie-ups addressed to the session's supplier
func (c *Client) TieUpRequests(ctx context.Context, session identity.Session) ([]TieUpRequest, error) {
	var out []wireTieUpRequest
	if err := c.do(ctx, session, call{method: http.MethodGet, path: "/suppliers/tieup-request-details"}, &out); err != nil {
		return nil, err
	}
	requests := make([]TieUpRequest, 0, len(out))
	for _, w := range out {
		requests = append(requests, TieUpRequest{TieUp: w.TieUp.toTieUp(), Supermarket: w.Supermarket.toParty()})
	}
	return requests, nil
}
