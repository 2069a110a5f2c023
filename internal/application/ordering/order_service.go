package ordering

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	appcatalog "github.com/swiftora/marketplace/internal/application/catalog"
	"github.com/swiftora/marketplace/internal/domain/catalog"
	"github.com/swiftora/marketplace/internal/domain/identity"
	"github.com/swiftora/marketplace/internal/domain/ordering"
	"github.com/swiftora/marketplace/internal/domain/partner"
	"github.com/swiftora/marketplace/internal/domain/shared"
	"github.com/swiftora/marketplace/internal/domain/tieup"
	"github.com/swiftora/marketplace/internal/infrastructure/telemetry"
	"go.uber.org/zap"
)

// OrderService places orders and moves them through their lifecycle
type OrderService struct {
	orderRepo      ordering.Repository
	productRepo    catalog.ProductRepository
	tieUpRepo      tieup.Repository
	supplierRepo   partner.SupplierRepository
	txScope        TransactionScope
	stockPolicy    string
	eventPublisher shared.EventPublisher
	metrics        *telemetry.BusinessMetrics
	logger         *zap.Logger
	now            func() time.Time
}

// OrderServiceOption configures an OrderService
type OrderServiceOption func(*OrderService)

// WithTransactionScope makes placement transactional
func WithTransactionScope(scope TransactionScope) OrderServiceOption {
	return func(s *OrderService) {
		s.txScope = scope
	}
}

// WithStockPolicy selects the stock policy by name
func WithStockPolicy(name string) OrderServiceOption {
	return func(s *OrderService) {
		s.stockPolicy = name
	}
}

// WithMetrics enables business metrics
func WithMetrics(m *telemetry.BusinessMetrics) OrderServiceOption {
	return func(s *OrderService) {
		s.metrics = m
	}
}

// NewOrderService creates a new OrderService. An unknown stock policy name
// is rejected.
func NewOrderService(
	orderRepo ordering.Repository,
	productRepo catalog.ProductRepository,
	tieUpRepo tieup.Repository,
	supplierRepo partner.SupplierRepository,
	logger *zap.Logger,
	opts ...OrderServiceOption,
) (*OrderService, error) {
	s := &OrderService{
		orderRepo:    orderRepo,
		productRepo:  productRepo,
		tieUpRepo:    tieUpRepo,
		supplierRepo: supplierRepo,
		stockPolicy:  ordering.StockPolicyCheckOnly,
		logger:       logger,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if _, err := ordering.NewStockPolicy(s.stockPolicy, productRepo); err != nil {
		return nil, err
	}
	return s, nil
}

// SetEventPublisher sets the event publisher for domain events
func (s *OrderService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// StockPolicy returns the configured stock policy name
func (s *OrderService) StockPolicy() string {
	return s.stockPolicy
}

// PlaceOrder creates a pending order for the calling supermarket. Checks
// run in a fixed order: quantity, tie-up, product ownership and SKU, stock
// bound, then the stock policy.
func (s *OrderService) PlaceOrder(ctx context.Context, session identity.Session, req PlaceOrderRequest) (*OrderResponse, error) {
	if err := session.RequireActor(identity.RoleSupermarket, req.SupermarketID); err != nil {
		return nil, err
	}

	order, err := s.placeOrder(ctx, req)
	if err != nil {
		if code := shared.CodeOf(err); code != "" {
			s.metrics.OrderRejected(ctx, code)
			s.logger.Info("Order rejected",
				zap.String("supermarket_id", req.SupermarketID.String()),
				zap.String("product_id", req.ProductID.String()),
				zap.Int("quantity", req.Quantity),
				zap.String("code", code))
		}
		return nil, err
	}

	s.logger.Info("Order placed",
		zap.String("order_id", order.ID.String()),
		zap.String("supermarket_id", order.SupermarketID.String()),
		zap.String("supplier_id", order.SupplierID.String()),
		zap.Int("quantity", order.Quantity),
		zap.String("stock_policy", s.stockPolicy))
	s.metrics.OrderPlaced(ctx, order.Quantity, s.stockPolicy)
	s.publishEvents(ctx, order)

	res := ToOrderResponse(order)
	return &res, nil
}

func (s *OrderService) placeOrder(ctx context.Context, req PlaceOrderRequest) (*ordering.Order, error) {
	if req.Quantity <= 0 {
		return nil, shared.ErrInvalidQuantity
	}

	t, err := s.tieUpRepo.FindByPair(ctx, req.SupermarketID, req.SupplierID)
	switch {
	case errors.Is(err, shared.ErrNotFound):
		return nil, shared.ErrForbidden.WithMessage("No accepted tie-up with this supplier")
	case err != nil:
		return nil, err
	case !t.Status.IsAccepted():
		return nil, shared.ErrForbidden.WithMessage("Tie-up with this supplier is not accepted")
	}

	product, err := s.productRepo.FindByID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}
	if !product.BelongsTo(req.SupplierID) {
		return nil, shared.ErrInvalidInput.WithMessage("Product does not belong to this supplier")
	}
	sku := req.SKU
	if sku == "" {
		sku = product.SKU
	}
	if sku != product.SKU {
		return nil, shared.ErrInvalidInput.WithMessage("SKU does not match the product")
	}
	now := s.now()
	if product.IsExpired(now) {
		return nil, shared.ErrInvalidInput.WithMessage("Product has expired")
	}
	if err := catalog.CheckOrderQuantity(req.Quantity, product.Stock); err != nil {
		return nil, err
	}

	order, err := ordering.PlaceOrder(ordering.PlaceOrderParams{
		SupermarketID: req.SupermarketID,
		SupplierID:    req.SupplierID,
		ProductID:     product.ID,
		SKU:           sku,
		Quantity:      req.Quantity,
	}, now)
	if err != nil {
		return nil, err
	}

	persist := func(orders ordering.Repository, products catalog.ProductRepository) error {
		policy, err := ordering.NewStockPolicy(s.stockPolicy, products)
		if err != nil {
			return err
		}
		if err := policy.Apply(ctx, product.ID, order.Quantity); err != nil {
			return err
		}
		return orders.Save(ctx, order)
	}

	if s.txScope == nil {
		err = persist(s.orderRepo, s.productRepo)
	} else {
		err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
			return persist(repos.Orders(), repos.Products())
		})
	}
	if err != nil {
		return nil, err
	}
	return order, nil
}

// AdvanceOrder moves an order owned by the calling supplier to target. The
// stored order is returned; callers re-read lists rather than patching them.
func (s *OrderService) AdvanceOrder(ctx context.Context, session identity.Session, orderID uuid.UUID, target ordering.Status) (*OrderResponse, error) {
	if err := session.Require(identity.RoleSupplier); err != nil {
		return nil, err
	}

	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !order.OwnedBySupplier(session.ActorID) {
		return nil, shared.ErrForbidden.WithMessage("Order belongs to another supplier")
	}

	from := order.Status
	if err := order.Advance(target, s.now()); err != nil {
		return nil, err
	}
	if err := s.orderRepo.SaveWithLock(ctx, order); err != nil {
		return nil, fmt.Errorf("save order: %w", err)
	}

	s.logger.Info("Order status changed",
		zap.String("order_id", order.ID.String()),
		zap.String("from", from.String()),
		zap.String("to", order.Status.String()))
	s.publishEvents(ctx, order)

	res := ToOrderResponse(order)
	return &res, nil
}

// ListForSupplier returns the orders addressed to the calling supplier
func (s *OrderService) ListForSupplier(ctx context.Context, session identity.Session) ([]OrderResponse, error) {
	if err := session.Require(identity.RoleSupplier); err != nil {
		return nil, err
	}
	orders, err := s.orderRepo.FindBySupplier(ctx, session.ActorID)
	if err != nil {
		return nil, err
	}
	products, err := s.productRepo.FindBySupplier(ctx, session.ActorID)
	if err != nil {
		return nil, err
	}
	return ToOrderResponses(orders, productNames(products)), nil
}

// ListForSupermarket returns the orders placed by supermarketID
func (s *OrderService) ListForSupermarket(ctx context.Context, session identity.Session, supermarketID uuid.UUID) ([]OrderResponse, error) {
	if err := session.RequireActor(identity.RoleSupermarket, supermarketID); err != nil {
		return nil, err
	}
	orders, err := s.orderRepo.FindBySupermarket(ctx, supermarketID)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return []OrderResponse{}, nil
	}

	seen := make(map[uuid.UUID]struct{})
	var supplierIDs []uuid.UUID
	for i := range orders {
		if _, ok := seen[orders[i].SupplierID]; !ok {
			seen[orders[i].SupplierID] = struct{}{}
			supplierIDs = append(supplierIDs, orders[i].SupplierID)
		}
	}
	products, err := s.productRepo.FindBySuppliers(ctx, supplierIDs)
	if err != nil {
		return nil, err
	}
	return ToOrderResponses(orders, productNames(products)), nil
}

// ProductsForOrdering returns the products of every supplier the
// supermarket has an accepted tie-up with
func (s *OrderService) ProductsForOrdering(ctx context.Context, session identity.Session, supermarketID uuid.UUID) (*ProductsForOrderingResponse, error) {
	if err := session.RequireActor(identity.RoleSupermarket, supermarketID); err != nil {
		return nil, err
	}

	tieUps, err := s.tieUpRepo.FindAcceptedBySupermarket(ctx, supermarketID)
	if err != nil {
		return nil, err
	}
	res := &ProductsForOrderingResponse{
		Products:    []appcatalog.ProductResponse{},
		SupplierMap: map[string]SupplierSummary{},
	}
	if len(tieUps) == 0 {
		return res, nil
	}

	supplierIDs := make([]uuid.UUID, len(tieUps))
	for i := range tieUps {
		supplierIDs[i] = tieUps[i].SupplierID
	}
	suppliers, err := s.supplierRepo.FindByIDs(ctx, supplierIDs)
	if err != nil {
		return nil, err
	}
	for i := range suppliers {
		res.SupplierMap[suppliers[i].ID.String()] = SupplierSummary{
			ID:      suppliers[i].ID,
			Name:    suppliers[i].Name,
			Contact: suppliers[i].Contact,
		}
	}

	products, err := s.productRepo.FindBySuppliers(ctx, supplierIDs)
	if err != nil {
		return nil, err
	}
	res.Products = appcatalog.ToProductResponses(products, s.now())
	return res, nil
}

func productNames(products []catalog.Product) map[uuid.UUID]string {
	names := make(map[uuid.UUID]string, len(products))
	for i := range products {
		names[products[i].ID] = products[i].Name
	}
	return names
}

func (s *OrderService) publishEvents(ctx context.Context, order *ordering.Order) {
	if s.eventPublisher == nil {
		return
	}
	events := order.GetDomainEvents()
	if len(events) == 0 {
		return
	}
	if err := s.eventPublisher.Publish(ctx, events...); err != nil {
		s.logger.Error("Failed to publish domain events", zap.Error(err))
	}
	order.ClearDomainEvents()
}
