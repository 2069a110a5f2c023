package catalog

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/swiftora/marketplace/internal/domain/catalog"
	"github.com/swiftora/marketplace/internal/domain/identity"
	"github.com/swiftora/marketplace/internal/domain/shared"
	"go.uber.org/zap"
)

// ProductService manages a supplier's own catalog
type ProductService struct {
	productRepo    catalog.ProductRepository
	eventPublisher shared.EventPublisher
	logger         *zap.Logger
	now            func() time.Time
}

// NewProductService creates a new ProductService
func NewProductService(productRepo catalog.ProductRepository, logger *zap.Logger) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		logger:      logger,
		now:         time.Now,
	}
}

// SetEventPublisher sets the event publisher for domain events
func (s *ProductService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// AddProduct adds a product to the calling supplier's catalog. SKUs are
// unique per supplier.
func (s *ProductService) AddProduct(ctx context.Context, session identity.Session, req AddProductRequest) (*ProductResponse, error) {
	if err := session.Require(identity.RoleSupplier); err != nil {
		return nil, err
	}

	product, err := catalog.NewProduct(session.ActorID, strings.TrimSpace(req.SKU), req.Name, req.Stock, req.prices(), req.details())
	if err != nil {
		return nil, err
	}
	created, err := s.productRepo.CreateIfAbsent(ctx, product)
	if err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	if !created {
		return nil, shared.ErrDuplicateRequest.WithMessage("A product with this SKU already exists")
	}

	s.logger.Info("Product added",
		zap.String("product_id", product.ID.String()),
		zap.String("supplier_id", product.SupplierID.String()),
		zap.String("sku", product.SKU),
		zap.Int("stock", product.Stock))
	s.publishEvents(ctx, product)

	res := ToProductResponse(product, s.now())
	return &res, nil
}

// ListProducts returns the calling supplier's catalog
func (s *ProductService) ListProducts(ctx context.Context, session identity.Session) ([]ProductResponse, error) {
	if err := session.Require(identity.RoleSupplier); err != nil {
		return nil, err
	}
	products, err := s.productRepo.FindBySupplier(ctx, session.ActorID)
	if err != nil {
		return nil, err
	}
	return ToProductResponses(products, s.now()), nil
}

func (s *ProductService) publishEvents(ctx context.Context, product *catalog.Product) {
	if s.eventPublisher == nil {
		return
	}
	events := product.GetDomainEvents()
	if len(events) == 0 {
		return
	}
	if err := s.eventPublisher.Publish(ctx, events...); err != nil {
		s.logger.Error("Failed to publish domain events", zap.Error(err))
	}
	product.ClearDomainEvents()
}
