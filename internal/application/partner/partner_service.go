package partner

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/swiftora/marketplace/internal/domain/identity"
	"github.com/swiftora/marketplace/internal/domain/partner"
	"github.com/swiftora/marketplace/internal/domain/shared"
	"github.com/swiftora/marketplace/internal/infrastructure/geocode"
	"github.com/swiftora/marketplace/internal/infrastructure/telemetry"
	"go.uber.org/zap"
)

// PartnerService serves supplier listings and supermarket profiles
type PartnerService struct {
	supplierRepo    partner.SupplierRepository
	supermarketRepo partner.SupermarketRepository
	geocoder        geocode.Resolver
	metrics         *telemetry.BusinessMetrics
	logger          *zap.Logger
}

// NewPartnerService creates a new PartnerService. A nil geocoder disables
// address lookups.
func NewPartnerService(
	supplierRepo partner.SupplierRepository,
	supermarketRepo partner.SupermarketRepository,
	geocoder geocode.Resolver,
	logger *zap.Logger,
) *PartnerService {
	if geocoder == nil {
		geocoder = geocode.NopResolver{}
	}
	return &PartnerService{
		supplierRepo:    supplierRepo,
		supermarketRepo: supermarketRepo,
		geocoder:        geocoder,
		logger:          logger,
	}
}

// SetMetrics enables business metrics
func (s *PartnerService) SetMetrics(m *telemetry.BusinessMetrics) {
	s.metrics = m
}

// ListSuppliers returns every supplier on the marketplace
func (s *PartnerService) ListSuppliers(ctx context.Context, session identity.Session) ([]SupplierResponse, error) {
	if !session.IsAuthenticated() {
		return nil, shared.ErrUnauthenticated
	}
	suppliers, err := s.supplierRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return ToSupplierResponses(suppliers), nil
}

// GetSupermarketProfile returns the caller's supermarket
func (s *PartnerService) GetSupermarketProfile(ctx context.Context, session identity.Session) (*SupermarketResponse, error) {
	if err := session.Require(identity.RoleSupermarket); err != nil {
		return nil, err
	}
	supermarket, err := s.supermarketRepo.FindByID(ctx, session.ActorID)
	if err != nil {
		return nil, err
	}
	res := ToSupermarketResponse(supermarket)
	return &res, nil
}

// UpdateSupermarketProfile edits the caller's own supermarket. When the
// address changes without explicit coordinates the location is geocoded;
// a lookup failure keeps the previous location.
func (s *PartnerService) UpdateSupermarketProfile(ctx context.Context, session identity.Session, supermarketID uuid.UUID, req UpdateSupermarketRequest) (*SupermarketResponse, error) {
	if err := session.RequireActor(identity.RoleSupermarket, supermarketID); err != nil {
		return nil, err
	}
	if (req.Latitude == nil) != (req.Longitude == nil) {
		return nil, shared.ErrInvalidInput.WithMessage("Latitude and longitude must be given together")
	}

	supermarket, err := s.supermarketRepo.FindByID(ctx, supermarketID)
	if err != nil {
		return nil, err
	}

	location := supermarket.Location
	address := strings.TrimSpace(req.Address)
	switch {
	case req.Latitude != nil:
		location = partner.Location{Lat: *req.Latitude, Lng: *req.Longitude}
	case address != "" && address != supermarket.Address:
		location = s.forwardGeocode(ctx, address, location)
	}

	if err := supermarket.UpdateProfile(strings.TrimSpace(req.Name), strings.TrimSpace(req.Contact), address, location); err != nil {
		return nil, err
	}
	if err := s.supermarketRepo.SaveWithLock(ctx, supermarket); err != nil {
		return nil, err
	}

	s.logger.Info("Supermarket profile updated",
		zap.String("supermarket_id", supermarket.ID.String()),
		zap.Int("version", supermarket.Version))

	res := ToSupermarketResponse(supermarket)
	return &res, nil
}

func (s *PartnerService) forwardGeocode(ctx context.Context, address string, fallback partner.Location) partner.Location {
	loc, err := s.geocoder.Forward(ctx, address)
	if err != nil || !loc.IsValid() || loc.IsZero() {
		s.logger.Warn("Address geocoding failed, keeping previous location",
			zap.String("address", address), zap.Error(err))
		s.metrics.GeocodeFallback(ctx, "forward")
		return fallback
	}
	return loc
}
