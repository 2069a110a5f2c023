package tieup

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/swiftora/marketplace/internal/domain/identity"
	"github.com/swiftora/marketplace/internal/domain/partner"
	"github.com/swiftora/marketplace/internal/domain/shared"
	"github.com/swiftora/marketplace/internal/domain/tieup"
	"github.com/swiftora/marketplace/internal/infrastructure/geocode"
	"github.com/swiftora/marketplace/internal/infrastructure/telemetry"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// defaultLookupConcurrency bounds fan-out lookups per call
const defaultLookupConcurrency = 8

// TieUpService manages supplier/supermarket partnerships
type TieUpService struct {
	tieUpRepo       tieup.Repository
	supplierRepo    partner.SupplierRepository
	supermarketRepo partner.SupermarketRepository
	geocoder        geocode.Resolver
	eventPublisher  shared.EventPublisher
	metrics         *telemetry.BusinessMetrics
	logger          *zap.Logger
	concurrency     int
	now             func() time.Time
}

// NewTieUpService creates a new TieUpService. A nil geocoder shows stored
// addresses only.
func NewTieUpService(
	tieUpRepo tieup.Repository,
	supplierRepo partner.SupplierRepository,
	supermarketRepo partner.SupermarketRepository,
	geocoder geocode.Resolver,
	logger *zap.Logger,
) *TieUpService {
	if geocoder == nil {
		geocoder = geocode.NopResolver{}
	}
	return &TieUpService{
		tieUpRepo:       tieUpRepo,
		supplierRepo:    supplierRepo,
		supermarketRepo: supermarketRepo,
		geocoder:        geocoder,
		logger:          logger,
		concurrency:     defaultLookupConcurrency,
		now:             time.Now,
	}
}

// SetEventPublisher sets the event publisher for domain events
func (s *TieUpService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// SetMetrics enables business metrics
func (s *TieUpService) SetMetrics(m *telemetry.BusinessMetrics) {
	s.metrics = m
}

// RequestTieUp asks supplierID to partner with the calling supermarket.
// The insert is conditional on the pair being absent, so concurrent
// requests persist exactly one row and the rest get ErrDuplicateRequest.
func (s *TieUpService) RequestTieUp(ctx context.Context, session identity.Session, supplierID uuid.UUID) (*TieUpResponse, error) {
	if err := session.Require(identity.RoleSupermarket); err != nil {
		return nil, err
	}
	if _, err := s.supplierRepo.FindByID(ctx, supplierID); err != nil {
		return nil, err
	}

	t, err := tieup.NewTieUp(session.ActorID, supplierID, s.now())
	if err != nil {
		return nil, err
	}

	created, err := s.tieUpRepo.CreateIfAbsent(ctx, t)
	if err != nil {
		return nil, fmt.Errorf("create tie-up: %w", err)
	}
	if !created {
		s.logger.Info("Duplicate tie-up request",
			zap.String("supermarket_id", session.ActorID.String()),
			zap.String("supplier_id", supplierID.String()))
		return nil, shared.ErrDuplicateRequest.WithMessage("A tie-up request already exists for this supplier")
	}

	s.logger.Info("Tie-up requested",
		zap.String("tie_up_id", t.ID.String()),
		zap.String("supermarket_id", t.SupermarketID.String()),
		zap.String("supplier_id", t.SupplierID.String()))
	s.publishEvents(ctx, t)

	res := ToTieUpResponse(t)
	return &res, nil
}

// AcceptTieUp lets the supplier accept a pending request from supermarketID
func (s *TieUpService) AcceptTieUp(ctx context.Context, session identity.Session, supermarketID, supplierID uuid.UUID) (*TieUpResponse, error) {
	if err := session.RequireActor(identity.RoleSupplier, supplierID); err != nil {
		return nil, err
	}

	t, err := s.tieUpRepo.FindByPair(ctx, supermarketID, supplierID)
	if err != nil {
		return nil, err
	}
	if err := t.Accept(s.now()); err != nil {
		return nil, err
	}
	if err := s.tieUpRepo.SaveWithLock(ctx, t); err != nil {
		return nil, err
	}

	s.logger.Info("Tie-up accepted",
		zap.String("tie_up_id", t.ID.String()),
		zap.String("supermarket_id", supermarketID.String()),
		zap.String("supplier_id", supplierID.String()))
	s.publishEvents(ctx, t)

	res := ToTieUpResponse(t)
	return &res, nil
}

// QueryStatus returns the tie-up state between the calling supermarket and
// supplierID. A missing row is NotRequested, not an error.
func (s *TieUpService) QueryStatus(ctx context.Context, session identity.Session, supplierID uuid.UUID) (*StatusResponse, error) {
	if err := session.Require(identity.RoleSupermarket); err != nil {
		return nil, err
	}

	t, err := s.tieUpRepo.FindByPair(ctx, session.ActorID, supplierID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			res := notRequested(supplierID)
			return &res, nil
		}
		return nil, err
	}

	tr := ToTieUpResponse(t)
	return &StatusResponse{SupplierID: supplierID, TieUp: &tr, Status: t.Status}, nil
}

// QueryStatuses looks up several suppliers concurrently. Every item
// resolves: any failure defaults that item to NotRequested.
func (s *TieUpService) QueryStatuses(ctx context.Context, session identity.Session, supplierIDs []uuid.UUID) ([]StatusResponse, error) {
	if err := session.Require(identity.RoleSupermarket); err != nil {
		return nil, err
	}

	results := make([]StatusResponse, len(supplierIDs))
	var g errgroup.Group
	g.SetLimit(s.concurrency)
	for i, supplierID := range supplierIDs {
		g.Go(func() error {
			res, err := s.QueryStatus(ctx, session, supplierID)
			if err != nil {
				s.logger.Warn("Tie-up status lookup failed, defaulting to not requested",
					zap.String("supplier_id", supplierID.String()), zap.Error(err))
				results[i] = notRequested(supplierID)
				return nil
			}
			results[i] = *res
			return nil
		})
	}
	_ = g.Wait()

	return results, nil
}

// ListAccepted returns the accepted tie-ups of supermarketID together with
// each supplier and its display address
func (s *TieUpService) ListAccepted(ctx context.Context, session identity.Session, supermarketID uuid.UUID) ([]AcceptedTieUpResponse, error) {
	if err := session.RequireActor(identity.RoleSupermarket, supermarketID); err != nil {
		return nil, err
	}

	tieUps, err := s.tieUpRepo.FindAcceptedBySupermarket(ctx, supermarketID)
	if err != nil {
		return nil, err
	}
	if len(tieUps) == 0 {
		return []AcceptedTieUpResponse{}, nil
	}

	ids := make([]uuid.UUID, len(tieUps))
	for i := range tieUps {
		ids[i] = tieUps[i].SupplierID
	}
	suppliers, err := s.supplierRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]*partner.Supplier, len(suppliers))
	for i := range suppliers {
		byID[suppliers[i].ID] = &suppliers[i]
	}

	out := make([]AcceptedTieUpResponse, 0, len(tieUps))
	profiles := make([]partner.Profile, 0, len(tieUps))
	for i := range tieUps {
		supplier, ok := byID[tieUps[i].SupplierID]
		if !ok {
			s.logger.Warn("Accepted tie-up references missing supplier",
				zap.String("tie_up_id", tieUps[i].ID.String()),
				zap.String("supplier_id", tieUps[i].SupplierID.String()))
			continue
		}
		out = append(out, AcceptedTieUpResponse{
			TieUp:    ToTieUpResponse(&tieUps[i]),
			Supplier: toPartySummary(supplier.ID, supplier.Profile, ""),
		})
		profiles = append(profiles, supplier.Profile)
	}

	addresses := s.displayAddresses(ctx, profiles)
	for i := range out {
		out[i].Supplier.DisplayAddress = addresses[i]
	}
	return out, nil
}

// ListRequestsForSupplier returns every tie-up addressed to the calling
// supplier with the requesting supermarket
func (s *TieUpService) ListRequestsForSupplier(ctx context.Context, session identity.Session) ([]TieUpRequestResponse, error) {
	if err := session.Require(identity.RoleSupplier); err != nil {
		return nil, err
	}

	tieUps, err := s.tieUpRepo.FindBySupplier(ctx, session.ActorID)
	if err != nil {
		return nil, err
	}
	if len(tieUps) == 0 {
		return []TieUpRequestResponse{}, nil
	}

	ids := make([]uuid.UUID, len(tieUps))
	for i := range tieUps {
		ids[i] = tieUps[i].SupermarketID
	}
	supermarkets, err := s.supermarketRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]*partner.Supermarket, len(supermarkets))
	for i := range supermarkets {
		byID[supermarkets[i].ID] = &supermarkets[i]
	}

	out := make([]TieUpRequestResponse, 0, len(tieUps))
	profiles := make([]partner.Profile, 0, len(tieUps))
	for i := range tieUps {
		sm, ok := byID[tieUps[i].SupermarketID]
		if !ok {
			s.logger.Warn("Tie-up references missing supermarket",
				zap.String("tie_up_id", tieUps[i].ID.String()),
				zap.String("supermarket_id", tieUps[i].SupermarketID.String()))
			continue
		}
		out = append(out, TieUpRequestResponse{
			TieUp:       ToTieUpResponse(&tieUps[i]),
			Supermarket: toPartySummary(sm.ID, sm.Profile, ""),
		})
		profiles = append(profiles, sm.Profile)
	}

	addresses := s.displayAddresses(ctx, profiles)
	for i := range out {
		out[i].Supermarket.DisplayAddress = addresses[i]
	}
	return out, nil
}

// displayAddresses resolves each profile's address concurrently. Lookups
// never fail; misses become the stored address or the placeholder.
func (s *TieUpService) displayAddresses(ctx context.Context, profiles []partner.Profile) []string {
	addresses := make([]string, len(profiles))
	var g errgroup.Group
	g.SetLimit(s.concurrency)
	for i := range profiles {
		g.Go(func() error {
			addresses[i] = geocode.DisplayAddress(ctx, s.geocoder, profiles[i].Location, profiles[i].Address)
			if addresses[i] == geocode.Placeholder {
				s.metrics.GeocodeFallback(ctx, "reverse")
			}
			return nil
		})
	}
	_ = g.Wait()
	return addresses
}

func (s *TieUpService) publishEvents(ctx context.Context, t *tieup.TieUp) {
	if s.eventPublisher == nil {
		return
	}
	events := t.GetDomainEvents()
	if len(events) == 0 {
		return
	}
	if err := s.eventPublisher.Publish(ctx, events...); err != nil {
		s.logger.Error("Failed to publish domain events", zap.Error(err))
	}
	t.ClearDomainEvents()
}
