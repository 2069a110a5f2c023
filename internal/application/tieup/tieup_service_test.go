package tieup

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/swiftora/marketplace/internal/domain/identity"
	"github.com/swiftora/marketplace/internal/domain/partner"
	"github.com/swiftora/marketplace/internal/domain/shared"
	"github.com/swiftora/marketplace/internal/domain/tieup"
	"github.com/swiftora/marketplace/internal/infrastructure/geocode"
	"github.com/swiftora/marketplace/tests/testutil"
	"go.uber.org/zap"
)

var fixedNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

type tieUpFixture struct {
	tieUps       *testutil.MockTieUpRepository
	suppliers    *testutil.MockSupplierRepository
	supermarkets *testutil.MockSupermarketRepository
	geo          *testutil.MockGeocoder
	publisher    *testutil.RecordingPublisher
	svc          *TieUpService
}

func newTieUpFixture() *tieUpFixture {
	f := &tieUpFixture{
		tieUps:       new(testutil.MockTieUpRepository),
		suppliers:    new(testutil.MockSupplierRepository),
		supermarkets: new(testutil.MockSupermarketRepository),
		geo:          new(testutil.MockGeocoder),
		publisher:    &testutil.RecordingPublisher{},
	}
	f.svc = NewTieUpService(f.tieUps, f.suppliers, f.supermarkets, f.geo, zap.NewNop())
	f.svc.SetEventPublisher(f.publisher)
	f.svc.now = func() time.Time { return fixedNow }
	return f
}

func newSupplier(t *testing.T, name string, loc partner.Location, address string) *partner.Supplier {
	t.Helper()
	s, err := partner.NewSupplier(testutil.NewTestUUID("user-"+name), partner.Profile{Name: name, Location: loc, Address: address})
	require.NoError(t, err)
	return s
}

func pendingTieUp(t *testing.T, supermarketID, supplierID uuid.UUID) *tieup.TieUp {
	t.Helper()
	tu, err := tieup.NewTieUp(supermarketID, supplierID, fixedNow.Add(-time.Hour))
	require.NoError(t, err)
	tu.ClearDomainEvents()
	return tu
}

func TestTieUpService_RequestTieUp(t *testing.T) {
	supermarketID := testutil.NewTestUUID("mart")
	session := testutil.SupermarketSession(supermarketID)

	t.Run("creates pending request", func(t *testing.T) {
		f := newTieUpFixture()
		supplier := newSupplier(t, "acme", partner.Location{}, "")
		f.suppliers.On("FindByID", mock.Anything, supplier.ID).Return(supplier, nil)
		f.tieUps.On("CreateIfAbsent", mock.Anything, mock.AnythingOfType("*tieup.TieUp")).Return(true, nil)

		res, err := f.svc.RequestTieUp(context.Background(), session, supplier.ID)
		require.NoError(t, err)
		assert.True(t, res.Status.IsPending())
		assert.Equal(t, supermarketID, res.SupermarketID)
		assert.Equal(t, fixedNow, res.RequestedAt)
		assert.Equal(t, []string{tieup.EventTypeTieUpRequested}, f.publisher.Types())
	})

	t.Run("existing pair is a duplicate", func(t *testing.T) {
		f := newTieUpFixture()
		supplier := newSupplier(t, "acme", partner.Location{}, "")
		f.suppliers.On("FindByID", mock.Anything, supplier.ID).Return(supplier, nil)
		f.tieUps.On("CreateIfAbsent", mock.Anything, mock.Anything).Return(false, nil)

		_, err := f.svc.RequestTieUp(context.Background(), session, supplier.ID)
		assert.ErrorIs(t, err, shared.ErrDuplicateRequest)
		assert.Empty(t, f.publisher.Types())
	})

	t.Run("unknown supplier", func(t *testing.T) {
		f := newTieUpFixture()
		id := testutil.NewTestUUID("ghost")
		f.suppliers.On("FindByID", mock.Anything, id).Return(nil, shared.ErrNotFound)

		_, err := f.svc.RequestTieUp(context.Background(), session, id)
		assert.ErrorIs(t, err, shared.ErrNotFound)
		f.tieUps.AssertNotCalled(t, "CreateIfAbsent", mock.Anything, mock.Anything)
	})

	t.Run("suppliers cannot request", func(t *testing.T) {
		f := newTieUpFixture()
		_, err := f.svc.RequestTieUp(context.Background(), testutil.SupplierSession(supermarketID), uuid.New())
		assert.ErrorIs(t, err, shared.ErrForbidden)
	})

	t.Run("anonymous caller", func(t *testing.T) {
		f := newTieUpFixture()
		_, err := f.svc.RequestTieUp(context.Background(), identity.Session{}, uuid.New())
		assert.ErrorIs(t, err, shared.ErrUnauthenticated)
	})
}

func TestTieUpService_AcceptTieUp(t *testing.T) {
	supermarketID := testutil.NewTestUUID("mart")
	supplierID := testutil.NewTestUUID("acme")
	session := testutil.SupplierSession(supplierID)

	t.Run("pending becomes accepted", func(t *testing.T) {
		f := newTieUpFixture()
		tu := pendingTieUp(t, supermarketID, supplierID)
		f.tieUps.On("FindByPair", mock.Anything, supermarketID, supplierID).Return(tu, nil)
		f.tieUps.On("SaveWithLock", mock.Anything, tu).Return(nil)

		res, err := f.svc.AcceptTieUp(context.Background(), session, supermarketID, supplierID)
		require.NoError(t, err)
		assert.True(t, res.Status.IsAccepted())
		require.NotNil(t, res.AcceptedAt)
		assert.Equal(t, fixedNow, *res.AcceptedAt)
		assert.Equal(t, []string{tieup.EventTypeTieUpAccepted}, f.publisher.Types())
	})

	t.Run("missing pair", func(t *testing.T) {
		f := newTieUpFixture()
		f.tieUps.On("FindByPair", mock.Anything, supermarketID, supplierID).Return(nil, shared.ErrNotFound)

		_, err := f.svc.AcceptTieUp(context.Background(), session, supermarketID, supplierID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("already accepted", func(t *testing.T) {
		f := newTieUpFixture()
		tu := pendingTieUp(t, supermarketID, supplierID)
		require.NoError(t, tu.Accept(fixedNow))
		f.tieUps.On("FindByPair", mock.Anything, supermarketID, supplierID).Return(tu, nil)

		_, err := f.svc.AcceptTieUp(context.Background(), session, supermarketID, supplierID)
		assert.ErrorIs(t, err, shared.ErrIllegalTransition)
		f.tieUps.AssertNotCalled(t, "SaveWithLock", mock.Anything, mock.Anything)
	})

	t.Run("another supplier's request", func(t *testing.T) {
		f := newTieUpFixture()
		_, err := f.svc.AcceptTieUp(context.Background(), testutil.SupplierSession(uuid.New()), supermarketID, supplierID)
		assert.ErrorIs(t, err, shared.ErrForbidden)
	})

	t.Run("lost race with concurrent accept", func(t *testing.T) {
		f := newTieUpFixture()
		tu := pendingTieUp(t, supermarketID, supplierID)
		f.tieUps.On("FindByPair", mock.Anything, supermarketID, supplierID).Return(tu, nil)
		f.tieUps.On("SaveWithLock", mock.Anything, tu).Return(shared.ErrConcurrencyConflict)

		_, err := f.svc.AcceptTieUp(context.Background(), session, supermarketID, supplierID)
		assert.ErrorIs(t, err, shared.ErrConcurrencyConflict)
		assert.Empty(t, f.publisher.Types())
	})
}

func TestTieUpService_QueryStatus(t *testing.T) {
	supermarketID := testutil.NewTestUUID("mart")
	session := testutil.SupermarketSession(supermarketID)

	t.Run("no row is not requested", func(t *testing.T) {
		f := newTieUpFixture()
		supplierID := testutil.NewTestUUID("acme")
		f.tieUps.On("FindByPair", mock.Anything, supermarketID, supplierID).Return(nil, shared.ErrNotFound)

		res, err := f.svc.QueryStatus(context.Background(), session, supplierID)
		require.NoError(t, err)
		assert.True(t, res.Status.IsNotRequested())
		assert.Nil(t, res.TieUp)
	})

	t.Run("persisted status is returned", func(t *testing.T) {
		f := newTieUpFixture()
		supplierID := testutil.NewTestUUID("acme")
		tu := pendingTieUp(t, supermarketID, supplierID)
		f.tieUps.On("FindByPair", mock.Anything, supermarketID, supplierID).Return(tu, nil)

		res, err := f.svc.QueryStatus(context.Background(), session, supplierID)
		require.NoError(t, err)
		assert.Equal(t, tieup.WirePending, res.Status.String())
		require.NotNil(t, res.TieUp)
		assert.Equal(t, tu.ID, res.TieUp.ID)
	})
}

func TestTieUpService_QueryStatuses(t *testing.T) {
	supermarketID := testutil.NewTestUUID("mart")
	session := testutil.SupermarketSession(supermarketID)
	f := newTieUpFixture()

	pending := testutil.NewTestUUID("pending")
	missing := testutil.NewTestUUID("missing")
	broken := testutil.NewTestUUID("broken")
	f.tieUps.On("FindByPair", mock.Anything, supermarketID, pending).Return(pendingTieUp(t, supermarketID, pending), nil)
	f.tieUps.On("FindByPair", mock.Anything, supermarketID, missing).Return(nil, shared.ErrNotFound)
	f.tieUps.On("FindByPair", mock.Anything, supermarketID, broken).Return(nil, errors.New("connection reset"))

	res, err := f.svc.QueryStatuses(context.Background(), session, []uuid.UUID{pending, missing, broken})
	require.NoError(t, err)
	require.Len(t, res, 3)
	assert.True(t, res[0].Status.IsPending())
	assert.True(t, res[1].Status.IsNotRequested())
	assert.True(t, res[2].Status.IsNotRequested())
	assert.Equal(t, broken, res[2].SupplierID)
}

func TestTieUpService_ListAccepted(t *testing.T) {
	supermarketID := testutil.NewTestUUID("mart")
	session := testutil.SupermarketSession(supermarketID)
	f := newTieUpFixture()

	located := newSupplier(t, "located", partner.Location{Lat: 12.9, Lng: 77.6}, "")
	failing := newSupplier(t, "failing", partner.Location{Lat: 1, Lng: 1}, "")
	stored := newSupplier(t, "stored", partner.Location{}, "7 Dock Road")

	var tieUps []tieup.TieUp
	for _, s := range []*partner.Supplier{located, failing, stored} {
		tu := pendingTieUp(t, supermarketID, s.ID)
		require.NoError(t, tu.Accept(fixedNow))
		tieUps = append(tieUps, *tu)
	}
	f.tieUps.On("FindAcceptedBySupermarket", mock.Anything, supermarketID).Return(tieUps, nil)
	f.suppliers.On("FindByIDs", mock.Anything, mock.Anything).
		Return([]partner.Supplier{*stored, *located, *failing}, nil)
	f.geo.On("Reverse", mock.Anything, located.Location).Return("MG Road, Bengaluru", nil)
	f.geo.On("Reverse", mock.Anything, failing.Location).Return("", errors.New("rate limited"))

	res, err := f.svc.ListAccepted(context.Background(), session, supermarketID)
	require.NoError(t, err)
	require.Len(t, res, 3)
	assert.Equal(t, "located", res[0].Supplier.Name)
	assert.Equal(t, "MG Road, Bengaluru", res[0].Supplier.DisplayAddress)
	assert.Equal(t, geocode.Placeholder, res[1].Supplier.DisplayAddress)
	assert.Equal(t, "7 Dock Road", res[2].Supplier.DisplayAddress)

	_, err = f.svc.ListAccepted(context.Background(), session, uuid.New())
	assert.ErrorIs(t, err, shared.ErrForbidden)
}

func TestTieUpService_ListRequestsForSupplier(t *testing.T) {
	supplierID := testutil.NewTestUUID("acme")
	f := newTieUpFixture()

	sm, err := partner.NewSupermarket(testutil.NewTestUUID("owner"), partner.Profile{Name: "Corner Mart", Address: "1 Old Road"})
	require.NoError(t, err)
	f.tieUps.On("FindBySupplier", mock.Anything, supplierID).Return([]tieup.TieUp{*pendingTieUp(t, sm.ID, supplierID)}, nil)
	f.supermarkets.On("FindByIDs", mock.Anything, []uuid.UUID{sm.ID}).Return([]partner.Supermarket{*sm}, nil)

	res, err := f.svc.ListRequestsForSupplier(context.Background(), testutil.SupplierSession(supplierID))
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "Corner Mart", res[0].Supermarket.Name)
	assert.Equal(t, "1 Old Road", res[0].Supermarket.DisplayAddress)
	assert.True(t, res[0].TieUp.Status.IsPending())
}
