package identity

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
	"github.com/swiftora/marketplace/internal/infrastructure/auth"
	"github.com/swiftora/marketplace/internal/infrastructure/config"
	"github.com/swiftora/marketplace/tests/testutil"
	"go.uber.org/zap"
)

// fakeTxScope runs fn directly against the mock repositories
type fakeTxScope struct {
	users        *testutil.MockUserRepository
	suppliers    *testutil.MockSupplierRepository
	supermarkets *testutil.MockSupermarketRepository
	calls        int
}

func (f *fakeTxScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	f.calls++
	return fn(f)
}

func (f *fakeTxScope) Users() identity.UserRepository              { return f.users }
func (f *fakeTxScope) Suppliers() partner.SupplierRepository       { return f.suppliers }
func (f *fakeTxScope) Supermarkets() partner.SupermarketRepository { return f.supermarkets }

type authFixture struct {
	users        *testutil.MockUserRepository
	suppliers    *testutil.MockSupplierRepository
	supermarkets *testutil.MockSupermarketRepository
	tx           *fakeTxScope
	tokens       *auth.JWTService
	publisher    *testutil.RecordingPublisher
	svc          *AuthService
}

func newAuthFixture() *authFixture {
	f := &authFixture{
		users:        new(testutil.MockUserRepository),
		suppliers:    new(testutil.MockSupplierRepository),
		supermarkets: new(testutil.MockSupermarketRepository),
		tokens: auth.NewJWTService(config.JWTConfig{
			Secret:     "test-secret-key-at-least-32-bytes-long",
			Expiration: time.Hour,
			Issuer:     "marketplace-test",
		}),
		publisher: &testutil.RecordingPublisher{},
	}
	f.tx = &fakeTxScope{users: f.users, suppliers: f.suppliers, supermarkets: f.supermarkets}
	f.svc = NewAuthService(f.users, f.suppliers, f.supermarkets, f.tx, f.tokens, zap.NewNop())
	f.svc.SetEventPublisher(f.publisher)
	return f
}

func TestAuthService_Register(t *testing.T) {
	t.Run("supermarket registration binds actor", func(t *testing.T) {
		f := newAuthFixture()
		f.users.On("ExistsByEmail", mock.Anything, "fresh@example.com").Return(false, nil)
		f.users.On("Save", mock.Anything, mock.AnythingOfType("*identity.User")).Return(nil).Twice()
		var saved *partner.Supermarket
		f.supermarkets.On("Save", mock.Anything, mock.AnythingOfType("*partner.Supermarket")).
			Run(func(args mock.Arguments) { saved = args.Get(1).(*partner.Supermarket) }).
			Return(nil)

		info, err := f.svc.Register(context.Background(), RegisterRequest{
			Email:    " Fresh@Example.com ",
			Password: "correct-horse",
			Name:     "Fresh Mart",
			Role:     identity.RoleSupermarket,
			Address:  "12 Market Street",
		})

		require.NoError(t, err)
		require.NotNil(t, saved)
		assert.Equal(t, saved.ID, info.ActorID)
		assert.Equal(t, "fresh@example.com", info.Email)
		assert.Equal(t, "fresh@example.com", saved.Email)
		assert.Equal(t, 1, f.tx.calls)
		assert.Equal(t, []string{identity.EventTypeUserRegistered}, f.publisher.Types())
		f.suppliers.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		f.users.AssertExpectations(t)
	})

	t.Run("supplier registration creates supplier", func(t *testing.T) {
		f := newAuthFixture()
		f.users.On("ExistsByEmail", mock.Anything, "seller@example.com").Return(false, nil)
		f.users.On("Save", mock.Anything, mock.Anything).Return(nil)
		f.suppliers.On("Save", mock.Anything, mock.AnythingOfType("*partner.Supplier")).Return(nil)

		info, err := f.svc.Register(context.Background(), RegisterRequest{
			Email:    "seller@example.com",
			Password: "correct-horse",
			Name:     "Seller Co",
			Role:     identity.RoleSupplier,
		})

		require.NoError(t, err)
		assert.Equal(t, identity.RoleSupplier, info.Role)
		assert.NotEqual(t, uuid.Nil, info.ActorID)
	})

	t.Run("duplicate email", func(t *testing.T) {
		f := newAuthFixture()
		f.users.On("ExistsByEmail", mock.Anything, "taken@example.com").Return(true, nil)

		_, err := f.svc.Register(context.Background(), RegisterRequest{
			Email: "taken@example.com", Password: "correct-horse", Name: "X", Role: identity.RoleSupplier,
		})

		assert.ErrorIs(t, err, shared.ErrDuplicateRequest)
		assert.Zero(t, f.tx.calls)
	})

	t.Run("invalid role rejected before transaction", func(t *testing.T) {
		f := newAuthFixture()
		f.users.On("ExistsByEmail", mock.Anything, "who@example.com").Return(false, nil)

		_, err := f.svc.Register(context.Background(), RegisterRequest{
			Email: "who@example.com", Password: "correct-horse", Name: "X", Role: identity.Role("admin"),
		})

		assert.ErrorIs(t, err, shared.ErrInvalidInput)
		assert.Zero(t, f.tx.calls)
	})

	t.Run("party save failure aborts without events", func(t *testing.T) {
		f := newAuthFixture()
		f.users.On("ExistsByEmail", mock.Anything, "boom@example.com").Return(false, nil)
		f.users.On("Save", mock.Anything, mock.Anything).Return(nil).Once()
		f.suppliers.On("Save", mock.Anything, mock.Anything).Return(errors.New("db down"))

		_, err := f.svc.Register(context.Background(), RegisterRequest{
			Email: "boom@example.com", Password: "correct-horse", Name: "Boom", Role: identity.RoleSupplier,
		})

		require.Error(t, err)
		assert.Empty(t, f.publisher.Types())
	})
}

func registeredUser(t *testing.T, role identity.Role) *identity.User {
	t.Helper()
	u, err := identity.NewUser("buyer@example.com", "Buyer", "correct-horse", role)
	require.NoError(t, err)
	u.BindActor(testutil.NewTestUUID("actor"))
	u.ClearDomainEvents()
	return u
}

func TestAuthService_Login(t *testing.T) {
	t.Run("issues a token that resolves to the same session", func(t *testing.T) {
		f := newAuthFixture()
		user := registeredUser(t, identity.RoleSupermarket)
		f.users.On("FindByEmail", mock.Anything, "buyer@example.com").Return(user, nil)
		f.users.On("Save", mock.Anything, user).Return(nil)

		res, err := f.svc.Login(context.Background(), LoginRequest{Email: "BUYER@example.com", Password: "correct-horse"})
		require.NoError(t, err)
		assert.Equal(t, "Bearer", res.TokenType)
		assert.NotNil(t, user.LastLoginAt)

		session, err := f.svc.ResolveSession(context.Background(), res.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, user.ID, session.UserID)
		assert.Equal(t, user.ActorID, session.ActorID)
		assert.Equal(t, identity.RoleSupermarket, session.Role)
		assert.Equal(t, res.AccessToken, session.Token)
	})

	t.Run("wrong password", func(t *testing.T) {
		f := newAuthFixture()
		f.users.On("FindByEmail", mock.Anything, "buyer@example.com").Return(registeredUser(t, identity.RoleSupplier), nil)

		_, err := f.svc.Login(context.Background(), LoginRequest{Email: "buyer@example.com", Password: "nope-nope"})
		assert.ErrorIs(t, err, shared.ErrUnauthenticated)
		f.users.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("unknown email", func(t *testing.T) {
		f := newAuthFixture()
		f.users.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, shared.ErrNotFound)

		_, err := f.svc.Login(context.Background(), LoginRequest{Email: "ghost@example.com", Password: "whatever1"})
		assert.ErrorIs(t, err, shared.ErrUnauthenticated)
	})

	t.Run("failed login stamp does not fail login", func(t *testing.T) {
		f := newAuthFixture()
		user := registeredUser(t, identity.RoleSupplier)
		f.users.On("FindByEmail", mock.Anything, "buyer@example.com").Return(user, nil)
		f.users.On("Save", mock.Anything, user).Return(errors.New("write failed"))

		res, err := f.svc.Login(context.Background(), LoginRequest{Email: "buyer@example.com", Password: "correct-horse"})
		require.NoError(t, err)
		assert.NotEmpty(t, res.AccessToken)
	})
}

func TestAuthService_ResolveSession(t *testing.T) {
	f := newAuthFixture()

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"blank", "   "},
		{"garbage", "not-a-jwt"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.ResolveSession(context.Background(), tt.token)
			assert.ErrorIs(t, err, shared.ErrUnauthenticated)
		})
	}
}

func TestAuthService_Me(t *testing.T) {
	t.Run("supplier profile", func(t *testing.T) {
		f := newAuthFixture()
		supplier, err := partner.NewSupplier(testutil.NewTestUUID("u"), partner.Profile{
			Name: "Acme Foods", Email: "acme@example.com", Contact: "555-0100",
			Location: partner.Location{Lat: 12.97, Lng: 77.59},
		})
		require.NoError(t, err)
		f.suppliers.On("FindByID", mock.Anything, supplier.ID).Return(supplier, nil)

		res, err := f.svc.Me(context.Background(), testutil.SupplierSession(supplier.ID))
		require.NoError(t, err)
		assert.Equal(t, "Acme Foods", res.Name)
		assert.Equal(t, identity.RoleSupplier, res.Role)
		assert.InDelta(t, 12.97, res.Latitude, 1e-9)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		f := newAuthFixture()
		_, err := f.svc.Me(context.Background(), identity.Session{})
		assert.ErrorIs(t, err, shared.ErrUnauthenticated)
	})

	t.Run("missing supermarket", func(t *testing.T) {
		f := newAuthFixture()
		id := testutil.NewTestUUID("gone")
		f.supermarkets.On("FindByID", mock.Anything, id).Return(nil, shared.ErrNotFound)

		_, err := f.svc.Me(context.Background(), testutil.SupermarketSession(id))
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}
