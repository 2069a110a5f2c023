package event

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/swiftora/marketplace/internal/domain/shared"
	"github.com/swiftora/marketplace/tests/testutil"
	"go.uber.org/zap"
)

type panickingHandler struct{}

func (panickingHandler) EventTypes() []string { return []string{"Boom"} }
func (panickingHandler) Handle(context.Context, shared.DomainEvent) error {
	panic("boom")
}

func startedBus(t *testing.T) *InMemoryEventBus {
	t.Helper()
	bus := NewInMemoryEventBus(zap.NewNop())
	require.NoError(t, bus.Start(context.Background()))
	return bus
}

func TestInMemoryEventBus_Publish(t *testing.T) {
	ctx := context.Background()

	t.Run("routes by event type", func(t *testing.T) {
		bus := startedBus(t)
		placed := testutil.NewMockEventHandler("OrderPlaced")
		accepted := testutil.NewMockEventHandler("TieUpAccepted")
		bus.Subscribe(placed)
		bus.Subscribe(accepted)

		require.NoError(t, bus.Publish(ctx, testutil.NewTestEvent("OrderPlaced")))

		assert.Equal(t, 1, placed.HandledCount())
		assert.Equal(t, 0, accepted.HandledCount())
	})

	t.Run("wildcard handler receives everything", func(t *testing.T) {
		bus := startedBus(t)
		all := testutil.NewMockEventHandler()
		bus.Subscribe(all)

		require.NoError(t, bus.Publish(ctx, testutil.NewTestEvent("A"), testutil.NewTestEvent("B")))
		assert.Equal(t, 2, all.HandledCount())
	})

	t.Run("explicit types override handler types", func(t *testing.T) {
		bus := startedBus(t)
		h := testutil.NewMockEventHandler("Ignored")
		bus.Subscribe(h, "Chosen")

		require.NoError(t, bus.Publish(ctx, testutil.NewTestEvent("Ignored"), testutil.NewTestEvent("Chosen")))
		require.Equal(t, 1, h.HandledCount())
		assert.Equal(t, "Chosen", h.Handled()[0].EventType())
	})

	t.Run("failing and panicking handlers do not stop siblings", func(t *testing.T) {
		bus := startedBus(t)
		failing := testutil.NewMockEventHandler("Boom")
		failing.SetError(errors.New("nope"))
		ok := testutil.NewMockEventHandler("Boom")
		bus.Subscribe(panickingHandler{})
		bus.Subscribe(failing)
		bus.Subscribe(ok)

		assert.NoError(t, bus.Publish(ctx, testutil.NewTestEvent("Boom")))
		assert.Equal(t, 1, failing.HandledCount())
		assert.Equal(t, 1, ok.HandledCount())
	})

	t.Run("rejects events when stopped", func(t *testing.T) {
		bus := startedBus(t)
		require.NoError(t, bus.Stop(ctx))
		assert.Error(t, bus.Publish(ctx, testutil.NewTestEvent("A")))
	})
}

func TestInMemoryEventBus_Unsubscribe(t *testing.T) {
	bus := startedBus(t)
	h := testutil.NewMockEventHandler("A")
	bus.Subscribe(h)
	bus.Unsubscribe(h)

	require.NoError(t, bus.Publish(context.Background(), testutil.NewTestEvent("A")))
	assert.Equal(t, 0, h.HandledCount())
}

// =============================================================================
// IdempotentHandler
// =============================================================================

type MockIdempotencyStore struct {
	mock.Mock
}

func (m *MockIdempotencyStore) MarkProcessed(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	args := m.Called(ctx, key, ttl)
	return args.Bool(0), args.Error(1)
}

func (m *MockIdempotencyStore) IsProcessed(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *MockIdempotencyStore) Close() error { return nil }

func TestIdempotentHandler_Handle(t *testing.T) {
	ctx := context.Background()
	eventID := uuid.New()
	evt := testutil.NewTestEventWithID(eventID, "OrderPlaced")

	t.Run("first delivery is processed", func(t *testing.T) {
		store := new(MockIdempotencyStore)
		store.On("MarkProcessed", ctx, "orders:event:"+eventID.String(), 24*time.Hour).Return(true, nil)
		inner := testutil.NewMockEventHandler("OrderPlaced")
		h := NewIdempotentHandler(inner, store, zap.NewNop(), WithKeyPrefix("orders:"))

		require.NoError(t, h.Handle(ctx, evt))
		assert.Equal(t, 1, inner.HandledCount())
		assert.Equal(t, int64(1), h.Metrics().Stats().EventsProcessed)
		assert.Equal(t, []string{"OrderPlaced"}, h.EventTypes())
		store.AssertExpectations(t)
	})

	t.Run("duplicate delivery is skipped", func(t *testing.T) {
		store := new(MockIdempotencyStore)
		store.On("MarkProcessed", ctx, mock.Anything, mock.Anything).Return(false, nil)
		inner := testutil.NewMockEventHandler("OrderPlaced")
		h := NewIdempotentHandler(inner, store, zap.NewNop())

		require.NoError(t, h.Handle(ctx, evt))
		assert.Equal(t, 0, inner.HandledCount())
		assert.Equal(t, int64(1), h.Metrics().Stats().EventsDuplicate)
	})

	t.Run("store failure still processes", func(t *testing.T) {
		store := new(MockIdempotencyStore)
		store.On("MarkProcessed", ctx, mock.Anything, mock.Anything).Return(false, errors.New("redis down"))
		inner := testutil.NewMockEventHandler("OrderPlaced")
		h := NewIdempotentHandler(inner, store, zap.NewNop())

		require.NoError(t, h.Handle(ctx, evt))
		assert.Equal(t, 1, inner.HandledCount())
	})

	t.Run("handler error is returned and counted", func(t *testing.T) {
		store := new(MockIdempotencyStore)
		store.On("MarkProcessed", ctx, mock.Anything, mock.Anything).Return(true, nil)
		inner := testutil.NewMockEventHandler("OrderPlaced")
		inner.SetError(errors.New("fail"))
		metrics := &IdempotencyMetrics{}
		h := NewIdempotentHandler(inner, store, zap.NewNop(), WithIdempotencyMetrics(metrics))

		assert.Error(t, h.Handle(ctx, evt))
		assert.Equal(t, int64(1), metrics.Stats().EventsFailed)
	})

	t.Run("disabled config bypasses the store", func(t *testing.T) {
		store := new(MockIdempotencyStore)
		inner := testutil.NewMockEventHandler("OrderPlaced")
		h := NewIdempotentHandler(inner, store, zap.NewNop(),
			WithIdempotencyConfig(shared.IdempotencyConfig{Enabled: false}))

		require.NoError(t, h.Handle(ctx, evt))
		require.NoError(t, h.Handle(ctx, evt))
		assert.Equal(t, 2, inner.HandledCount())
		store.AssertNotCalled(t, "MarkProcessed", mock.Anything, mock.Anything, mock.Anything)
	})
}
