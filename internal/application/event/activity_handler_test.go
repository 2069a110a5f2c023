package event

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swiftora/marketplace/internal/domain/ordering"
	"github.com/swiftora/marketplace/internal/domain/tieup"
	"github.com/swiftora/marketplace/internal/infrastructure/cache"
	infraevent "github.com/swiftora/marketplace/internal/infrastructure/event"
	"github.com/swiftora/marketplace/internal/infrastructure/telemetry"
	"github.com/swiftora/marketplace/tests/testutil"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newMetrics(t *testing.T) (*telemetry.BusinessMetrics, *sdkmetric.ManualReader) {
	t.Helper()
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })
	m, err := telemetry.NewBusinessMetrics(provider.Meter(telemetry.BusinessMeterName()))
	require.NoError(t, err)
	return m, reader
}

func counterTotal(t *testing.T, reader *sdkmetric.ManualReader, name string) int64 {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != name {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok)
			var total int64
			for _, dp := range sum.DataPoints {
				total += dp.Value
			}
			return total
		}
	}
	return 0
}

func deliveredOrder(t *testing.T) *ordering.Order {
	t.Helper()
	start := time.Date(2026, 1, 5, 8, 0, 0, 0, time.UTC)
	o, err := ordering.PlaceOrder(ordering.PlaceOrderParams{
		SupermarketID: uuid.New(), SupplierID: uuid.New(), ProductID: uuid.New(), SKU: "SOAP-3", Quantity: 4,
	}, start)
	require.NoError(t, err)
	require.NoError(t, o.Advance(ordering.StatusAccepted, start.Add(time.Hour)))
	require.NoError(t, o.Advance(ordering.StatusShipped, start.Add(2*time.Hour)))
	require.NoError(t, o.Advance(ordering.StatusDelivered, start.Add(26*time.Hour)))
	return o
}

func TestOrderActivityHandler(t *testing.T) {
	metrics, reader := newMetrics(t)
	core, logs := observer.New(zapcore.InfoLevel)
	h := NewOrderActivityHandler(metrics, zap.New(core))

	for _, evt := range deliveredOrder(t).GetDomainEvents() {
		require.NoError(t, h.Handle(context.Background(), evt))
	}

	assert.Equal(t, int64(3), counterTotal(t, reader, "marketplace.order.transitions"))
	assert.Equal(t, int64(1), counterTotal(t, reader, "marketplace.order.delivered"))
	assert.Equal(t, 1, logs.FilterMessage("order activity: placed").Len())
	delivered := logs.FilterMessage("order activity: delivered").All()
	require.Len(t, delivered, 1)
	assert.Equal(t, 26*time.Hour, delivered[0].ContextMap()["fulfilment"])

	err := h.Handle(context.Background(), testutil.NewTestEvent("Unrelated"))
	assert.Error(t, err)
}

func TestTieUpActivityHandler(t *testing.T) {
	metrics, reader := newMetrics(t)
	h := NewTieUpActivityHandler(metrics, zap.NewNop())

	tu, err := tieup.NewTieUp(uuid.New(), uuid.New(), time.Now())
	require.NoError(t, err)
	require.NoError(t, tu.Accept(time.Now()))
	for _, evt := range tu.GetDomainEvents() {
		require.NoError(t, h.Handle(context.Background(), evt))
	}

	assert.Equal(t, int64(1), counterTotal(t, reader, "marketplace.tieup.requested"))
	assert.Equal(t, int64(1), counterTotal(t, reader, "marketplace.tieup.accepted"))
}

func TestRegisterActivityHandlers_DeduplicatesRedelivery(t *testing.T) {
	ctx := context.Background()
	metrics, reader := newMetrics(t)
	store := cache.NewInMemoryIdempotencyStore(0)
	t.Cleanup(func() { _ = store.Close() })

	bus := infraevent.NewInMemoryEventBus(zap.NewNop())
	require.NoError(t, bus.Start(ctx))
	t.Cleanup(func() { _ = bus.Stop(ctx) })
	RegisterActivityHandlers(bus, store, metrics, zap.NewNop())

	tu, err := tieup.NewTieUp(uuid.New(), uuid.New(), time.Now())
	require.NoError(t, err)
	events := tu.GetDomainEvents()

	require.NoError(t, bus.Publish(ctx, events...))
	require.NoError(t, bus.Publish(ctx, events...))

	assert.Equal(t, int64(1), counterTotal(t, reader, "marketplace.tieup.requested"))
}
