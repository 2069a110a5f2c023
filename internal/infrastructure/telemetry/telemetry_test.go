package telemetry

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func collect(t *testing.T, reader *sdkmetric.ManualReader) map[string]metricdata.Aggregation {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	out := map[string]metricdata.Aggregation{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			out[m.Name] = m.Data
		}
	}
	return out
}

func sumOf(t *testing.T, data metricdata.Aggregation) int64 {
	t.Helper()
	s, ok := data.(metricdata.Sum[int64])
	require.True(t, ok, "expected an int64 sum, got %T", data)
	var total int64
	for _, dp := range s.DataPoints {
		total += dp.Value
	}
	return total
}

func TestBusinessMetrics(t *testing.T) {
	ctx := context.Background()
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = provider.Shutdown(ctx) })

	m, err := NewBusinessMetrics(provider.Meter(BusinessMeterName()))
	require.NoError(t, err)

	m.TieUpRequested(ctx)
	m.TieUpRequested(ctx)
	m.TieUpAccepted(ctx)
	m.OrderPlaced(ctx, 12, "check_only")
	m.OrderRejected(ctx, "INSUFFICIENT_STOCK")
	m.OrderTransition(ctx, "pending", "accepted")
	m.OrderTransition(ctx, "accepted", "shipped")
	m.OrderDelivered(ctx, 30*time.Hour)
	m.GeocodeFallback(ctx, "no_location")

	got := collect(t, reader)
	assert.Equal(t, int64(2), sumOf(t, got["marketplace.tieup.requested"]))
	assert.Equal(t, int64(1), sumOf(t, got["marketplace.tieup.accepted"]))
	assert.Equal(t, int64(1), sumOf(t, got["marketplace.order.placed"]))
	assert.Equal(t, int64(1), sumOf(t, got["marketplace.order.rejected"]))
	assert.Equal(t, int64(2), sumOf(t, got["marketplace.order.transitions"]))
	assert.Equal(t, int64(1), sumOf(t, got["marketplace.order.delivered"]))
	assert.Equal(t, int64(1), sumOf(t, got["marketplace.geocode.fallbacks"]))

	hist, ok := got["marketplace.order.quantity"].(metricdata.Histogram[float64])
	require.True(t, ok)
	require.Len(t, hist.DataPoints, 1)
	assert.Equal(t, 12.0, hist.DataPoints[0].Sum)
	policy, _ := hist.DataPoints[0].Attributes.Value(attribute.Key("stock_policy"))
	assert.Equal(t, "check_only", policy.AsString())
}

func TestSamplerFor(t *testing.T) {
	assert.Equal(t, sdktrace.NeverSample().Description(), samplerFor(0).Description())
	assert.Equal(t, sdktrace.ParentBased(sdktrace.AlwaysSample()).Description(), samplerFor(1).Description())
	assert.Contains(t, samplerFor(0.25).Description(), "TraceIDRatioBased{0.25}")
}

func TestDisabledProviders(t *testing.T) {
	ctx := context.Background()
	cfg := Config{Enabled: false, ServiceName: "marketplace"}

	tp, err := NewTracerProvider(ctx, cfg, zap.NewNop())
	require.NoError(t, err)
	assert.False(t, tp.Enabled())
	tp.EnableSpanProfiles()
	assert.NoError(t, tp.Shutdown(ctx))

	mp, err := NewMeterProvider(ctx, cfg, 0, zap.NewNop())
	require.NoError(t, err)
	assert.NotNil(t, mp.Meter("x"))
	assert.NoError(t, mp.Shutdown(ctx))

	lp, err := NewLoggerProvider(ctx, cfg, zap.NewNop())
	require.NoError(t, err)
	assert.Nil(t, lp.ZapCore("marketplace", zapcore.InfoLevel))
	assert.NoError(t, lp.Shutdown(ctx))

	p, err := NewProfiler(ProfilerConfig{}, zap.NewNop())
	require.NoError(t, err)
	assert.False(t, p.Running())
	assert.NoError(t, p.Stop())
}

func TestNewProfiler_RequiresAddress(t *testing.T) {
	_, err := NewProfiler(ProfilerConfig{Enabled: true}, zap.NewNop())
	assert.Error(t, err)
}

func TestLevelFilterCore(t *testing.T) {
	inner, logs := observer.New(zapcore.DebugLevel)
	core := &levelFilterCore{Core: inner, minLevel: zapcore.WarnLevel}
	log := zap.New(core).With(zap.String("component", "test"))

	log.Info("dropped")
	log.Warn("kept")
	log.Error("kept too")

	require.Equal(t, 2, logs.Len())
	assert.Equal(t, "kept", logs.All()[0].Message)
	assert.Equal(t, "test", logs.All()[0].ContextMap()["component"])
}
