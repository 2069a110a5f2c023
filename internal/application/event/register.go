package event

import (
	"github.com/swiftora/marketplace/internal/domain/shared"
	infraevent "github.com/swiftora/marketplace/internal/infrastructure/event"
	"github.com/swiftora/marketplace/internal/infrastructure/telemetry"
	"go.uber.org/zap"
)

// RegisterActivityHandlers subscribes the activity handlers to bus, each
// deduplicated through store under its own key prefix
func RegisterActivityHandlers(
	bus shared.EventSubscriber,
	store shared.IdempotencyStore,
	metrics *telemetry.BusinessMetrics,
	logger *zap.Logger,
) {
	handlers := map[string]shared.EventHandler{
		"order-activity:": NewOrderActivityHandler(metrics, logger),
		"tieup-activity:": NewTieUpActivityHandler(metrics, logger),
	}
	for prefix, h := range handlers {
		bus.Subscribe(infraevent.NewIdempotentHandler(h, store, logger, infraevent.WithKeyPrefix(prefix)))
	}
}
