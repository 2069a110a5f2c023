package event

import (
	"context"
	"fmt"

	"github.com/swiftora/marketplace/internal/domain/ordering"
	"github.com/swiftora/marketplace/internal/domain/shared"
	"github.com/swiftora/marketplace/internal/infrastructure/telemetry"
	"go.uber.org/zap"
)

// OrderActivityHandler records order lifecycle activity in logs and metrics
type OrderActivityHandler struct {
	metrics *telemetry.BusinessMetrics
	logger  *zap.Logger
}

// NewOrderActivityHandler creates a new handler for order events
func NewOrderActivityHandler(metrics *telemetry.BusinessMetrics, logger *zap.Logger) *OrderActivityHandler {
	return &OrderActivityHandler{
		metrics: metrics,
		logger:  logger,
	}
}

// EventTypes returns the event types this handler is interested in
func (h *OrderActivityHandler) EventTypes() []string {
	return []string{
		ordering.EventTypeOrderPlaced,
		ordering.EventTypeOrderStatusChanged,
		ordering.EventTypeOrderDelivered,
	}
}

// Handle processes an order event
func (h *OrderActivityHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	switch e := event.(type) {
	case *ordering.OrderPlacedEvent:
		h.logger.Info("order activity: placed",
			zap.String("order_id", e.OrderID.String()),
			zap.String("supermarket_id", e.SupermarketID.String()),
			zap.String("supplier_id", e.SupplierID.String()),
			zap.String("sku", e.SKU),
			zap.Int("quantity", e.Quantity))
	case *ordering.OrderStatusChangedEvent:
		h.logger.Info("order activity: status changed",
			zap.String("order_id", e.OrderID.String()),
			zap.String("from", e.From.String()),
			zap.String("to", e.To.String()))
		h.metrics.OrderTransition(ctx, e.From.String(), e.To.String())
	case *ordering.OrderDeliveredEvent:
		fulfilment := e.DeliveryDate.Sub(e.OrderDate)
		h.logger.Info("order activity: delivered",
			zap.String("order_id", e.OrderID.String()),
			zap.String("supermarket_id", e.SupermarketID.String()),
			zap.Duration("fulfilment", fulfilment))
		h.metrics.OrderDelivered(ctx, fulfilment)
	default:
		h.logger.Error("unexpected event type", zap.String("actual", event.EventType()))
		return fmt.Errorf("unexpected event type: %s", event.EventType())
	}
	return nil
}

var _ shared.EventHandler = (*OrderActivityHandler)(nil)
