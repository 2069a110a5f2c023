package event

import (
	"context"
	"fmt"

	"github.com/swiftora/marketplace/internal/domain/shared"
	"github.com/swiftora/marketplace/internal/domain/tieup"
	"github.com/swiftora/marketplace/internal/infrastructure/telemetry"
	"go.uber.org/zap"
)

// TieUpActivityHandler records tie-up requests and acceptances
type TieUpActivityHandler struct {
	metrics *telemetry.BusinessMetrics
	logger  *zap.Logger
}

// NewTieUpActivityHandler creates a new handler for tie-up events
func NewTieUpActivityHandler(metrics *telemetry.BusinessMetrics, logger *zap.Logger) *TieUpActivityHandler {
	return &TieUpActivityHandler{
		metrics: metrics,
		logger:  logger,
	}
}

// EventTypes returns the event types this handler is interested in
func (h *TieUpActivityHandler) EventTypes() []string {
	return []string{tieup.EventTypeTieUpRequested, tieup.EventTypeTieUpAccepted}
}

// Handle processes a tie-up event
func (h *TieUpActivityHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	switch e := event.(type) {
	case *tieup.TieUpRequestedEvent:
		h.logger.Info("tie-up activity: requested",
			zap.String("tie_up_id", e.TieUpID.String()),
			zap.String("supermarket_id", e.SupermarketID.String()),
			zap.String("supplier_id", e.SupplierID.String()))
		h.metrics.TieUpRequested(ctx)
	case *tieup.TieUpAcceptedEvent:
		h.logger.Info("tie-up activity: accepted",
			zap.String("tie_up_id", e.TieUpID.String()),
			zap.String("supermarket_id", e.SupermarketID.String()),
			zap.String("supplier_id", e.SupplierID.String()))
		h.metrics.TieUpAccepted(ctx)
	default:
		return fmt.Errorf("unexpected event type: %s", event.EventType())
	}
	return nil
}

var _ shared.EventHandler = (*TieUpActivityHandler)(nil)
