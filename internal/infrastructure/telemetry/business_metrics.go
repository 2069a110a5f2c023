package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const businessMeterName = "github.com/swiftora/marketplace/business"

// BusinessMetrics records marketplace activity: tie-ups, orders, stock
// rejections and geocoding fallbacks. A nil *BusinessMetrics records nothing.
type BusinessMetrics struct {
	tieUpsRequested   *Counter
	tieUpsAccepted    *Counter
	ordersPlaced      *Counter
	orderTransitions  *Counter
	ordersDelivered   *Counter
	orderRejections   *Counter
	geocodeFallbacks  *Counter
	orderQuantity     *Histogram
	fulfillmentLength *Histogram
}

// NewBusinessMetrics creates the instruments on meter
func NewBusinessMetrics(meter metric.Meter) (*BusinessMetrics, error) {
	m := &BusinessMetrics{}
	var err error

	if m.tieUpsRequested, err = NewCounter(meter, "marketplace.tieup.requested", "Tie-up requests created", "{request}"); err != nil {
		return nil, err
	}
	if m.tieUpsAccepted, err = NewCounter(meter, "marketplace.tieup.accepted", "Tie-up requests accepted", "{request}"); err != nil {
		return nil, err
	}
	if m.ordersPlaced, err = NewCounter(meter, "marketplace.order.placed", "Orders placed", "{order}"); err != nil {
		return nil, err
	}
	if m.orderTransitions, err = NewCounter(meter, "marketplace.order.transitions", "Order status transitions", "{transition}"); err != nil {
		return nil, err
	}
	if m.ordersDelivered, err = NewCounter(meter, "marketplace.order.delivered", "Orders delivered", "{order}"); err != nil {
		return nil, err
	}
	if m.orderRejections, err = NewCounter(meter, "marketplace.order.rejected", "Order placements refused by a business rule", "{order}"); err != nil {
		return nil, err
	}
	if m.geocodeFallbacks, err = NewCounter(meter, "marketplace.geocode.fallbacks", "Addresses shown as the placeholder", "{lookup}"); err != nil {
		return nil, err
	}
	if m.orderQuantity, err = NewHistogram(meter, "marketplace.order.quantity", "Units per placed order", "{unit}",
		1, 5, 10, 25, 50, 100, 250, 500, 1000); err != nil {
		return nil, err
	}
	if m.fulfillmentLength, err = NewHistogram(meter, "marketplace.order.fulfillment_duration", "Time from order to delivery", "h",
		1, 6, 12, 24, 48, 72, 168); err != nil {
		return nil, err
	}
	return m, nil
}

// TieUpRequested counts a new tie-up request
func (m *BusinessMetrics) TieUpRequested(ctx context.Context) {
	if m == nil {
		return
	}
	m.tieUpsRequested.Inc(ctx)
}

// TieUpAccepted counts an accepted tie-up
func (m *BusinessMetrics) TieUpAccepted(ctx context.Context) {
	if m == nil {
		return
	}
	m.tieUpsAccepted.Inc(ctx)
}

// OrderPlaced counts a placed order and its quantity
func (m *BusinessMetrics) OrderPlaced(ctx context.Context, quantity int, stockPolicy string) {
	if m == nil {
		return
	}
	attrs := attribute.String("stock_policy", stockPolicy)
	m.ordersPlaced.Inc(ctx, attrs)
	m.orderQuantity.Record(ctx, float64(quantity), attrs)
}

// OrderRejected counts a placement refused with the given error code
func (m *BusinessMetrics) OrderRejected(ctx context.Context, code string) {
	if m == nil {
		return
	}
	m.orderRejections.Inc(ctx, attribute.String("code", code))
}

// OrderTransition counts a lifecycle step
func (m *BusinessMetrics) OrderTransition(ctx context.Context, from, to string) {
	if m == nil {
		return
	}
	m.orderTransitions.Inc(ctx, attribute.String("from", from), attribute.String("to", to))
}

// OrderDelivered counts a delivery and how long fulfilment took
func (m *BusinessMetrics) OrderDelivered(ctx context.Context, fulfilment time.Duration) {
	if m == nil {
		return
	}
	m.ordersDelivered.Inc(ctx)
	m.fulfillmentLength.Record(ctx, fulfilment.Hours())
}

// GeocodeFallback counts an address rendered as the placeholder
func (m *BusinessMetrics) GeocodeFallback(ctx context.Context, reason string) {
	if m == nil {
		return
	}
	m.geocodeFallbacks.Inc(ctx, attribute.String("reason", reason))
}

// BusinessMeterName is the instrumentation scope of BusinessMetrics
func BusinessMeterName() string {
	return businessMeterName
}
