package ordering

import "time"

// DeliveryDateLayout is the format used for delivered orders' labels
const DeliveryDateLayout = "02 Jan 2006, 15:04"

// Display labels shown to the supermarket while tracking an order
const (
	LabelAwaitingAcceptance = "Awaiting order acceptance"
	LabelAwaitingShipment   = "Awaiting shipment"
	LabelOutForDelivery     = "Out for delivery"
	LabelDelivered          = "Delivered"
	LabelUnknown            = "Unknown"
)

// DisplayLabel derives the tracking label of an order from its status.
// Delivered orders show their delivery date when one is recorded.
func DisplayLabel(status Status, deliveryDate *time.Time) string {
	switch status {
	case StatusPending:
		return LabelAwaitingAcceptance
	case StatusAccepted:
		return LabelAwaitingShipment
	case StatusShipped:
		return LabelOutForDelivery
	case StatusDelivered:
		if deliveryDate != nil && !deliveryDate.IsZero() {
			return deliveryDate.Format(DeliveryDateLayout)
		}
		return LabelDelivered
	default:
		return LabelUnknown
	}
}
