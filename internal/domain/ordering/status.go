package ordering

// Status represents the lifecycle state of an order
type Status string

const (
	StatusPending   Status = "pending"
	StatusAccepted  Status = "accepted"
	StatusShipped   Status = "shipped"
	StatusDelivered Status = "delivered"
)

// AllStatuses returns the lifecycle in order
func AllStatuses() []Status {
	return []Status{StatusPending, StatusAccepted, StatusShipped, StatusDelivered}
}

// IsValid checks if the status is a lifecycle state
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusShipped, StatusDelivered:
		return true
	}
	return false
}

// String returns the string representation
func (s Status) String() string {
	return string(s)
}

// Next returns the single state that may follow s, and false when s is
// final or unknown.
func (s Status) Next() (Status, bool) {
	switch s {
	case StatusPending:
		return StatusAccepted, true
	case StatusAccepted:
		return StatusShipped, true
	case StatusShipped:
		return StatusDelivered, true
	}
	return "", false
}

// CanTransitionTo checks if transition to target status is allowed.
// The lifecycle only moves one step forward; skips, reversals and
// same-state updates are rejected.
func (s Status) CanTransitionTo(target Status) bool {
	next, ok := s.Next()
	return ok && next == target
}

// IsFinal reports whether the order has reached the end of its lifecycle
func (s Status) IsFinal() bool {
	return s == StatusDelivered
}
