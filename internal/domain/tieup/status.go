package tieup

import "encoding/json"

type statusKind uint8

const (
	kindNotRequested statusKind = iota
	kindPending
	kindAccepted
	kindOther
)

// Wire values of the known statuses
const (
	WireNotRequested = "not_requested"
	WirePending      = "pending"
	WireAccepted     = "accepted"
)

// Status is the state of the partnership between a supermarket and a
// supplier. It is one of NotRequested, Pending, Accepted, or Other(raw).
// NotRequested is never persisted: it stands for the absence of a tie-up,
// so a lookup miss is never confused with a stored status such as "rejected".
type Status struct {
	kind statusKind
	raw  string
}

// NotRequested is the status of a pair with no tie-up
func NotRequested() Status { return Status{kind: kindNotRequested} }

// Pending is the status of a requested, unanswered tie-up
func Pending() Status { return Status{kind: kindPending} }

// Accepted is the status of an accepted tie-up
func Accepted() Status { return Status{kind: kindAccepted} }

// Other wraps any stored status this service does not write itself
func Other(raw string) Status { return Status{kind: kindOther, raw: raw} }

// ParseStatus maps a wire value to a Status
func ParseStatus(raw string) Status {
	switch raw {
	case "", WireNotRequested:
		return NotRequested()
	case WirePending:
		return Pending()
	case WireAccepted:
		return Accepted()
	default:
		return Other(raw)
	}
}

// String returns the wire value
func (s Status) String() string {
	switch s.kind {
	case kindPending:
		return WirePending
	case kindAccepted:
		return WireAccepted
	case kindOther:
		return s.raw
	default:
		return WireNotRequested
	}
}

func (s Status) IsNotRequested() bool { return s.kind == kindNotRequested }
func (s Status) IsPending() bool      { return s.kind == kindPending }
func (s Status) IsAccepted() bool     { return s.kind == kindAccepted }
func (s Status) IsOther() bool        { return s.kind == kindOther }

// IsTerminal reports whether no further transition is possible
func (s Status) IsTerminal() bool {
	return s.kind == kindAccepted || s.kind == kindOther
}

// BlocksNewRequest reports whether a stored tie-up in this status prevents
// the supermarket from requesting again.
func (s Status) BlocksNewRequest() bool {
	return s.kind == kindPending || s.kind == kindAccepted
}

// MarshalJSON encodes the status as its wire value
func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON decodes a wire value
func (s *Status) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = ParseStatus(raw)
	return nil
}
