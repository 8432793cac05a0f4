package kiosk

// State is the position of a terminal in the scan workflow.
type State int

const (
	StateUnauthenticated State = iota
	StateAwaitingPIN
	StateAwaitingRegistration
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateUnauthenticated:
		return "unauthenticated"
	case StateAwaitingPIN:
		return "awaiting_pin"
	case StateAwaitingRegistration:
		return "awaiting_registration"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Mode selects what an item scan does once a user is authenticated.
type Mode int

const (
	ModeCheckout Mode = iota
	ModeCheckin
)

func (m Mode) String() string {
	if m == ModeCheckin {
		return "checkin"
	}
	return "checkout"
}

// ParseMode accepts "checkout"/"out" and "checkin"/"in".
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "checkout", "out":
		return ModeCheckout, true
	case "checkin", "in":
		return ModeCheckin, true
	default:
		return ModeCheckout, false
	}
}
