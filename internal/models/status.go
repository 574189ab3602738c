package models

// Status is the alert lifecycle state.
//
// PENDING -> FIRING -> {ACKNOWLEDGED, RESOLVED}
// FIRING -> ESCALATED -> {ACKNOWLEDGED, RESOLVED, SUPPRESSED}
// any non-terminal -> SUPPRESSED
// PENDING (stale, never fired) -> EXPIRED
// {RESOLVED, SUPPRESSED} -> CLOSED
type Status string

const (
	StatusPending      Status = "pending"
	StatusFiring       Status = "firing"
	StatusAcknowledged Status = "acknowledged"
	StatusEscalated    Status = "escalated"
	StatusSuppressed   Status = "suppressed"
	StatusResolved     Status = "resolved"
	StatusClosed       Status = "closed"
	StatusExpired      Status = "expired"
)

// Terminal states accept no further transitions except RESOLVED -> CLOSED.
func (s Status) Terminal() bool {
	return s == StatusResolved || s == StatusClosed || s == StatusExpired
}

// Active states are the dedup/correlation population.
func (s Status) Active() bool {
	return s == StatusPending || s == StatusFiring
}

// RequiresAttention marks the states an operator still has to act on.
func (s Status) RequiresAttention() bool {
	return s == StatusFiring || s == StatusEscalated
}

func (s Status) CanAcknowledge() bool {
	return s == StatusPending || s == StatusFiring || s == StatusEscalated
}

func (s Status) CanResolve() bool {
	return !s.Terminal()
}

func (s Status) CanEscalate() bool {
	return s.RequiresAttention()
}

func (s Status) CanSuppress() bool {
	return !s.Terminal() && s != StatusSuppressed
}

func (s Status) CanClose() bool {
	return s == StatusResolved || s == StatusSuppressed
}
