package bookings

type Status string

const (
	StatusPaymentPending Status = "PAYMENT_PENDING"
	StatusConfirmed      Status = "CONFIRMED"
	StatusCancelled      Status = "CANCELLED"
	StatusCheckedIn      Status = "CHECKED_IN"
	StatusPaymentFailed  Status = "PAYMENT_FAILED"
)

// transitions is the full lifecycle graph. CANCELLED, CHECKED_IN and
// PAYMENT_FAILED are terminal.
var transitions = map[Status][]Status{
	StatusPaymentPending: {StatusConfirmed, StatusPaymentFailed, StatusCancelled},
	StatusConfirmed:      {StatusCancelled, StatusCheckedIn},
	StatusCancelled:      {},
	StatusCheckedIn:      {},
	StatusPaymentFailed:  {},
}

func (s Status) IsValid() bool {
	_, ok := transitions[s]
	return ok
}

func (s Status) IsTerminal() bool {
	next, ok := transitions[s]
	return ok && len(next) == 0
}

// CanTransitionTo reports whether the lifecycle graph permits moving from s
// to next.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}
