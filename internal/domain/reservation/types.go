package reservation

import "errors"

var ErrUnknownStatus = errors.New("unknown reservation status")

type Status string

const (
	StatusPending   Status = "pending"
	StatusActive    Status = "active"
	StatusUpcoming  Status = "upcoming"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

var allStatuses = []Status{StatusPending, StatusActive, StatusUpcoming, StatusCompleted, StatusCancelled}

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrUnknownStatus
	}
	return st, nil
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusActive, StatusUpcoming, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsBlocking reports whether a reservation in this status occupies its car.
func (s Status) IsBlocking() bool {
	switch s {
	case StatusPending, StatusActive, StatusUpcoming:
		return true
	case StatusCompleted, StatusCancelled:
		return false
	default:
		return false
	}
}

// BlockingStatuses returns a fresh copy of the statuses that participate in conflict checks.
func BlockingStatuses() []Status {
	return []Status{StatusPending, StatusActive, StatusUpcoming}
}

// StatusSet is a membership set used by conflict checks that accept a custom status filter.
type StatusSet map[Status]struct{}

func NewStatusSet(statuses ...Status) StatusSet {
	set := make(StatusSet, len(statuses))
	for _, s := range statuses {
		set[s] = struct{}{}
	}
	return set
}

func (s StatusSet) Contains(st Status) bool {
	_, ok := s[st]
	return ok
}

func (s StatusSet) Strings() []string {
	out := make([]string, 0, len(s))
	for _, st := range allStatuses {
		if s.Contains(st) {
			out = append(out, st.String())
		}
	}
	return out
}

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"
)

func ParsePaymentStatus(s string) (PaymentStatus, error) {
	ps := PaymentStatus(s)
	if !ps.IsValid() {
		return "", ErrUnknownStatus
	}
	return ps, nil
}

func (p PaymentStatus) String() string {
	return string(p)
}

func (p PaymentStatus) IsValid() bool {
	switch p {
	case PaymentPending, PaymentPaid, PaymentFailed, PaymentRefunded:
		return true
	default:
		return false
	}
}
