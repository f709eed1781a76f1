package reservation

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidInstant = errors.New("invalid date")
	ErrInvalidPeriod  = errors.New("pickup must be before return")
	ErrNegativeAmount = errors.New("amount cannot be negative")
)

// Overlaps reports whether the closed ranges [aStart, aEnd] and [bStart, bEnd] intersect.
// Ranges that only share a boundary instant overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !aStart.After(bEnd) && !bStart.After(aEnd)
}

var instantLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseInstant accepts RFC3339 timestamps, zone-less timestamps and plain dates (UTC midnight).
func ParseInstant(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrInvalidInstant
	}
	for _, layout := range instantLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidInstant
}

// Period is a validated rental window with pickup strictly before return.
type Period struct {
	pickup time.Time
	ret    time.Time
}

func NewPeriod(pickup, ret time.Time) (Period, error) {
	if pickup.IsZero() || ret.IsZero() {
		return Period{}, ErrInvalidInstant
	}
	if !pickup.Before(ret) {
		return Period{}, ErrInvalidPeriod
	}
	return Period{pickup: pickup, ret: ret}, nil
}

func ParsePeriod(pickup, ret string) (Period, error) {
	p, err := ParseInstant(pickup)
	if err != nil {
		return Period{}, err
	}
	r, err := ParseInstant(ret)
	if err != nil {
		return Period{}, err
	}
	return NewPeriod(p, r)
}

// ReconstructPeriod skips validation for rows loaded from storage.
func ReconstructPeriod(pickup, ret time.Time) Period {
	return Period{pickup: pickup, ret: ret}
}

func (p Period) Pickup() time.Time {
	return p.pickup
}

func (p Period) Return() time.Time {
	return p.ret
}

func (p Period) Duration() time.Duration {
	return p.ret.Sub(p.pickup)
}

func (p Period) Overlaps(other Period) bool {
	return Overlaps(p.pickup, p.ret, other.pickup, other.ret)
}

func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.pickup) && !t.After(p.ret)
}

type Customer struct {
	Name    string
	Email   string
	Phone   string
	Address string
}

// Money is an amount in minor units passed through from the client.
type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeAmount
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

type Note struct {
	value string
}

func NewNote(value string) Note {
	return Note{value: strings.TrimSpace(value)}
}

func (n Note) String() string {
	return n.value
}

func (n Note) IsEmpty() bool {
	return n.value == ""
}
