package car

import (
	"bytes"
	"math"
	"sort"
	"time"

	"car-rental/internal/domain/reservation"

	"github.com/google/uuid"
)

type State string

const (
	StateBooked                    State = "booked"
	StateAvailableUntilReservation State = "available_until_reservation"
	StateFullyAvailable            State = "fully_available"
)

const day = 24 * time.Hour

// Availability is the summary for one car at one instant. Only the fields of the
// matching state are set.
type Availability struct {
	State                 State
	DaysRemaining         *int
	Until                 *time.Time
	ReservationID         *uuid.UUID
	DaysAvailable         *int
	NextReservationStarts *time.Time
}

// Summarize derives the availability state from the refs at now. The input slice is
// not mutated.
func Summarize(refs []reservation.Ref, now time.Time) Availability {
	active := make([]reservation.Ref, 0, len(refs))
	for _, ref := range refs {
		if ref.Status.IsBlocking() {
			active = append(active, ref)
		}
	}
	sort.SliceStable(active, func(i, j int) bool {
		if active[i].PickupAt.Equal(active[j].PickupAt) {
			return bytes.Compare(active[i].ReservationID[:], active[j].ReservationID[:]) < 0
		}
		return active[i].PickupAt.Before(active[j].PickupAt)
	})

	for _, ref := range active {
		if !ref.PickupAt.After(now) && !now.After(ref.ReturnAt) {
			days := clampDays(math.Ceil(float64(ref.ReturnAt.Sub(now)) / float64(day)))
			until := ref.ReturnAt
			id := ref.ReservationID
			return Availability{
				State:         StateBooked,
				DaysRemaining: &days,
				Until:         &until,
				ReservationID: &id,
			}
		}
	}

	for _, ref := range active {
		if ref.PickupAt.After(now) {
			days := clampDays(math.Floor(float64(ref.PickupAt.Sub(now)) / float64(day)))
			starts := ref.PickupAt
			id := ref.ReservationID
			return Availability{
				State:                 StateAvailableUntilReservation,
				DaysAvailable:         &days,
				ReservationID:         &id,
				NextReservationStarts: &starts,
			}
		}
	}

	return Availability{State: StateFullyAvailable}
}

// SummarizeMany evaluates every car against the same instant.
func SummarizeMany(refsByCar map[uuid.UUID][]reservation.Ref, now time.Time) map[uuid.UUID]Availability {
	out := make(map[uuid.UUID]Availability, len(refsByCar))
	for id, refs := range refsByCar {
		out[id] = Summarize(refs, now)
	}
	return out
}

func clampDays(v float64) int {
	if v < 0 {
		return 0
	}
	return int(v)
}
