package car

import "car-rental/internal/domain/reservation"

// HasConflict reports whether any ref whose status is in blocking overlaps candidate.
// A nil set falls back to the default blocking statuses.
func HasConflict(refs []reservation.Ref, candidate reservation.Period, blocking reservation.StatusSet) bool {
	if blocking == nil {
		blocking = reservation.NewStatusSet(reservation.BlockingStatuses()...)
	}
	for _, ref := range refs {
		if !blocking.Contains(ref.Status) {
			continue
		}
		if reservation.Overlaps(ref.PickupAt, ref.ReturnAt, candidate.Pickup(), candidate.Return()) {
			return true
		}
	}
	return false
}
