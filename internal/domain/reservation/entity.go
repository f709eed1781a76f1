package reservation

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus        = errors.New("invalid reservation status")
	ErrInvalidPaymentStatus = errors.New("invalid payment status")
)

type Reservation struct {
	id            uuid.UUID
	carID         uuid.UUID
	userID        *uuid.UUID
	period        Period
	status        Status
	paymentStatus PaymentStatus
	customer      Customer
	amount        Money
	note          Note
	createdAt     time.Time
	updatedAt     time.Time
}

// NewReservation builds a pending, unpaid reservation with a fresh id.
func NewReservation(carID uuid.UUID, userID *uuid.UUID, period Period, customer Customer, amount Money, note Note, now time.Time) *Reservation {
	return &Reservation{
		id:            uuid.New(),
		carID:         carID,
		userID:        userID,
		period:        period,
		status:        StatusPending,
		paymentStatus: PaymentPending,
		customer:      customer,
		amount:        amount,
		note:          note,
		createdAt:     now,
		updatedAt:     now,
	}
}

func ReconstructReservation(
	id, carID uuid.UUID,
	userID *uuid.UUID,
	period Period,
	status Status,
	paymentStatus PaymentStatus,
	customer Customer,
	amount Money,
	note Note,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:            id,
		carID:         carID,
		userID:        userID,
		period:        period,
		status:        status,
		paymentStatus: paymentStatus,
		customer:      customer,
		amount:        amount,
		note:          note,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (r *Reservation) ID() uuid.UUID                { return r.id }
func (r *Reservation) CarID() uuid.UUID             { return r.carID }
func (r *Reservation) UserID() *uuid.UUID           { return r.userID }
func (r *Reservation) Period() Period               { return r.period }
func (r *Reservation) Status() Status               { return r.status }
func (r *Reservation) PaymentStatus() PaymentStatus { return r.paymentStatus }
func (r *Reservation) Customer() Customer           { return r.customer }
func (r *Reservation) Amount() Money                { return r.amount }
func (r *Reservation) Note() Note                   { return r.note }
func (r *Reservation) CreatedAt() time.Time         { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time         { return r.updatedAt }

func (r *Reservation) ChangeStatus(status Status, now time.Time) error {
	if !status.IsValid() {
		return ErrInvalidStatus
	}
	r.status = status
	r.updatedAt = now
	return nil
}

// ChangePaymentStatus records a payment outcome. A paid reservation becomes active.
func (r *Reservation) ChangePaymentStatus(ps PaymentStatus, now time.Time) error {
	if !ps.IsValid() {
		return ErrInvalidPaymentStatus
	}
	r.paymentStatus = ps
	if ps == PaymentPaid {
		r.status = StatusActive
	}
	r.updatedAt = now
	return nil
}

// Reschedule moves the reservation to a new window. Callers re-check conflicts first.
func (r *Reservation) Reschedule(period Period, now time.Time) {
	r.period = period
	r.updatedAt = now
}

func (r *Reservation) Revise(customer Customer, amount Money, note Note, now time.Time) {
	r.customer = customer
	r.amount = amount
	r.note = note
	r.updatedAt = now
}

// Ref returns the denormalized entry kept on the owning car.
func (r *Reservation) Ref() Ref {
	return Ref{
		ReservationID: r.id,
		PickupAt:      r.period.Pickup(),
		ReturnAt:      r.period.Return(),
		Status:        r.status,
	}
}

// Ref is the per-car cached view of a reservation.
type Ref struct {
	ReservationID uuid.UUID `json:"reservationId"`
	PickupAt      time.Time `json:"pickupAt"`
	ReturnAt      time.Time `json:"returnAt"`
	Status        Status    `json:"status"`
}

func (r Ref) Period() Period {
	return ReconstructPeriod(r.PickupAt, r.ReturnAt)
}
