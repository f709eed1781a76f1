package shared

import (
	"context"
	"time"

	"car-rental/internal/domain/car"
	"car-rental/internal/domain/reservation"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within runs fn in one atomic transaction. Any error returned by fn rolls back every
	// write made through tx. Transient serialization failures are retried.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx exposes repositories bound to the running transaction.
type Tx interface {
	Cars() CarRepository
	Reservations() ReservationRepository
	Notifications() NotificationRepository
}

type CarRepository interface {
	// LockByID loads the car and holds its lock until the transaction ends.
	LockByID(ctx context.Context, id uuid.UUID) (*car.Car, error)
	Create(ctx context.Context, c *car.Car) error
	Update(ctx context.Context, c *car.Car) error
	Delete(ctx context.Context, id uuid.UUID) error
	AppendReservationRef(ctx context.Context, carID uuid.UUID, ref reservation.Ref) error
	UpdateReservationRefStatus(ctx context.Context, carID, reservationID uuid.UUID, status reservation.Status) error
	// ReplaceReservationRef swaps the stored ref carrying ref.ReservationID for ref.
	ReplaceReservationRef(ctx context.Context, carID uuid.UUID, ref reservation.Ref) error
	RemoveReservationRef(ctx context.Context, carID, reservationID uuid.UUID) error
}

type ReservationRepository interface {
	// HasBlockingOverlap checks the canonical records; exclude skips one reservation id.
	HasBlockingOverlap(ctx context.Context, carID uuid.UUID, period reservation.Period, blocking reservation.StatusSet, exclude uuid.UUID) (bool, error)
	Create(ctx context.Context, res *reservation.Reservation) error
	FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status reservation.Status, at time.Time) error
	// Update persists every mutable field of res.
	Update(ctx context.Context, res *reservation.Reservation) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, job NewJob) error
}
