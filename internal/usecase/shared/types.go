package shared

import (
	"time"

	"github.com/google/uuid"
)

const (
	JobKindReservationCreated       = "reservation.created"
	JobKindReservationStatusChanged = "reservation.status_changed"
	JobKindReservationDeleted       = "reservation.deleted"
	JobKindReservationUpdated       = "reservation.updated"
	JobKindPaymentStatusChanged     = "reservation.payment_changed"
)

const (
	JobStatusQueued     = "queued"
	JobStatusProcessing = "processing"
	JobStatusSent       = "sent"
	JobStatusFailed     = "failed"
)

// NewJob is an outbox entry written in the same transaction as the change it announces.
type NewJob struct {
	Kind    string
	Topic   string
	Key     string
	Payload []byte
	RunAt   time.Time
}

// Job is a claimed outbox entry.
type Job struct {
	ID        uuid.UUID
	Kind      string
	Topic     string
	Key       string
	Payload   []byte
	RunAt     time.Time
	Attempts  int
	Status    string
	LastError *string
	CreatedAt time.Time
	// UpdatedAt is when the job was last claimed or settled.
	UpdatedAt time.Time
}

type ReservationEvent struct {
	ReservationID uuid.UUID  `json:"reservationId"`
	CarID         uuid.UUID  `json:"carId"`
	UserID        *uuid.UUID `json:"userId,omitempty"`
	Status        string     `json:"status"`
	PickupAt      time.Time  `json:"pickupAt"`
	ReturnAt      time.Time  `json:"returnAt"`
	CustomerEmail string     `json:"customerEmail,omitempty"`
	OccurredAt    time.Time  `json:"occurredAt"`
}
