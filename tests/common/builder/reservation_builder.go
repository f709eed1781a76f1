//go:build unit || e2e

package builder

import (
	"time"

	"car-rental/internal/domain/reservation"
	reqdto "car-rental/internal/handler/dto/request"
	"car-rental/internal/usecase/commands"
	"car-rental/internal/usecase/queries"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

type ReservationBuilder struct {
	ID          uuid.UUID
	CarID       uuid.UUID
	UserID      *uuid.UUID
	Customer    string
	Email       string
	Phone       string
	Pickup      time.Time
	Return      time.Time
	Status      reservation.Status
	AmountCents int64
	Notes       string
	CreatedAt   time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:          uuid.New(),
		CarID:       uuid.New(),
		Customer:    "Jane Doe",
		Email:       "jane@example.com",
		Phone:       "+15550100",
		Pickup:      time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
		Return:      time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		Status:      reservation.StatusPending,
		AmountCents: 22500,
		CreatedAt:   time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) WithCarID(id uuid.UUID) *ReservationBuilder {
	b.CarID = id
	return b
}

func (b *ReservationBuilder) WithPeriod(pickup, ret time.Time) *ReservationBuilder {
	b.Pickup = pickup
	b.Return = ret
	return b
}

func (b *ReservationBuilder) WithStatus(status reservation.Status) *ReservationBuilder {
	b.Status = status
	return b
}

func (b *ReservationBuilder) BuildDomain() *reservation.Reservation {
	amount, _ := reservation.NewMoney(b.AmountCents)
	return reservation.ReconstructReservation(
		b.ID, b.CarID, b.UserID,
		reservation.ReconstructPeriod(b.Pickup, b.Return),
		b.Status, reservation.PaymentPending,
		reservation.Customer{Name: b.Customer, Email: b.Email, Phone: b.Phone},
		amount, reservation.NewNote(b.Notes),
		b.CreatedAt, b.CreatedAt,
	)
}

func (b *ReservationBuilder) BuildInput() commands.CreateReservationInput {
	return commands.CreateReservationInput{
		CarID:         b.CarID.String(),
		UserID:        b.UserID,
		CustomerName:  b.Customer,
		CustomerEmail: b.Email,
		CustomerPhone: b.Phone,
		PickupAt:      b.Pickup.Format(dateLayout),
		ReturnAt:      b.Return.Format(dateLayout),
		AmountCents:   b.AmountCents,
		Notes:         b.Notes,
	}
}

func (b *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		CarID:       b.CarID.String(),
		Customer:    b.Customer,
		Email:       b.Email,
		Phone:       b.Phone,
		PickupDate:  b.Pickup.Format(dateLayout),
		ReturnDate:  b.Return.Format(dateLayout),
		AmountCents: b.AmountCents,
		Notes:       b.Notes,
	}
}

func (b *ReservationBuilder) BuildViewQuery() *queries.ReservationView {
	return &queries.ReservationView{
		ID:            b.ID,
		CarID:         b.CarID,
		CarMake:       "Toyota",
		CarModel:      "Corolla",
		UserID:        b.UserID,
		CustomerName:  b.Customer,
		CustomerEmail: b.Email,
		CustomerPhone: b.Phone,
		PickupAt:      b.Pickup,
		ReturnAt:      b.Return,
		Status:        b.Status.String(),
		PaymentStatus: reservation.PaymentPending.String(),
		AmountCents:   b.AmountCents,
		Notes:         b.Notes,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.CreatedAt,
	}
}
