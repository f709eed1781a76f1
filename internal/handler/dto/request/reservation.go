package request

import (
	"car-rental/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	CarID       string `json:"carId"`
	Customer    string `json:"customer"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	PickupDate  string `json:"pickupDate"`
	ReturnDate  string `json:"returnDate"`
	AmountCents int64  `json:"amountCents"`
	Notes       string `json:"notes"`
}

// ToInput leaves field validation to the booking command.
func (r *CreateReservationRequest) ToInput(userID *uuid.UUID) commands.CreateReservationInput {
	return commands.CreateReservationInput{
		CarID:           r.CarID,
		UserID:          userID,
		CustomerName:    r.Customer,
		CustomerEmail:   r.Email,
		CustomerPhone:   r.Phone,
		CustomerAddress: r.Address,
		PickupAt:        r.PickupDate,
		ReturnAt:        r.ReturnDate,
		AmountCents:     r.AmountCents,
		Notes:           r.Notes,
	}
}

type UpdateReservationStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateReservationRequest mirrors CreateReservationRequest; absent fields are left alone.
type UpdateReservationRequest struct {
	Customer    *string `json:"customer"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	Address     *string `json:"address"`
	PickupDate  *string `json:"pickupDate"`
	ReturnDate  *string `json:"returnDate"`
	AmountCents *int64  `json:"amountCents"`
	Notes       *string `json:"notes"`
}

func (r *UpdateReservationRequest) ToInput() commands.UpdateReservationInput {
	return commands.UpdateReservationInput{
		CustomerName:    r.Customer,
		CustomerEmail:   r.Email,
		CustomerPhone:   r.Phone,
		CustomerAddress: r.Address,
		PickupAt:        r.PickupDate,
		ReturnAt:        r.ReturnDate,
		AmountCents:     r.AmountCents,
		Notes:           r.Notes,
	}
}

type UpdatePaymentStatusRequest struct {
	PaymentStatus string `json:"paymentStatus" binding:"required"`
}
