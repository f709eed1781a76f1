package response

import (
	"time"

	"car-rental/internal/domain/car"
	"car-rental/internal/domain/reservation"
	"car-rental/internal/pkg/errs"
	"car-rental/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type AvailabilityResponse struct {
	State                 string     `json:"state"`
	DaysRemaining         *int       `json:"daysRemaining,omitempty"`
	Until                 *time.Time `json:"until,omitempty"`
	ReservationID         *uuid.UUID `json:"reservationId,omitempty"`
	DaysAvailable         *int       `json:"daysAvailable,omitempty"`
	NextReservationStarts *time.Time `json:"nextReservationStarts,omitempty"`
}

type ReservationRefResponse struct {
	ReservationID uuid.UUID `json:"reservationId"`
	PickupAt      time.Time `json:"pickupDate"`
	ReturnAt      time.Time `json:"returnDate"`
	Status        string    `json:"status"`
}

type CarResponse struct {
	ID             uuid.UUID                `json:"id"`
	Make           string                   `json:"make"`
	Model          string                   `json:"model"`
	Year           int                      `json:"year"`
	Color          string                   `json:"color,omitempty"`
	Category       string                   `json:"category"`
	Seats          int                      `json:"seats"`
	Transmission   string                   `json:"transmission"`
	FuelType       string                   `json:"fuelType"`
	Mileage        int                      `json:"mileage"`
	DailyRateCents int64                    `json:"dailyRateCents"`
	Status         string                   `json:"status"`
	ImageURL       string                   `json:"imageUrl,omitempty"`
	Reservations   []ReservationRefResponse `json:"reservations"`
	Availability   AvailabilityResponse     `json:"availability"`
	CreatedAt      time.Time                `json:"createdAt"`
	UpdatedAt      time.Time                `json:"updatedAt"`
}

type RangeAvailabilityResponse struct {
	CarID      uuid.UUID `json:"carId"`
	PickupDate time.Time `json:"pickupDate"`
	ReturnDate time.Time `json:"returnDate"`
	Available  bool      `json:"available"`
}

func FromCarView(v *queries.CarView) (*CarResponse, error) {
	var res CarResponse
	if err := copier.CopyWithOption(&res, v, copier.Option{IgnoreEmpty: true, DeepCopy: true}); err != nil {
		return nil, errs.Wrap(err, "build car response")
	}
	res.Reservations = fromRefs(v.Reservations)
	res.Availability = FromAvailability(v.Availability)
	return &res, nil
}

func FromCarViews(views []*queries.CarView) ([]*CarResponse, error) {
	out := make([]*CarResponse, len(views))
	for i, v := range views {
		res, err := FromCarView(v)
		if err != nil {
			return nil, err
		}
		out[i] = res
	}
	return out, nil
}

func FromAvailability(a car.Availability) AvailabilityResponse {
	return AvailabilityResponse{
		State:                 string(a.State),
		DaysRemaining:         a.DaysRemaining,
		Until:                 a.Until,
		ReservationID:         a.ReservationID,
		DaysAvailable:         a.DaysAvailable,
		NextReservationStarts: a.NextReservationStarts,
	}
}

func FromAvailabilityMap(m map[uuid.UUID]car.Availability) map[string]AvailabilityResponse {
	out := make(map[string]AvailabilityResponse, len(m))
	for id, a := range m {
		out[id.String()] = FromAvailability(a)
	}
	return out
}

func FromRangeAvailability(r *queries.RangeAvailability) *RangeAvailabilityResponse {
	return &RangeAvailabilityResponse{
		CarID:      r.CarID,
		PickupDate: r.PickupAt,
		ReturnDate: r.ReturnAt,
		Available:  r.Available,
	}
}

func fromRefs(refs []reservation.Ref) []ReservationRefResponse {
	out := make([]ReservationRefResponse, len(refs))
	for i, ref := range refs {
		out[i] = ReservationRefResponse{
			ReservationID: ref.ReservationID,
			PickupAt:      ref.PickupAt,
			ReturnAt:      ref.ReturnAt,
			Status:        ref.Status.String(),
		}
	}
	return out
}
