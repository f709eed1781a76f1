package converter

import (
	"car-rental/internal/domain/reservation"
	"car-rental/internal/infra/query"
	"car-rental/internal/pkg/pgconv"
)

func ReservationToInfra(res *reservation.Reservation) query.CreateReservationParams {
	customer := res.Customer()
	period := res.Period()

	return query.CreateReservationParams{
		ID:              res.ID(),
		CarID:           res.CarID(),
		UserID:          pgconv.UUIDPtrToPgtype(res.UserID()),
		CustomerName:    customer.Name,
		CustomerEmail:   customer.Email,
		CustomerPhone:   customer.Phone,
		CustomerAddress: pgconv.TextFromString(customer.Address),
		PickupAt:        pgconv.TimeToPgtype(period.Pickup()),
		ReturnAt:        pgconv.TimeToPgtype(period.Return()),
		Status:          res.Status().String(),
		PaymentStatus:   res.PaymentStatus().String(),
		AmountCents:     res.Amount().Cents(),
		Notes:           pgconv.TextFromString(res.Note().String()),
		CreatedAt:       pgconv.TimeToPgtype(res.CreatedAt()),
	}
}

func ReservationToUpdateParams(res *reservation.Reservation) query.UpdateReservationParams {
	customer := res.Customer()
	period := res.Period()

	return query.UpdateReservationParams{
		ID:              res.ID(),
		CustomerName:    customer.Name,
		CustomerEmail:   customer.Email,
		CustomerPhone:   customer.Phone,
		CustomerAddress: pgconv.TextFromString(customer.Address),
		PickupAt:        pgconv.TimeToPgtype(period.Pickup()),
		ReturnAt:        pgconv.TimeToPgtype(period.Return()),
		Status:          res.Status().String(),
		PaymentStatus:   res.PaymentStatus().String(),
		AmountCents:     res.Amount().Cents(),
		Notes:           pgconv.TextFromString(res.Note().String()),
		UpdatedAt:       pgconv.TimeToPgtype(res.UpdatedAt()),
	}
}

// ReservationFromInfra trusts stored rows; the table constraints already enforce the invariants.
func ReservationFromInfra(row query.Reservations) *reservation.Reservation {
	amount, _ := reservation.NewMoney(row.AmountCents)
	return reservation.ReconstructReservation(
		row.ID,
		row.CarID,
		pgconv.UUIDPtrFromPgtype(row.UserID),
		reservation.ReconstructPeriod(row.PickupAt.Time, row.ReturnAt.Time),
		reservation.Status(row.Status),
		reservation.PaymentStatus(row.PaymentStatus),
		reservation.Customer{
			Name:    row.CustomerName,
			Email:   row.CustomerEmail,
			Phone:   row.CustomerPhone,
			Address: pgconv.StringFromPgtype(row.CustomerAddress),
		},
		amount,
		reservation.NewNote(pgconv.StringFromPgtype(row.Notes)),
		row.CreatedAt.Time,
		row.UpdatedAt.Time,
	)
}
