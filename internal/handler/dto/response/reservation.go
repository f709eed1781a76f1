package response

import (
	"strings"
	"time"

	"car-rental/internal/pkg/errs"
	"car-rental/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ReservationResponse struct {
	ID              uuid.UUID  `json:"id"`
	CarID           uuid.UUID  `json:"carId"`
	CarMake         string     `json:"carMake"`
	CarModel        string     `json:"carModel"`
	UserID          *uuid.UUID `json:"userId,omitempty"`
	CustomerName    string     `json:"customer"`
	CustomerEmail   string     `json:"email"`
	CustomerPhone   string     `json:"phone"`
	CustomerAddress string     `json:"address,omitempty"`
	PickupAt        time.Time  `json:"pickupDate"`
	ReturnAt        time.Time  `json:"returnDate"`
	Status          string     `json:"status"`
	PaymentStatus   string     `json:"paymentStatus"`
	AmountCents     int64      `json:"amountCents"`
	Notes           string     `json:"notes,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

type ReservationListResponse struct {
	Items      []*ReservationResponse `json:"items"`
	NextCursor string                 `json:"nextCursor,omitempty"`
}

func FromReservationView(v *queries.ReservationView) (*ReservationResponse, error) {
	var res ReservationResponse
	// field names line up one to one
	if err := copier.Copy(&res, v); err != nil {
		return nil, errs.Wrap(err, "build reservation response")
	}
	return &res, nil
}

func FromReservationViews(views []*queries.ReservationView, next *queries.Cursor) (*ReservationListResponse, error) {
	items := make([]*ReservationResponse, len(views))
	for i, v := range views {
		res, err := FromReservationView(v)
		if err != nil {
			return nil, err
		}
		items[i] = res
	}
	out := &ReservationListResponse{Items: items}
	if next != nil {
		out.NextCursor = next.After
	}
	return out, nil
}

// Redact hides the customer's contact details from callers who neither own the
// reservation nor administer the fleet.
func (r *ReservationResponse) Redact() {
	r.UserID = nil
	r.CustomerEmail = maskEmail(r.CustomerEmail)
	r.CustomerPhone = maskTail(r.CustomerPhone, 2)
	r.CustomerAddress = ""
	r.Notes = ""
}

func maskEmail(email string) string {
	at := strings.LastIndexByte(email, '@')
	if at <= 0 {
		return maskTail(email, 0)
	}
	return email[:1] + "***" + email[at:]
}

// maskTail keeps the last keep runes of s.
func maskTail(s string, keep int) string {
	rs := []rune(s)
	if len(rs) <= keep {
		return strings.Repeat("*", len(rs))
	}
	return strings.Repeat("*", len(rs)-keep) + string(rs[len(rs)-keep:])
}
