//go:build unit

package response_test

import (
	"testing"

	"car-rental/internal/handler/dto/response"
	"car-rental/internal/usecase/queries"
	"car-rental/tests/common/builder"

	"github.com/jinzhu/copier"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViewsReportCopyFailures(t *testing.T) {
	_, err := response.FromReservationView(nil)
	assert.ErrorIs(t, err, copier.ErrInvalidCopyFrom)

	_, err = response.FromReservationViews([]*queries.ReservationView{builder.NewReservationBuilder().BuildViewQuery(), nil}, nil)
	assert.ErrorIs(t, err, copier.ErrInvalidCopyFrom)

	_, err = response.FromCarView(nil)
	assert.ErrorIs(t, err, copier.ErrInvalidCopyFrom)

	_, err = response.FromCarViews([]*queries.CarView{nil})
	assert.ErrorIs(t, err, copier.ErrInvalidCopyFrom)
}

func TestRedact(t *testing.T) {
	view := builder.NewReservationBuilder().BuildViewQuery()
	view.CustomerAddress = "1 Main St"
	view.Notes = "gate code 1234"

	res, err := response.FromReservationView(view)
	require.NoError(t, err)
	res.Redact()

	assert.Equal(t, view.ID, res.ID)
	assert.Equal(t, view.CustomerName, res.CustomerName)
	assert.Equal(t, "j***@example.com", res.CustomerEmail)
	assert.Equal(t, "*******00", res.CustomerPhone)
	assert.Empty(t, res.CustomerAddress)
	assert.Empty(t, res.Notes)
	assert.Nil(t, res.UserID)

	// the view itself is untouched
	assert.Equal(t, "jane@example.com", view.CustomerEmail)
}

func TestRedactOddValues(t *testing.T) {
	res := &response.ReservationResponse{CustomerEmail: "no-at-sign", CustomerPhone: "7"}
	res.Redact()
	assert.Equal(t, "**********", res.CustomerEmail)
	assert.Equal(t, "*", res.CustomerPhone)
}
