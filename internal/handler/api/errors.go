package api

import (
	"errors"
	"log/slog"
	"net/http"

	"car-rental/internal/handler/httperr"
	"car-rental/internal/pkg/errs"
	"car-rental/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

var (
	errUnauthenticated = errors.New("unauthenticated")
	errTooManyIDs      = errors.New("too many ids")
)

type errorMapping struct {
	target  error
	status  int
	code    string
	message string
}

// first match wins; validation categories come before the store categories
var errorMappings = []errorMapping{
	{errs.ErrMissingFields, http.StatusBadRequest, "missing_fields", "Missing required fields"},
	{errs.ErrInvalidRange, http.StatusBadRequest, "invalid_range", "Invalid date format or pickup is not before return"},
	{errs.ErrInvalidStatus, http.StatusBadRequest, "invalid_status", "Invalid reservation status"},
	{errs.ErrInvalidPayment, http.StatusBadRequest, "invalid_payment_status", "Invalid payment status"},
	{errs.ErrInvalidInput, http.StatusBadRequest, "invalid_input", "Invalid request"},
	{errs.ErrCarNotFound, http.StatusNotFound, "car_not_found", "Car not found"},
	{errs.ErrReservationNotFound, http.StatusNotFound, "reservation_not_found", "Reservation not found"},
	{errs.ErrReservationConflict, http.StatusConflict, "reservation_conflict", "Car is already booked for the selected dates"},
	{errs.ErrCarHasActiveReservations, http.StatusConflict, "car_has_active_reservations", "Car has active reservations"},
	{errs.ErrDependencyUnavailable, http.StatusServiceUnavailable, "dependency_unavailable", "Service temporarily unavailable"},
	{errs.ErrTransactionFailed, http.StatusInternalServerError, "transaction_failed", "Reservation could not be saved"},
}

// render writes body, or a 500 when the response could not be built from the view.
func render[T any](c *gin.Context, status int, body T, err error) {
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "failed to build response",
			"path", c.Request.URL.Path,
			"error", err.Error())
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(status, body)
}

// abortWithUseCaseError writes the response for an error returned by a command or query.
func abortWithUseCaseError(c *gin.Context, err error) {
	for _, m := range errorMappings {
		if errs.Is(err, m.target) {
			var detail any
			var verrs commands.ValidationErrors
			if errors.As(err, &verrs) {
				detail = verrs
			}
			httperr.AbortWithCode(c, m.status, m.code, err, m.message, detail)
			return
		}
	}

	slog.ErrorContext(c.Request.Context(), "unhandled use case error",
		"path", c.Request.URL.Path,
		"error", err.Error(),
		"stack", errs.ExtractStackLines(err, 12))
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}
