package api

import (
	"net/http"
	"strconv"
	"time"

	"car-rental/internal/domain/reservation"
	reqdto "car-rental/internal/handler/dto/request"
	resdto "car-rental/internal/handler/dto/response"
	"car-rental/internal/handler/httperr"
	"car-rental/internal/handler/middleware"
	"car-rental/internal/pkg/jwt"
	"car-rental/internal/usecase/commands"
	"car-rental/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	cmds commands.BookingCommands
	q    queries.ReservationQueries
}

func NewReservationHandler(cmds commands.BookingCommands, q queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{cmds: cmds, q: q}
}

// @Summary Create reservation
// @Description Book a car for a date range. Fails with 409 when a pending, active or upcoming reservation overlaps.
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	var userID *uuid.UUID
	if id, ok := middleware.GetUserID(c); ok {
		userID = &id
	}

	result, err := h.cmds.CreateReservation(c.Request.Context(), req.ToInput(userID))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	c.Header("Location", "/api/reservations/"+result.Reservation.ID.String())
	body, err := resdto.FromReservationView(result.Reservation)
	render(c, http.StatusCreated, body, err)
}

// @Summary Get reservation
// @Description The owner and admins see contact details; other callers get them masked.
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/reservations/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "Invalid reservation ID format")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	body, err := resdto.FromReservationView(view)
	if err == nil && !canSeeContact(c, view) {
		body.Redact()
	}
	render(c, http.StatusOK, body, err)
}

func canSeeContact(c *gin.Context, view *queries.ReservationView) bool {
	if role, ok := middleware.GetUserRole(c); ok && role == jwt.RoleAdmin {
		return true
	}
	userID, ok := middleware.GetUserID(c)
	return ok && view.UserID != nil && *view.UserID == userID
}

// @Summary List reservations
// @Description Keyset-paginated listing, newest first
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param status query string false "pending|active|upcoming|completed|cancelled"
// @Param carId query string false "Car ID"
// @Param from query string false "Only reservations ending on or after this date"
// @Param to query string false "Only reservations starting on or before this date"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor"
// @Success 200 {object} resdto.ReservationListResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/reservations [get]
func (h *ReservationHandler) List(c *gin.Context) {
	filter, ok := parseReservationFilter(c)
	if !ok {
		return
	}
	items, next, err := h.q.List(c.Request.Context(), filter, cursorFromQuery(c), limitFromQuery(c))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	body, err := resdto.FromReservationViews(items, next)
	render(c, http.StatusOK, body, err)
}

// @Summary List my reservations
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor"
// @Success 200 {object} resdto.ReservationListResponse
// @Failure 401 {object} httperr.Response
// @Router /api/reservations/mine [get]
func (h *ReservationHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}
	items, next, err := h.q.ListByUser(c.Request.Context(), userID, cursorFromQuery(c), limitFromQuery(c))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	body, err := resdto.FromReservationViews(items, next)
	render(c, http.StatusOK, body, err)
}

// @Summary Update reservation status
// @Description Status transition; the car's cached reservation list is updated in the same transaction.
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.UpdateReservationStatusRequest true "New status"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/reservations/{id}/status [patch]
func (h *ReservationHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "Invalid reservation ID format")
	if !ok {
		return
	}
	var req reqdto.UpdateReservationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Status is required", nil)
		return
	}
	if err := h.cmds.UpdateReservationStatus(c.Request.Context(), id, req.Status); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	body, err := resdto.FromReservationView(view)
	render(c, http.StatusOK, body, err)
}

// @Summary Update reservation
// @Description Partial update of customer details, amount, notes and dates. New dates are checked against the car's other bookings.
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.UpdateReservationRequest true "Fields to change"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/reservations/{id} [put]
func (h *ReservationHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "Invalid reservation ID format")
	if !ok {
		return
	}
	var req reqdto.UpdateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	view, err := h.cmds.UpdateReservation(c.Request.Context(), id, req.ToInput())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	body, err := resdto.FromReservationView(view)
	render(c, http.StatusOK, body, err)
}

// @Summary Record payment outcome
// @Description paid also activates the reservation
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.UpdatePaymentStatusRequest true "Payment status"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/reservations/{id}/payment [patch]
func (h *ReservationHandler) UpdatePayment(c *gin.Context) {
	id, ok := parseIDParam(c, "Invalid reservation ID format")
	if !ok {
		return
	}
	var req reqdto.UpdatePaymentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Payment status is required", nil)
		return
	}
	view, err := h.cmds.UpdatePaymentStatus(c.Request.Context(), id, req.PaymentStatus)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	body, err := resdto.FromReservationView(view)
	render(c, http.StatusOK, body, err)
}

// @Summary Delete reservation
// @Tags reservations
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/reservations/{id} [delete]
func (h *ReservationHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "Invalid reservation ID format")
	if !ok {
		return
	}
	if err := h.cmds.DeleteReservation(c.Request.Context(), id); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func parseReservationFilter(c *gin.Context) (queries.ReservationFilter, bool) {
	var filter queries.ReservationFilter
	if v := c.Query("status"); v != "" {
		filter.Status = &v
	}
	if v := c.Query("carId"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid car ID format", nil)
			return filter, false
		}
		filter.CarID = &id
	}
	for _, p := range []struct {
		key string
		dst **time.Time
	}{{"from", &filter.From}, {"to", &filter.To}} {
		v := c.Query(p.key)
		if v == "" {
			continue
		}
		t, err := reservation.ParseInstant(v)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid "+p.key+" date", nil)
			return filter, false
		}
		*p.dst = &t
	}
	return filter, true
}

func parseIDParam(c *gin.Context, msg string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msg, nil)
		return uuid.Nil, false
	}
	return id, true
}

func cursorFromQuery(c *gin.Context) *queries.Cursor {
	if after := c.Query("after"); after != "" {
		return &queries.Cursor{After: after}
	}
	return nil
}

func limitFromQuery(c *gin.Context) int {
	limit := queries.DefaultListLimit
	if v := c.Query("limit"); v != "" {
		if iv, err := strconv.Atoi(v); err == nil {
			limit = queries.ValidateLimit(iv)
		}
	}
	return limit
}

func offsetFromQuery(c *gin.Context) int {
	if v := c.Query("offset"); v != "" {
		if iv, err := strconv.Atoi(v); err == nil && iv > 0 {
			return iv
		}
	}
	return 0
}
