package api

import (
	"net/http"
	"strings"

	"car-rental/internal/domain/reservation"
	reqdto "car-rental/internal/handler/dto/request"
	resdto "car-rental/internal/handler/dto/response"
	"car-rental/internal/handler/httperr"
	"car-rental/internal/pkg/errs"
	"car-rental/internal/usecase/commands"
	"car-rental/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const maxBatchAvailabilityIDs = 100

type CarHandler struct {
	cmds commands.CarCommands
	q    queries.CarQueries
}

func NewCarHandler(cmds commands.CarCommands, q queries.CarQueries) *CarHandler {
	return &CarHandler{cmds: cmds, q: q}
}

// @Summary List cars
// @Description Cars with their availability state computed at request time
// @Tags cars
// @Produce json
// @Param category query string false "Category filter"
// @Param status query string false "Fleet status filter"
// @Param limit query int false "Max items (default 20)"
// @Param offset query int false "Offset"
// @Success 200 {array} resdto.CarResponse
// @Router /api/cars [get]
func (h *CarHandler) List(c *gin.Context) {
	var filter queries.CarFilter
	if v := c.Query("category"); v != "" {
		filter.Category = &v
	}
	if v := c.Query("status"); v != "" {
		filter.Status = &v
	}

	views, err := h.q.ListCars(c.Request.Context(), filter, limitFromQuery(c), offsetFromQuery(c))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	body, err := resdto.FromCarViews(views)
	render(c, http.StatusOK, body, err)
}

// @Summary Get car
// @Tags cars
// @Produce json
// @Param id path string true "Car ID"
// @Success 200 {object} resdto.CarResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/cars/{id} [get]
func (h *CarHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "Invalid car ID format")
	if !ok {
		return
	}
	view, err := h.q.GetCar(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	body, err := resdto.FromCarView(view)
	render(c, http.StatusOK, body, err)
}

// @Summary Check range availability
// @Description Whether the car can be booked for [pickup, return]; touching an existing booking counts as taken
// @Tags cars
// @Produce json
// @Param id path string true "Car ID"
// @Param pickup query string true "Pickup date (RFC3339 or YYYY-MM-DD)"
// @Param return query string true "Return date (RFC3339 or YYYY-MM-DD)"
// @Param statuses query string false "Comma separated statuses that block the range (default pending,active,upcoming)"
// @Success 200 {object} resdto.RangeAvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/cars/{id}/availability [get]
func (h *CarHandler) RangeAvailability(c *gin.Context) {
	id, ok := parseIDParam(c, "Invalid car ID format")
	if !ok {
		return
	}
	blocking, err := parseStatusSet(c.Query("statuses"))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	result, err := h.q.IsAvailableForRange(c.Request.Context(), id, c.Query("pickup"), c.Query("return"), blocking)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRangeAvailability(result))
}

// @Summary Batch availability summary
// @Description Availability state keyed by car ID; unknown IDs are left out
// @Tags cars
// @Produce json
// @Param ids query string true "Comma separated car IDs"
// @Success 200 {object} map[string]resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Router /api/cars/availability [get]
func (h *CarHandler) BatchAvailability(c *gin.Context) {
	raw := strings.Split(c.Query("ids"), ",")
	ids := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		id, err := uuid.Parse(s)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid car ID format", gin.H{"id": s})
			return
		}
		ids = append(ids, id)
	}
	if len(ids) > maxBatchAvailabilityIDs {
		httperr.AbortWithError(c, http.StatusBadRequest, errTooManyIDs, "Too many car IDs", gin.H{"max": maxBatchAvailabilityIDs})
		return
	}

	summary, err := h.q.SummarizeAvailability(c.Request.Context(), ids)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailabilityMap(summary))
}

// @Summary Create car
// @Tags cars
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateCarRequest true "Car"
// @Success 201 {object} resdto.CarResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/cars [post]
func (h *CarHandler) Create(c *gin.Context) {
	var req reqdto.CreateCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	id, err := h.cmds.CreateCar(c.Request.Context(), in)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	view, err := h.q.GetCar(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Header("Location", "/api/cars/"+id.String())
	body, err := resdto.FromCarView(view)
	render(c, http.StatusCreated, body, err)
}

// @Summary Update car
// @Description Partial update; omitted fields keep their value
// @Tags cars
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Car ID"
// @Param request body reqdto.UpdateCarRequest true "Fields to change"
// @Success 200 {object} resdto.CarResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/cars/{id} [put]
func (h *CarHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "Invalid car ID format")
	if !ok {
		return
	}
	var req reqdto.UpdateCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.cmds.UpdateCar(c.Request.Context(), id, in); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	view, err := h.q.GetCar(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	body, err := resdto.FromCarView(view)
	render(c, http.StatusOK, body, err)
}

// @Summary Delete car
// @Description Refused with 409 while the car holds pending, active or upcoming reservations
// @Tags cars
// @Security BearerAuth
// @Param id path string true "Car ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/cars/{id} [delete]
func (h *CarHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "Invalid car ID format")
	if !ok {
		return
	}
	if err := h.cmds.DeleteCar(c.Request.Context(), id); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// parseStatusSet returns nil for an empty list so the query applies its default.
func parseStatusSet(raw string) (reservation.StatusSet, error) {
	var statuses []reservation.Status
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		st, err := reservation.ParseStatus(part)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrInvalidStatus)
		}
		statuses = append(statuses, st)
	}
	if len(statuses) == 0 {
		return nil, nil
	}
	return reservation.NewStatusSet(statuses...), nil
}
