//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"

	"car-rental/internal/domain/car"
	"car-rental/internal/domain/reservation"
	"car-rental/internal/handler/api"
	resdto "car-rental/internal/handler/dto/response"
	"car-rental/internal/pkg/errs"
	"car-rental/internal/pkg/jwt"
	"car-rental/internal/usecase/commands"
	"car-rental/internal/usecase/queries"
	"car-rental/tests/common/builder"
	"car-rental/tests/common/httptest"
	"car-rental/tests/common/testutil"
	commandsmock "car-rental/tests/mock/commands"
	queriesmock "car-rental/tests/mock/queries"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CarHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockCommands  *commandsmock.MockCarCommands
	mockQueries   *queriesmock.MockCarQueries
	adminToken    string
	customerToken string
}

func (s *CarHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCarCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCarQueries(s.mockCtrl)
	h := api.NewCarHandler(s.mockCommands, s.mockQueries)

	auth, tokens := newTestAuth(s.T())
	s.adminToken = tokens.AdminToken(s.T())
	s.customerToken = tokens.GenerateToken(s.T(), uuid.New(), jwt.RoleCustomer)

	admin := []gin.HandlerFunc{auth.RequireAuth(), auth.RequireRoleAtLeast(jwt.RoleAdmin)}
	s.router.GET("/cars", h.List)
	s.router.GET("/cars/availability", h.BatchAvailability)
	s.router.GET("/cars/:id", h.Get)
	s.router.GET("/cars/:id/availability", h.RangeAvailability)
	s.router.POST("/cars", append(admin, h.Create)...)
	s.router.PUT("/cars/:id", append(admin, h.Update)...)
	s.router.DELETE("/cars/:id", append(admin, h.Delete)...)
}

func (s *CarHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCarHandlerSuite(t *testing.T) {
	suite.Run(t, new(CarHandlerTestSuite))
}

// ================================================================================
// Reads
// ================================================================================

func (s *CarHandlerTestSuite) TestList() {
	view := builder.NewCarBuilder().BuildViewQuery()

	s.Run("success: filters are passed through", func() {
		category := "suv"
		s.mockQueries.EXPECT().ListCars(gomock.Any(), queries.CarFilter{Category: &category}, 10, 20).
			Return([]*queries.CarView{view}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/cars?category=suv&limit=10&offset=20", nil, "")

		var got []resdto.CarResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.Require().Len(got, 1)
		s.Equal(view.ID, got[0].ID)
		s.Equal(string(car.StateFullyAvailable), got[0].Availability.State)
	})

	s.Run("success: bad paging values fall back to defaults", func() {
		s.mockQueries.EXPECT().ListCars(gomock.Any(), queries.CarFilter{}, queries.DefaultListLimit, 0).
			Return([]*queries.CarView{}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/cars?limit=abc&offset=-4", nil, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: storage unavailable", func() {
		s.mockQueries.EXPECT().ListCars(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errors.New("pool closed"), errs.ErrDependencyUnavailable))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/cars", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "temporarily unavailable")
	})
}

func (s *CarHandlerTestSuite) TestGet() {
	s.Run("error: not found", func() {
		s.mockQueries.EXPECT().GetCar(gomock.Any(), gomock.Any()).Return(nil, errs.ErrCarNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/cars/"+uuid.NewString(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Car not found")
	})

	s.Run("error: malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/cars/42", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid car ID")
	})
}

func (s *CarHandlerTestSuite) TestRangeAvailability() {
	id := uuid.New()
	path := "/cars/" + id.String() + "/availability?pickup=2025-02-01&return=2025-02-05"

	s.Run("success", func() {
		s.mockQueries.EXPECT().IsAvailableForRange(gomock.Any(), id, "2025-02-01", "2025-02-05", gomock.Nil()).
			Return(&queries.RangeAvailability{CarID: id, Available: false}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, path, nil, "")

		var got resdto.RangeAvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.Equal(id, got.CarID)
		s.False(got.Available)
	})

	s.Run("error: invalid range", func() {
		s.mockQueries.EXPECT().IsAvailableForRange(gomock.Any(), id, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errors.New("pickup must be before return"), errs.ErrInvalidRange))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, path, nil, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("success: custom blocking statuses", func() {
		want := reservation.NewStatusSet(reservation.StatusActive, reservation.StatusCompleted)
		s.mockQueries.EXPECT().IsAvailableForRange(gomock.Any(), id, "2025-02-01", "2025-02-05", want).
			Return(&queries.RangeAvailability{CarID: id, Available: true}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, path+"&statuses=active,%20completed", nil, "")

		var got resdto.RangeAvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.True(got.Available)
	})

	s.Run("error: unknown status in the blocking list", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, path+"&statuses=active,archived", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid reservation status")
	})
}

func (s *CarHandlerTestSuite) TestBatchAvailability() {
	booked, free := uuid.New(), uuid.New()
	days := 5

	s.Run("success: keyed by car id", func() {
		s.mockQueries.EXPECT().SummarizeAvailability(gomock.Any(), []uuid.UUID{booked, free}).
			Return(map[uuid.UUID]car.Availability{
				booked: {State: car.StateBooked, DaysRemaining: &days},
				free:   {State: car.StateFullyAvailable},
			}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/cars/availability?ids="+booked.String()+",%20"+free.String(), nil, "")

		var got map[string]resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.Equal("booked", got[booked.String()].State)
		s.Equal(5, *got[booked.String()].DaysRemaining)
		s.Equal("fully_available", got[free.String()].State)
		s.Nil(got[free.String()].DaysRemaining)
	})

	s.Run("success: empty ids", func() {
		s.mockQueries.EXPECT().SummarizeAvailability(gomock.Any(), []uuid.UUID{}).
			Return(map[uuid.UUID]car.Availability{}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/cars/availability", nil, "")
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{}`, rec.Body.String())
	})

	s.Run("error: malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/cars/availability?ids=nope", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid car ID")
	})

	s.Run("error: too many ids", func() {
		ids := make([]string, 101)
		for i := range ids {
			ids[i] = uuid.NewString()
		}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/cars/availability?ids="+strings.Join(ids, ","), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Too many car IDs")
	})
}

// ================================================================================
// Writes
// ================================================================================

func (s *CarHandlerTestSuite) TestCreate() {
	b := builder.NewCarBuilder()
	reqBody := b.BuildCreateRequestDTO()
	view := b.BuildViewQuery()

	s.Run("success: returns 201 with Location", func() {
		s.mockCommands.EXPECT().CreateCar(gomock.Any(), b.BuildCreateInput()).Return(view.ID, nil)
		s.mockQueries.EXPECT().GetCar(gomock.Any(), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/cars", reqBody, s.adminToken)

		var got resdto.CarResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &got)
		s.Equal("Toyota", got.Make)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/cars/" + view.ID.String()})
	})

	s.Run("error: validation failure", func() {
		verrs := commands.ValidationErrors{{Field: "Make", Message: "Make is required"}}
		s.mockCommands.EXPECT().CreateCar(gomock.Any(), gomock.Any()).Return(uuid.Nil, errs.Mark(verrs, errs.ErrMissingFields))

		body := testutil.DtoMap(s.T(), reqBody, testutil.Without("make"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/cars", body, s.adminToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Missing required fields")
		s.Contains(rec.Body.String(), `"field":"Make"`)
	})

	s.Run("error: customers are forbidden", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/cars", reqBody, s.customerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
	})

	s.Run("error: garbage token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/cars", reqBody, "not-a-jwt")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired token")
	})
}

func (s *CarHandlerTestSuite) TestUpdate() {
	view := builder.NewCarBuilder().BuildViewQuery()

	s.Run("success: partial body", func() {
		s.mockCommands.EXPECT().UpdateCar(gomock.Any(), view.ID, gomock.Any()).
			DoAndReturn(func(_ any, _ uuid.UUID, in commands.UpdateCarInput) error {
				s.Require().NotNil(in.Status)
				s.Equal("maintenance", *in.Status)
				s.Nil(in.Make)
				return nil
			})
		s.mockQueries.EXPECT().GetCar(gomock.Any(), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/cars/"+view.ID.String(),
			map[string]any{"status": "maintenance"}, s.adminToken)
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: bad fleet status", func() {
		s.mockCommands.EXPECT().UpdateCar(gomock.Any(), view.ID, gomock.Any()).
			Return(errs.Mark(errors.New("unknown car status"), errs.ErrInvalidInput))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/cars/"+view.ID.String(),
			map[string]any{"status": "scrapped"}, s.adminToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

func (s *CarHandlerTestSuite) TestDelete() {
	id := uuid.New()

	s.Run("success", func() {
		s.mockCommands.EXPECT().DeleteCar(gomock.Any(), id).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/cars/"+id.String(), nil, s.adminToken)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: car still has bookings", func() {
		s.mockCommands.EXPECT().DeleteCar(gomock.Any(), id).Return(errs.ErrCarHasActiveReservations)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/cars/"+id.String(), nil, s.adminToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "active reservations")
		httptest.AssertErrorCode(s.T(), rec, http.StatusConflict, "car_has_active_reservations")
	})
}
