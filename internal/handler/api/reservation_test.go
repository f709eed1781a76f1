//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"car-rental/internal/handler/api"
	resdto "car-rental/internal/handler/dto/response"
	"car-rental/internal/handler/middleware"
	"car-rental/internal/pkg/config"
	"car-rental/internal/pkg/errs"
	"car-rental/internal/pkg/jwt"
	"car-rental/internal/usecase"
	"car-rental/internal/usecase/commands"
	"car-rental/internal/usecase/queries"
	"car-rental/tests/common/authtest"
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

type ReservationHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockCommands  *commandsmock.MockBookingCommands
	mockQueries   *queriesmock.MockReservationQueries
	handler       *api.ReservationHandler
	adminToken    string
	customerToken string
	customerID    uuid.UUID
}

func newTestAuth(t *testing.T) (*middleware.AuthMiddleware, *authtest.JWTHelper) {
	t.Helper()
	cfg := config.NewTestConfig().JWT
	service := jwt.NewService(cfg.Secret, time.Hour)
	return middleware.NewAuthMiddleware(usecase.NewTokenValidator(service)), authtest.NewJWTHelper(cfg)
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockCommands, s.mockQueries)

	auth, tokens := newTestAuth(s.T())
	s.customerID = uuid.New()
	s.adminToken = tokens.AdminToken(s.T())
	s.customerToken = tokens.GenerateToken(s.T(), s.customerID, jwt.RoleCustomer)

	admin := []gin.HandlerFunc{auth.RequireAuth(), auth.RequireRoleAtLeast(jwt.RoleAdmin)}
	s.router.POST("/reservations", auth.OptionalAuth(), s.handler.Create)
	s.router.GET("/reservations/mine", auth.RequireAuth(), s.handler.ListMine)
	s.router.GET("/reservations/:id", auth.OptionalAuth(), s.handler.Get)
	s.router.GET("/reservations", append(admin, s.handler.List)...)
	s.router.PUT("/reservations/:id", append(admin, s.handler.Update)...)
	s.router.PATCH("/reservations/:id/status", append(admin, s.handler.UpdateStatus)...)
	s.router.PATCH("/reservations/:id/payment", append(admin, s.handler.UpdatePayment)...)
	s.router.DELETE("/reservations/:id", append(admin, s.handler.Delete)...)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCreate() {
	url := "/reservations"
	b := builder.NewReservationBuilder()
	reqBody := b.BuildCreateRequestDTO()
	view := b.BuildViewQuery()

	s.Run("success: returns 201 with Location", func() {
		s.mockCommands.EXPECT().CreateReservation(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, in commands.CreateReservationInput) (*commands.CreateReservationResult, error) {
				s.Equal(reqBody.CarID, in.CarID)
				s.Equal(reqBody.PickupDate, in.PickupAt)
				s.Nil(in.UserID)
				return &commands.CreateReservationResult{Reservation: view}, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var got resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &got)
		s.Equal(view.ID, got.ID)
		s.Equal("pending", got.Status)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/reservations/" + view.ID.String()})
	})

	s.Run("success: authenticated caller is recorded", func() {
		s.mockCommands.EXPECT().CreateReservation(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, in commands.CreateReservationInput) (*commands.CreateReservationResult, error) {
				s.Require().NotNil(in.UserID)
				s.Equal(s.customerID, *in.UserID)
				return &commands.CreateReservationResult{Reservation: view}, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, s.customerToken)
		s.Equal(http.StatusCreated, rec.Code)
	})

	errorCases := []struct {
		name       string
		err        error
		expectCode int
		expectMsg  string
	}{
		{"missing fields", errs.Mark(commands.ValidationErrors{{Field: "CustomerName", Message: "CustomerName is required"}}, errs.ErrMissingFields), http.StatusBadRequest, "Missing required fields"},
		{"invalid range", errs.Mark(errors.New("pickup must be before return"), errs.ErrInvalidRange), http.StatusBadRequest, "Invalid date"},
		{"car not found", errs.ErrCarNotFound, http.StatusNotFound, "Car not found"},
		{"conflict", errs.ErrReservationConflict, http.StatusConflict, "already booked"},
		{"storage down", errs.Mark(errors.New("dial tcp"), errs.ErrDependencyUnavailable), http.StatusServiceUnavailable, "temporarily unavailable"},
		{"rolled back", errs.MarkWrap(errors.New("write failed"), errs.ErrTransactionFailed, "rolled back"), http.StatusInternalServerError, "could not be saved"},
		{"unexpected", errors.New("kaboom"), http.StatusInternalServerError, "Internal server error"},
	}
	for _, tc := range errorCases {
		s.Run("error: "+tc.name, func() {
			s.mockCommands.EXPECT().CreateReservation(gomock.Any(), gomock.Any()).Return(nil, tc.err)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
			httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectMsg)
		})
	}

	s.Run("error: body is not an object", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, "not an object", "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: wrong field type", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("amountCents", "lots"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}

// ================================================================================
// TestGet / TestList
// ================================================================================

func (s *ReservationHandlerTestSuite) TestGet() {
	view := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
		b.UserID = &s.customerID
	}).BuildViewQuery()
	view.CustomerAddress = "1 Main St"
	view.Notes = "child seat"
	// handlers must not mutate the view they are given
	owned := func() *queries.ReservationView {
		v := *view
		return &v
	}
	path := "/reservations/" + view.ID.String()

	s.Run("success: admin sees contact details", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(owned(), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, path, nil, s.adminToken)
		var got resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.Equal(view.CustomerEmail, got.CustomerEmail)
		s.Equal(view.CustomerPhone, got.CustomerPhone)
		s.Equal("1 Main St", got.CustomerAddress)
	})

	s.Run("success: owner sees contact details", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(owned(), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, path, nil, s.customerToken)
		var got resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.Equal(view.CustomerEmail, got.CustomerEmail)
		s.Equal("child seat", got.Notes)
	})

	s.Run("success: anonymous caller gets masked contact details", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(owned(), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, path, nil, "")
		var got resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.Equal(view.ID, got.ID)
		s.Equal(view.Status, got.Status)
		s.Equal("j***@example.com", got.CustomerEmail)
		s.Equal("*******00", got.CustomerPhone)
		s.Empty(got.CustomerAddress)
		s.Empty(got.Notes)
		s.Nil(got.UserID)
	})

	s.Run("success: another customer gets masked contact details", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(owned(), nil)

		_, tokens := newTestAuth(s.T())
		stranger := tokens.GenerateToken(s.T(), uuid.New(), jwt.RoleCustomer)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, path, nil, stranger)
		var got resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.NotEqual(view.CustomerEmail, got.CustomerEmail)
		s.Empty(got.CustomerAddress)
	})

	s.Run("error: malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid reservation ID")
	})

	s.Run("error: not found", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(nil, errs.ErrReservationNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/"+uuid.NewString(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})
}

func (s *ReservationHandlerTestSuite) TestList() {
	view := builder.NewReservationBuilder().BuildViewQuery()
	carID := uuid.New()

	s.Run("success: filters and cursor are passed through", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any(), &queries.Cursor{After: "abc"}, 5).
			DoAndReturn(func(_ any, f queries.ReservationFilter, _ *queries.Cursor, _ int) ([]*queries.ReservationView, *queries.Cursor, error) {
				s.Require().NotNil(f.Status)
				s.Equal("active", *f.Status)
				s.Equal(carID, *f.CarID)
				s.True(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC).Equal(*f.From))
				return []*queries.ReservationView{view}, &queries.Cursor{After: "next"}, nil
			})

		path := "/reservations?status=active&carId=" + carID.String() + "&from=2025-01-01&limit=5&after=abc"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, path, nil, s.adminToken)

		var got resdto.ReservationListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.Len(got.Items, 1)
		s.Equal("next", got.NextCursor)
	})

	s.Run("error: customers cannot list everything", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations", nil, s.customerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
	})

	s.Run("error: no token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("error: bad date filter", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations?to=someday", nil, s.adminToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid to date")
	})
}

func (s *ReservationHandlerTestSuite) TestListMine() {
	s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.customerID, gomock.Nil(), queries.DefaultListLimit).
		Return([]*queries.ReservationView{}, nil, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/mine", nil, s.customerToken)

	var got resdto.ReservationListResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
	s.Empty(got.Items)
	s.Empty(got.NextCursor)
}

// ================================================================================
// TestUpdateStatus / TestDelete
// ================================================================================

func (s *ReservationHandlerTestSuite) TestUpdateStatus() {
	view := builder.NewReservationBuilder().BuildViewQuery()
	url := "/reservations/" + view.ID.String() + "/status"

	s.Run("success", func() {
		s.mockCommands.EXPECT().UpdateReservationStatus(gomock.Any(), view.ID, "active").Return(nil)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "active"}, s.adminToken)
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: status missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{}, s.adminToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Status is required")
	})

	s.Run("error: unknown status", func() {
		s.mockCommands.EXPECT().UpdateReservationStatus(gomock.Any(), view.ID, "archived").
			Return(errs.Mark(errors.New("unknown reservation status"), errs.ErrInvalidStatus))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "archived"}, s.adminToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid reservation status")
	})

	s.Run("error: reactivation conflicts", func() {
		s.mockCommands.EXPECT().UpdateReservationStatus(gomock.Any(), view.ID, "pending").Return(errs.ErrReservationConflict)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "pending"}, s.adminToken)
		httptest.AssertErrorCode(s.T(), rec, http.StatusConflict, "reservation_conflict")
	})
}

func (s *ReservationHandlerTestSuite) TestUpdate() {
	view := builder.NewReservationBuilder().BuildViewQuery()
	url := "/reservations/" + view.ID.String()

	s.Run("success: only sent fields reach the command", func() {
		s.mockCommands.EXPECT().UpdateReservation(gomock.Any(), view.ID, gomock.Any()).
			DoAndReturn(func(_ any, _ uuid.UUID, in commands.UpdateReservationInput) (*queries.ReservationView, error) {
				s.Require().NotNil(in.ReturnAt)
				s.Equal("2025-01-20", *in.ReturnAt)
				s.Require().NotNil(in.CustomerPhone)
				s.Equal("+15550199", *in.CustomerPhone)
				s.Nil(in.PickupAt)
				s.Nil(in.CustomerEmail)
				s.Nil(in.AmountCents)
				return view, nil
			})

		body := map[string]any{"returnDate": "2025-01-20", "phone": "+15550199"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, body, s.adminToken)

		var got resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.Equal(view.ID, got.ID)
	})

	s.Run("error: new dates collide", func() {
		s.mockCommands.EXPECT().UpdateReservation(gomock.Any(), view.ID, gomock.Any()).Return(nil, errs.ErrReservationConflict)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"pickupDate": "2025-01-01"}, s.adminToken)
		httptest.AssertErrorCode(s.T(), rec, http.StatusConflict, "reservation_conflict")
	})

	s.Run("error: inverted dates", func() {
		s.mockCommands.EXPECT().UpdateReservation(gomock.Any(), view.ID, gomock.Any()).
			Return(nil, errs.Mark(errors.New("pickup must be before return"), errs.ErrInvalidRange))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"pickupDate": "2025-02-01"}, s.adminToken)
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "invalid_range")
	})

	s.Run("error: wrong field type", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"amountCents": "lots"}, s.adminToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: customers cannot edit", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"notes": "x"}, s.customerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
	})
}

func (s *ReservationHandlerTestSuite) TestUpdatePayment() {
	view := builder.NewReservationBuilder().BuildViewQuery()
	url := "/reservations/" + view.ID.String() + "/payment"

	s.Run("success: paid", func() {
		paid := *view
		paid.PaymentStatus = "paid"
		paid.Status = "active"
		s.mockCommands.EXPECT().UpdatePaymentStatus(gomock.Any(), view.ID, "paid").Return(&paid, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"paymentStatus": "paid"}, s.adminToken)

		var got resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.Equal("paid", got.PaymentStatus)
		s.Equal("active", got.Status)
	})

	s.Run("error: payment status missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{}, s.adminToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Payment status is required")
	})

	s.Run("error: unknown payment status", func() {
		s.mockCommands.EXPECT().UpdatePaymentStatus(gomock.Any(), view.ID, "bounced").
			Return(nil, errs.Mark(errors.New("unknown reservation status"), errs.ErrInvalidPayment))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"paymentStatus": "bounced"}, s.adminToken)
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "invalid_payment_status")
	})

	s.Run("error: activation conflicts", func() {
		s.mockCommands.EXPECT().UpdatePaymentStatus(gomock.Any(), view.ID, "paid").Return(nil, errs.ErrReservationConflict)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"paymentStatus": "paid"}, s.adminToken)
		httptest.AssertErrorCode(s.T(), rec, http.StatusConflict, "reservation_conflict")
	})
}

func (s *ReservationHandlerTestSuite) TestDelete() {
	id := uuid.New()

	s.Run("success", func() {
		s.mockCommands.EXPECT().DeleteReservation(gomock.Any(), id).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/reservations/"+id.String(), nil, s.adminToken)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: not found", func() {
		s.mockCommands.EXPECT().DeleteReservation(gomock.Any(), id).Return(errs.ErrReservationNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/reservations/"+id.String(), nil, s.adminToken)
		httptest.AssertErrorCode(s.T(), rec, http.StatusNotFound, "reservation_not_found")
	})
}
