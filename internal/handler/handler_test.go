package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/flotilla-app/fleet-service/internal/errs"
	"github.com/flotilla-app/fleet-service/internal/handler"
	service_mocks "github.com/flotilla-app/fleet-service/internal/handler/mocks"
	"github.com/flotilla-app/fleet-service/internal/model"
	"github.com/flotilla-app/fleet-service/pkg/auth"
	"github.com/flotilla-app/fleet-service/pkg/validate"
)

func bearerToken(t *testing.T, p auth.Principal) string {
	t.Helper()
	token, err := auth.NewToken(p, time.Hour)
	require.NoError(t, err)
	return "Bearer " + token
}

func TestHandler_CheckAvailability(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockFleetService)

	req := model.AvailabilityRequest{
		VehicleID: "9550b32a-4d9b-4352-a8a0-417dc3e0a34c",
		StartDate: "2025-03-01T09:00",
		EndDate:   "2025-03-01T17:00",
	}

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "available",
			mockBehavior: func(r *service_mocks.MockFleetService) {
				r.EXPECT().
					CheckAvailability(context.Background(), req, "").
					Return(model.Available(), nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"available":true,"reason":null,"message":"vehicle is available for the requested window"}`,
			},
		},
		{
			name: "booking conflict is still a 200",
			mockBehavior: func(r *service_mocks.MockFleetService) {
				r.EXPECT().
					CheckAvailability(context.Background(), req, "").
					Return(model.Unavailable(model.ReasonBookingConflict, "vehicle already booked for this window"), nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"available":false,"reason":"booking_conflict","message":"vehicle already booked for this window"}`,
			},
		},
		{
			name: "infrastructure failure is a 500 server_error",
			mockBehavior: func(r *service_mocks.MockFleetService) {
				r.EXPECT().
					CheckAvailability(context.Background(), req, "").
					Return(model.AvailabilityResult{}, errors.New("db down"))
			},
			response: response{
				expectedCode: http.StatusInternalServerError,
				expectedBody: `{"available":false,"reason":"server_error","message":"error checking availability"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockFleetService(c)
			h := handler.New(svc, zap.NewNop())

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.GET("/bookings/availability", h.CheckAvailability)

			r := httptest.NewRequest(http.MethodGet,
				"/bookings/availability?vehicle_id="+req.VehicleID+"&start_date="+req.StartDate+"&end_date="+req.EndDate,
				http.NoBody)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_CreateBooking(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockFleetService)

	caller := auth.Principal{ID: "e1", Name: "Eva"}
	body := `{"vehicle_id":"v1","start_date":"2025-03-01T09:00","end_date":"2025-03-01T17:00"}`
	created := model.Booking{
		ID:         "b7f1", // IDs are uuids in production, shape is irrelevant here
		VehicleID:  "v1",
		EmployeeID: "e1",
		StartDate:  time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2025, 3, 1, 17, 0, 0, 0, time.UTC),
		Status:     model.BookingActive,
	}

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		auth         bool
		response     response
	}{
		{
			name: "created",
			auth: true,
			mockBehavior: func(r *service_mocks.MockFleetService) {
				r.EXPECT().
					CreateBooking(gomock.Any(), caller, gomock.Any()).
					Return(created, model.Available(), nil)
			},
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `{"id":"b7f1","vehicleId":"v1","employeeId":"e1","startDate":"2025-03-01T09:00:00Z","endDate":"2025-03-01T17:00:00Z","purpose":null,"destination":null,"status":"active","createdAt":"0001-01-01T00:00:00Z","updatedAt":"0001-01-01T00:00:00Z"}`,
			},
		},
		{
			name: "conflict denial is a 409 with the shared result shape",
			auth: true,
			mockBehavior: func(r *service_mocks.MockFleetService) {
				r.EXPECT().
					CreateBooking(gomock.Any(), caller, gomock.Any()).
					Return(model.Booking{}, model.Unavailable(model.ReasonBookingConflict, "vehicle already booked for this window"), nil)
			},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"available":false,"reason":"booking_conflict","message":"vehicle already booked for this window"}`,
			},
		},
		{
			name: "validation denial is a 400",
			auth: true,
			mockBehavior: func(r *service_mocks.MockFleetService) {
				r.EXPECT().
					CreateBooking(gomock.Any(), caller, gomock.Any()).
					Return(model.Booking{}, model.Unavailable(model.ReasonInvalidDate, "start_date is not a valid date"), nil)
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"available":false,"reason":"invalid_date","message":"start_date is not a valid date"}`,
			},
		},
		{
			name: "unknown vehicle is a 404",
			auth: true,
			mockBehavior: func(r *service_mocks.MockFleetService) {
				r.EXPECT().
					CreateBooking(gomock.Any(), caller, gomock.Any()).
					Return(model.Booking{}, model.Unavailable(model.ReasonNotFound, "vehicle not found"), nil)
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"available":false,"reason":"not_found","message":"vehicle not found"}`,
			},
		},
		{
			name:         "no token",
			auth:         false,
			mockBehavior: func(r *service_mocks.MockFleetService) {},
			response: response{
				expectedCode: http.StatusUnauthorized,
				expectedBody: `{"message":"No Authorization Header"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockFleetService(c)
			h := handler.New(svc, zap.NewNop())

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/bookings", h.CreateBooking, handler.JwtAuthentication)

			r := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			if tt.auth {
				r.Header.Set(handler.AuthorizationHeader, bearerToken(t, caller))
			}
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_ListBookings_BadDateFilter(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	svc := service_mocks.NewMockFleetService(c)
	h := handler.New(svc, zap.NewNop())

	e := echo.New()
	e.Validator = validate.NewCustomValidator()
	e.GET("/bookings", h.ListBookings, handler.JwtAuthentication)

	admin := auth.Principal{ID: "a1", Name: "Root", Admin: true}

	// a typo'd filter must not degrade into the unfiltered calendar:
	// the service is never reached
	r := httptest.NewRequest(http.MethodGet, "/bookings?start_date=03-2025", http.NoBody)
	r.Header.Set(handler.AuthorizationHeader, bearerToken(t, admin))
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetBooking(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	svc := service_mocks.NewMockFleetService(c)
	h := handler.New(svc, zap.NewNop())

	e := echo.New()
	e.Validator = validate.NewCustomValidator()
	e.GET("/bookings/:id", h.GetBooking, handler.JwtAuthentication)

	caller := auth.Principal{ID: "e2", Name: "Marta"}
	svc.EXPECT().
		GetBooking(gomock.Any(), caller, "b1").
		Return(model.Booking{}, errs.ErrForbidden)

	r := httptest.NewRequest(http.MethodGet, "/bookings/b1", http.NoBody)
	r.Header.Set(handler.AuthorizationHeader, bearerToken(t, caller))
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_RefreshPositions_FeedDown(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	svc := service_mocks.NewMockFleetService(c)
	h := handler.New(svc, zap.NewNop())

	e := echo.New()
	e.Validator = validate.NewCustomValidator()
	e.POST("/geo/refresh", h.RefreshPositions, handler.JwtAuthentication)

	admin := auth.Principal{ID: "a1", Name: "Root", Admin: true}
	svc.EXPECT().
		RefreshPositions(gomock.Any(), admin).
		Return(0, errors.Wrap(errs.ErrFeedNotConfigured, "refresh"))

	r := httptest.NewRequest(http.MethodPost, "/geo/refresh", http.NoBody)
	r.Header.Set(handler.AuthorizationHeader, bearerToken(t, admin))
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusServiceUnavailable, w.Code)
}
