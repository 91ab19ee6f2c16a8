//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"tourbook/internal/domain/booking"
	"tourbook/internal/domain/customer"
	"tourbook/internal/handler/api"
	resdto "tourbook/internal/handler/dto/response"
	"tourbook/internal/pkg/errs"
	"tourbook/internal/usecase/commands"
	"tourbook/internal/usecase/queries"
	"tourbook/tests/common/builder"
	"tourbook/tests/common/httptest"
	"tourbook/tests/common/testutil"
	commandsmock "tourbook/tests/mock/commands"
	queriesmock "tourbook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/bookings", s.handler.CreateBooking)
	s.router.GET("/bookings", s.handler.ListBookings)
	s.router.GET("/bookings/:id", s.handler.GetBooking)
	s.router.PATCH("/bookings/:id/status", s.handler.UpdateBookingStatus)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

// ================================================================================
// TestCreateBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	url := "/bookings"

	reqBody := builder.NewBookingRequestBuilder().Build()
	bookingID := uuid.New()
	expectedResult := &commands.CreateBookingResult{
		BookingID:      bookingID,
		TotalPrice:     180,
		Currency:       "USD",
		Status:         "pending",
		SensitiveSaved: true,
	}

	s.Run("success: returns 200 OK with booking id and sensitive flag", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(expectedResult, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.CreateBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(bookingID, response.BookingID)
		s.True(response.SensitiveSaved)
	})

	s.Run("success: sensitiveSaved false is passed through", func() {
		degraded := *expectedResult
		degraded.SensitiveSaved = false
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(&degraded, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.CreateBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.False(response.SensitiveSaved)
	})

	s.Run("error: 400 Bad Request naming the offending field", func() {
		testCases := []struct {
			name        string
			mutate      func(m map[string]any)
			expectedMsg string
		}{
			{name: "missing activityId", mutate: testutil.Field("activityId", nil), expectedMsg: "activityID is required"},
			{name: "missing date", mutate: testutil.Field("date", nil), expectedMsg: "date is required"},
			{name: "missing time", mutate: testutil.Field("time", nil), expectedMsg: "time is required"},
			{name: "missing customer", mutate: testutil.Field("customer", nil), expectedMsg: "customer is required"},
			{name: "malformed activityId", mutate: testutil.Field("activityId", "not-a-uuid"), expectedMsg: "Invalid request format"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, tc.expectedMsg)
			})
		}
	})

	s.Run("error: maps workflow errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "activity not found",
				commandsError:  commands.ErrActivityNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Activity not found",
			},
			{
				name:           "customer not found",
				commandsError:  commands.ErrCustomerNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Customer not found",
			},
			{
				name:           "invalid date or time mark",
				commandsError:  errs.Mark(errors.New("day out of range"), commands.ErrInvalidDateTime),
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid date or time",
			},
			{
				name:           "missing customer email mark",
				commandsError:  errs.Mark(customer.ErrMissingEmail, commands.ErrMissingField),
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Customer email is required",
			},
			{
				name:           "invalid participants named in the response",
				commandsError:  errs.Mark(booking.ErrInvalidParticipants, commands.ErrDomainValidation),
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Participants must be a positive integer",
			},
			{
				name:           "domain validation mark",
				commandsError:  errs.Mark(booking.ErrInvalidCurrency, commands.ErrDomainValidation),
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid booking data",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Failed to create booking",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestGetBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestGetBooking() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String()

	returnView := &queries.BookingView{
		ID:            bookingID,
		ActivityID:    uuid.New(),
		ActivityName:  "Sunset Kayak Tour",
		ActivitySlug:  "sunset-kayak-tour",
		CustomerID:    uuid.New(),
		CustomerName:  "Ana Silva",
		CustomerEmail: "ana.silva@example.com",
		StartsAt:      time.Date(2026, 9, 15, 14, 30, 0, 0, time.UTC),
		Participants:  2,
		TotalPrice:    180,
		Currency:      "USD",
		Status:        "pending",
	}

	s.Run("success: returns 200 OK with BookingResponse", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), bookingID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(bookingID, response.ID)
		s.Equal("Sunset Kayak Tour", response.ActivityName)
		s.Equal("ana.silva@example.com", response.CustomerEmail)
		s.Equal(int64(180), response.TotalPrice)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/invalid-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID format")
	})

	s.Run("error: 404 Not Found for missing booking", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), bookingID).
			Return(nil, queries.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("error: 500 on query failure", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), bookingID).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// TestListBookings
// ================================================================================

func (s *BookingHandlerTestSuite) TestListBookings() {
	baseURL := "/bookings"

	items := []*queries.BookingListItem{
		{ID: uuid.New(), ActivityName: "Sunset Kayak Tour", Status: "pending", TotalPrice: 180, Currency: "USD"},
		{ID: uuid.New(), ActivityName: "Old Town Food Walk", Status: "confirmed", TotalPrice: 130, Currency: "USD"},
	}

	s.Run("success: returns first page without cursor", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), (*queries.Cursor)(nil), 0).
			Return(items, nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, baseURL, nil, "")

		var response resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Items, 2)
		s.Nil(response.NextCursor)
	})

	s.Run("success: cursor and limit are forwarded and next cursor returned", func() {
		after := &queries.Cursor{CreatedAt: time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC), ID: uuid.New()}
		next := &queries.Cursor{CreatedAt: time.Date(2026, 8, 19, 10, 0, 0, 0, time.UTC), ID: uuid.New()}
		url := baseURL + "?cursor=" + after.Encode() + "&limit=10"

		s.mockQueries.EXPECT().List(gomock.Any(), after, 10).
			Return(items[:1], next, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Items, 1)
		s.NotNil(response.NextCursor)
		s.Equal(next.Encode(), *response.NextCursor)
	})

	s.Run("error: 400 Bad Request for malformed cursor", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, baseURL+"?cursor=%21%21", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid pagination cursor")
	})

	s.Run("error: 400 Bad Request for non-numeric limit", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, baseURL+"?limit=ten", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid limit")
	})

	s.Run("error: 500 on query failure", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), (*queries.Cursor)(nil), 0).
			Return(nil, nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, baseURL, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// TestUpdateBookingStatus
// ================================================================================

func (s *BookingHandlerTestSuite) TestUpdateBookingStatus() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/status"
	reqBody := map[string]string{"status": "confirmed"}

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), bookingID, "confirmed").
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/bookings/invalid-uuid/status", reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID format")
	})

	s.Run("error: 400 Bad Request for missing status", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]string{}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: maps workflow errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "booking not found",
				commandsError:  commands.ErrBookingNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Booking not found",
			},
			{
				name:           "illegal transition",
				commandsError:  commands.ErrDomainValidation,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Invalid status transition",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), bookingID, "confirmed").
					Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
