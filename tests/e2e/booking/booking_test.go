//go:build e2e

package booking_test

import (
	"context"
	"net/http"
	"testing"

	"tourbook/tests/common/authtest"
	"tourbook/tests/common/builder"
	"tourbook/tests/common/dbtest"
	"tourbook/tests/common/httptest"
	"tourbook/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const bookingsURL = "/api/bookings"

type BookingSuite struct {
	e2e.SharedSuite
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

type createBookingResponse struct {
	BookingID      uuid.UUID `json:"bookingId"`
	SensitiveSaved bool      `json:"sensitiveSaved"`
}

// =============================================================================
// TestCreateBooking - public booking workflow
// =============================================================================

func (s *BookingSuite) TestCreateBooking() {
	s.Run("Normal case: booking created with new customer and sensitive record", func() {
		t := s.T()

		reqBody := builder.NewBookingRequestBuilder().
			WithActivityID(dbtest.KayakActivityID).
			WithParticipants(2).
			Build()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, "")
		require.Equal(t, http.StatusOK, w.Code, "Response: %s", w.Body.String())

		var created createBookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
		require.NotEqual(t, uuid.Nil, created.BookingID)
		require.True(t, created.SensitiveSaved, "test config enables sensitive capture")

		ctx := context.Background()

		var (
			totalPrice int64
			currency   string
			status     string
		)
		err := s.DB.QueryRow(ctx,
			"SELECT total_price, currency, status FROM bookings WHERE id = $1",
			created.BookingID).Scan(&totalPrice, &currency, &status)
		require.NoError(t, err)
		require.Equal(t, int64(180), totalPrice, "89.99 x 2 rounds to 180")
		require.Equal(t, "USD", currency)
		require.Equal(t, "pending", status)

		var customerCount int
		err = s.DB.QueryRow(ctx,
			"SELECT COUNT(*) FROM customers WHERE email = $1",
			"ana.silva@example.com").Scan(&customerCount)
		require.NoError(t, err)
		require.Equal(t, 1, customerCount)

		var sensitiveCount int
		err = s.DB.QueryRow(ctx,
			"SELECT COUNT(*) FROM booking_sensitive WHERE booking_id = $1",
			created.BookingID).Scan(&sensitiveCount)
		require.NoError(t, err)
		require.Equal(t, 1, sensitiveCount)
	})

	s.Run("Normal case: second booking with same email reuses the customer", func() {
		t := s.T()

		reqBody := builder.NewBookingRequestBuilder().
			WithActivityID(dbtest.KayakActivityID).
			Build()

		first := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, "")
		require.Equal(t, http.StatusOK, first.Code)

		second := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, "")
		require.Equal(t, http.StatusOK, second.Code)

		ctx := context.Background()

		var customerCount int
		err := s.DB.QueryRow(ctx,
			"SELECT COUNT(*) FROM customers WHERE email = $1",
			"ana.silva@example.com").Scan(&customerCount)
		require.NoError(t, err)
		require.Equal(t, 1, customerCount, "same email must not create a second customer")

		var bookingCount int
		err = s.DB.QueryRow(ctx, "SELECT COUNT(*) FROM bookings").Scan(&bookingCount)
		require.NoError(t, err)
		require.Equal(t, 2, bookingCount)
	})

	s.Run("Error case: unknown activity returns 404", func() {
		t := s.T()

		reqBody := builder.NewBookingRequestBuilder().
			WithActivityID(uuid.New()).
			Build()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, "")
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Activity not found")
	})

	s.Run("Error case: impossible calendar date returns 400", func() {
		t := s.T()

		reqBody := builder.NewBookingRequestBuilder().
			WithActivityID(dbtest.KayakActivityID).
			WithDate("2024-02-30").
			Build()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, "")
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid date or time")
	})

	s.Run("Error case: missing customer email returns 400", func() {
		t := s.T()

		reqBody := builder.NewBookingRequestBuilder().
			WithActivityID(dbtest.KayakActivityID).
			WithEmail("").
			Build()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, "")
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Customer email is required")
	})
}

// =============================================================================
// TestListAndGetBookings - staff read access
// =============================================================================

func (s *BookingSuite) TestListAndGetBookings() {
	s.Run("Error case: anonymous list is rejected", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("Normal case: staff can list and fetch bookings", func() {
		t := s.T()

		reqBody := builder.NewBookingRequestBuilder().
			WithActivityID(dbtest.KayakActivityID).
			Build()
		created := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, "")
		require.Equal(t, http.StatusOK, created.Code)

		var createdBody createBookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, created.Body, &createdBody))

		token := authtest.LoginUser(t, s.Router, dbtest.StaffEmail, dbtest.TestPassword)

		list := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL, nil, token)
		require.Equal(t, http.StatusOK, list.Code)

		var listBody struct {
			Items []struct {
				ID           uuid.UUID `json:"id"`
				ActivityName string    `json:"activityName"`
			} `json:"items"`
			NextCursor *string `json:"nextCursor"`
		}
		require.NoError(t, httptest.DecodeResponseBody(t, list.Body, &listBody))
		require.Len(t, listBody.Items, 1)
		require.Equal(t, createdBody.BookingID, listBody.Items[0].ID)
		require.Equal(t, "Sunset Kayak Tour", listBody.Items[0].ActivityName)
		require.Nil(t, listBody.NextCursor, "partial page has no next cursor")

		detail := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"/"+createdBody.BookingID.String(), nil, token)
		require.Equal(t, http.StatusOK, detail.Code)

		var detailBody struct {
			ID            uuid.UUID `json:"id"`
			CustomerEmail string    `json:"customerEmail"`
			TotalPrice    int64     `json:"totalPrice"`
			Status        string    `json:"status"`
		}
		require.NoError(t, httptest.DecodeResponseBody(t, detail.Body, &detailBody))
		require.Equal(t, createdBody.BookingID, detailBody.ID)
		require.Equal(t, "ana.silva@example.com", detailBody.CustomerEmail)
		require.Equal(t, int64(180), detailBody.TotalPrice)
		require.Equal(t, "pending", detailBody.Status)
	})
}

// =============================================================================
// TestUpdateBookingStatus - admin lifecycle control
// =============================================================================

func (s *BookingSuite) TestUpdateBookingStatus() {
	s.Run("Normal case: admin confirms a pending booking once", func() {
		t := s.T()

		reqBody := builder.NewBookingRequestBuilder().
			WithActivityID(dbtest.KayakActivityID).
			Build()
		created := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, "")
		require.Equal(t, http.StatusOK, created.Code)

		var createdBody createBookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, created.Body, &createdBody))

		adminToken := authtest.LoginUser(t, s.Router, dbtest.AdminEmail, dbtest.TestPassword)
		statusURL := bookingsURL + "/" + createdBody.BookingID.String() + "/status"

		confirm := httptest.PerformRequest(t, s.Router, http.MethodPatch, statusURL,
			map[string]string{"status": "confirmed"}, adminToken)
		require.Equal(t, http.StatusNoContent, confirm.Code)

		var status string
		err := s.DB.QueryRow(context.Background(),
			"SELECT status FROM bookings WHERE id = $1", createdBody.BookingID).Scan(&status)
		require.NoError(t, err)
		require.Equal(t, "confirmed", status)

		// Terminal state: any further transition conflicts.
		cancel := httptest.PerformRequest(t, s.Router, http.MethodPatch, statusURL,
			map[string]string{"status": "cancelled"}, adminToken)
		httptest.AssertErrorResponse(t, cancel, http.StatusConflict, "Invalid status transition")
	})

	s.Run("Error case: staff role cannot change status", func() {
		t := s.T()

		reqBody := builder.NewBookingRequestBuilder().
			WithActivityID(dbtest.KayakActivityID).
			Build()
		created := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, "")
		require.Equal(t, http.StatusOK, created.Code)

		var createdBody createBookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, created.Body, &createdBody))

		staffToken := authtest.LoginUser(t, s.Router, dbtest.StaffEmail, dbtest.TestPassword)
		statusURL := bookingsURL + "/" + createdBody.BookingID.String() + "/status"

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, statusURL,
			map[string]string{"status": "confirmed"}, staffToken)
		require.Equal(t, http.StatusForbidden, w.Code)
	})

	s.Run("Error case: unknown booking returns 404", func() {
		t := s.T()

		adminToken := authtest.LoginUser(t, s.Router, dbtest.AdminEmail, dbtest.TestPassword)
		statusURL := bookingsURL + "/" + uuid.NewString() + "/status"

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, statusURL,
			map[string]string{"status": "confirmed"}, adminToken)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Booking not found")
	})
}
