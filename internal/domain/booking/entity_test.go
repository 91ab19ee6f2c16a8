//go:build unit

package booking_test

import (
	"testing"
	"time"

	"tourbook/internal/domain/booking"
	"tourbook/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServices(now time.Time) *booking.Services {
	return &booking.Services{
		Clock:           clock.NewMockClock(now),
		PriceCalculator: booking.NewPerPersonPriceCalculator(),
	}
}

func TestNewBooking(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	schedule, err := booking.NewSchedule("2026-09-15", "14:30")
	require.NoError(t, err)

	act := booking.ActivitySpec{ID: uuid.New(), Price: 89.99}
	customerID := uuid.New()

	t.Run("creates pending booking with computed total", func(t *testing.T) {
		b, err := booking.NewBooking(newTestServices(now), act, customerID, schedule, 2, "USD")
		require.NoError(t, err)

		assert.Equal(t, booking.StatusPending, b.Status())
		assert.True(t, b.IsPending())
		assert.Equal(t, int64(180), b.Total().Units())
		assert.Equal(t, "USD", b.Total().Currency())
		assert.Equal(t, act.ID, b.ActivityID())
		assert.Equal(t, customerID, b.CustomerID())
		assert.Equal(t, now, b.CreatedAt())
		assert.Equal(t, now, b.UpdatedAt())
		assert.NotEqual(t, uuid.Nil, b.ID())
	})

	t.Run("rejects zero participants", func(t *testing.T) {
		_, err := booking.NewBooking(newTestServices(now), act, customerID, schedule, 0, "USD")
		assert.ErrorIs(t, err, booking.ErrInvalidParticipants)
	})

	t.Run("rejects negative participants", func(t *testing.T) {
		_, err := booking.NewBooking(newTestServices(now), act, customerID, schedule, -3, "USD")
		assert.ErrorIs(t, err, booking.ErrInvalidParticipants)
	})

	t.Run("rejects malformed currency", func(t *testing.T) {
		_, err := booking.NewBooking(newTestServices(now), act, customerID, schedule, 2, "DOLLARS")
		assert.ErrorIs(t, err, booking.ErrInvalidCurrency)
	})
}

func TestStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from booking.Status
		to   booking.Status
		want bool
	}{
		{name: "pending to confirmed", from: booking.StatusPending, to: booking.StatusConfirmed, want: true},
		{name: "pending to cancelled", from: booking.StatusPending, to: booking.StatusCancelled, want: true},
		{name: "pending to pending", from: booking.StatusPending, to: booking.StatusPending, want: false},
		{name: "confirmed is terminal", from: booking.StatusConfirmed, to: booking.StatusCancelled, want: false},
		{name: "cancelled is terminal", from: booking.StatusCancelled, to: booking.StatusConfirmed, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestNewStatus(t *testing.T) {
	t.Run("accepts known statuses", func(t *testing.T) {
		for _, s := range []string{"pending", "confirmed", "cancelled"} {
			status, err := booking.NewStatus(s)
			require.NoError(t, err)
			assert.Equal(t, s, status.String())
		}
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		_, err := booking.NewStatus("archived")
		assert.ErrorIs(t, err, booking.ErrInvalidStatus)
	})
}
