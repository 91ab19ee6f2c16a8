package converter

import (
	"math"

	"tourbook/internal/domain/booking"
	sqlc "tourbook/internal/infra/sqlc/generated"
	"tourbook/internal/pkg/errs"
	"tourbook/internal/pkg/pgconv"
)

// BookingToCreateParams refuses participant counts that do not fit the int32
// column; silently truncating would store a count disagreeing with the total
// the price was computed from.
func BookingToCreateParams(b *booking.Booking) (sqlc.CreateBookingParams, error) {
	if b.Participants() > math.MaxInt32 {
		return sqlc.CreateBookingParams{}, errs.New("participants out of range for storage")
	}

	return sqlc.CreateBookingParams{
		ActivityID:   b.ActivityID(),
		CustomerID:   b.CustomerID(),
		StartsAt:     pgconv.TimeToPgtype(b.Schedule().StartsAt()),
		Participants: int32(b.Participants()),
		TotalPrice:   b.Total().Units(),
		Currency:     b.Total().Currency(),
		Status:       b.Status().String(),
	}, nil
}
