package commands

import (
	"context"
	"time"

	"tourbook/internal/domain/activity"
	"tourbook/internal/domain/booking"
	"tourbook/internal/domain/customer"

	"github.com/google/uuid"
)

// Write-side snapshots prevent dependency on read-side query types (CQRS separation)

type ActivitySnapshot struct {
	ID        uuid.UUID
	Name      string
	Slug      string
	Price     float64
	Capacity  int32
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

type CustomerSnapshot struct {
	ID      uuid.UUID
	Name    string
	Email   string
	Phone   *string
	Country *string
}

type ActivityRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ActivitySnapshot, error)
	Create(ctx context.Context, act *activity.Activity) (uuid.UUID, error)
	Update(ctx context.Context, act *activity.Activity) error
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type CustomerRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*CustomerSnapshot, error)
	FindByEmail(ctx context.Context, email string) (*CustomerSnapshot, error)
	Create(ctx context.Context, cust *customer.Customer) (*CustomerSnapshot, error)
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) (uuid.UUID, error)
	FindStatus(ctx context.Context, id uuid.UUID) (booking.Status, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status) error
}

// SensitiveRecordRepository persists raw billing payloads one-to-one with a
// booking. Whether a real store or a no-op is injected is decided at startup;
// callers never probe capabilities at request time.
type SensitiveRecordRepository interface {
	Enabled() bool
	Save(ctx context.Context, bookingID uuid.UUID, payload []byte, notes *string) error
}

type UserRepository interface {
	UpdateLastLogin(ctx context.Context, userID uuid.UUID) error
}
