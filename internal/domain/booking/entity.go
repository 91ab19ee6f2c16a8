package booking

import (
	"errors"
	"time"

	"tourbook/internal/pkg/clock"

	"github.com/google/uuid"
)

var (
	ErrInvalidParticipants = errors.New("participants must be a positive integer")
	ErrInvalidStatus       = errors.New("invalid booking status")
)

// ActivitySpec is the slice of an Activity the booking workflow needs:
// identity and the per-person rate used for pricing.
type ActivitySpec struct {
	ID    uuid.UUID
	Price float64
}

type Services struct {
	Clock           clock.Clock
	PriceCalculator PriceCalculator
}

// Booking links one customer to one activity at a specific date/time for N
// participants. Created with status pending; advanced to confirmed/cancelled
// only by separate administrative operations.
type Booking struct {
	id           uuid.UUID
	activityID   uuid.UUID
	customerID   uuid.UUID
	schedule     Schedule
	participants int
	total        Money
	status       Status
	createdAt    time.Time
	updatedAt    time.Time
}

func NewBooking(
	services *Services,
	act ActivitySpec,
	customerID uuid.UUID,
	schedule Schedule,
	participants int,
	currency string,
) (*Booking, error) {
	if participants <= 0 {
		return nil, ErrInvalidParticipants
	}

	units := services.PriceCalculator.TotalPrice(act.Price, participants)
	total, err := NewMoney(units, currency)
	if err != nil {
		return nil, err
	}

	now := services.Clock.Now().UTC()
	return &Booking{
		id:           uuid.New(),
		activityID:   act.ID,
		customerID:   customerID,
		schedule:     schedule,
		participants: participants,
		total:        total,
		status:       StatusPending,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructBooking(
	id, activityID, customerID uuid.UUID,
	schedule Schedule,
	participants int,
	total Money,
	status Status,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:           id,
		activityID:   activityID,
		customerID:   customerID,
		schedule:     schedule,
		participants: participants,
		total:        total,
		status:       status,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (b *Booking) IsPending() bool {
	return b.status == StatusPending
}

func (b *Booking) ID() uuid.UUID         { return b.id }
func (b *Booking) ActivityID() uuid.UUID { return b.activityID }
func (b *Booking) CustomerID() uuid.UUID { return b.customerID }
func (b *Booking) Schedule() Schedule    { return b.schedule }
func (b *Booking) Participants() int     { return b.participants }
func (b *Booking) Total() Money          { return b.total }
func (b *Booking) Status() Status        { return b.status }
func (b *Booking) CreatedAt() time.Time  { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time  { return b.updatedAt }
