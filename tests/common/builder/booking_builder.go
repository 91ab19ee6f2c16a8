//go:build unit || e2e

package builder

import (
	reqdto "tourbook/internal/handler/dto/request"

	"github.com/google/uuid"
)

type BookingRequestBuilder struct {
	ActivityID   uuid.UUID
	Date         string
	Time         string
	Participants int
	Currency     *string
	CustomerID   *uuid.UUID
	FirstName    string
	LastName     string
	Email        string
	Phone        *string
	Country      *string
	Notes        *string
}

func NewBookingRequestBuilder() *BookingRequestBuilder {
	return &BookingRequestBuilder{
		ActivityID:   uuid.New(),
		Date:         "2026-09-15",
		Time:         "14:30",
		Participants: 2,
		FirstName:    "Ana",
		LastName:     "Silva",
		Email:        "ana.silva@example.com",
	}
}

func (b *BookingRequestBuilder) WithActivityID(id uuid.UUID) *BookingRequestBuilder {
	b.ActivityID = id
	return b
}

func (b *BookingRequestBuilder) WithDate(date string) *BookingRequestBuilder {
	b.Date = date
	return b
}

func (b *BookingRequestBuilder) WithTime(t string) *BookingRequestBuilder {
	b.Time = t
	return b
}

func (b *BookingRequestBuilder) WithParticipants(n int) *BookingRequestBuilder {
	b.Participants = n
	return b
}

func (b *BookingRequestBuilder) WithEmail(email string) *BookingRequestBuilder {
	b.Email = email
	return b
}

func (b *BookingRequestBuilder) WithCustomerID(id uuid.UUID) *BookingRequestBuilder {
	b.CustomerID = &id
	return b
}

func (b *BookingRequestBuilder) Build() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		ActivityID:   b.ActivityID,
		Date:         b.Date,
		Time:         b.Time,
		Participants: b.Participants,
		Currency:     b.Currency,
		Customer: reqdto.BookingCustomer{
			ID:        b.CustomerID,
			FirstName: b.FirstName,
			LastName:  b.LastName,
			Email:     b.Email,
			Phone:     b.Phone,
			Country:   b.Country,
		},
		Notes: b.Notes,
	}
}
