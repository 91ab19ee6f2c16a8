package request

import (
	"encoding/json"
	"strings"

	"tourbook/internal/domain/customer"

	"github.com/google/uuid"
)

// BookingCustomer identifies who books: either an existing customer id or
// contact details resolved by email. Email intentionally carries no binding
// tag; its absence is reported by the workflow, not the binder.
type BookingCustomer struct {
	ID        *uuid.UUID `json:"id,omitempty"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	Email     string     `json:"email"`
	Phone     *string    `json:"phone,omitempty"`
	Country   *string    `json:"country,omitempty"`
}

// FullName joins the name parts, falling back to the email address when both
// are blank so a created customer row never has an empty name.
func (c BookingCustomer) FullName(email customer.Email) string {
	name := strings.TrimSpace(strings.TrimSpace(c.FirstName) + " " + strings.TrimSpace(c.LastName))
	if name == "" {
		return email.Value()
	}
	return name
}

type CreateBookingRequest struct {
	ActivityID   uuid.UUID       `json:"activityId" binding:"required"`
	Date         string          `json:"date" binding:"required"`
	Time         string          `json:"time" binding:"required"`
	Participants int             `json:"participants"`
	Currency     *string         `json:"currency,omitempty"`
	Customer     BookingCustomer `json:"customer" binding:"required"`
	// Raw payloads for the optional sensitive record; never validated or
	// interpreted, stored verbatim when capture is enabled.
	BillingAddress json.RawMessage `json:"billingAddress,omitempty"`
	Card           json.RawMessage `json:"card,omitempty"`
	Notes          *string         `json:"notes,omitempty"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
