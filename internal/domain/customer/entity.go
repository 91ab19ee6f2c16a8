package customer

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMissingEmail = errors.New("customer email is required")
	ErrInvalidEmail = errors.New("invalid customer email format")
	ErrEmptyName    = errors.New("customer name cannot be empty")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return Email{}, ErrMissingEmail
	}
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

// Customer is identified uniquely by email and may hold many bookings.
// Resolution is find-or-create: existing rows are never overwritten with
// request-supplied fields.
type Customer struct {
	id        uuid.UUID
	name      string
	email     Email
	phone     *string
	country   *string
	createdAt time.Time
	updatedAt time.Time
}

func NewCustomer(name string, email Email, phone, country *string) (*Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	return &Customer{
		id:      uuid.New(),
		name:    name,
		email:   email,
		phone:   phone,
		country: country,
	}, nil
}

func ReconstructCustomer(
	id uuid.UUID,
	name string,
	email Email,
	phone, country *string,
	createdAt, updatedAt time.Time,
) *Customer {
	return &Customer{
		id:        id,
		name:      name,
		email:     email,
		phone:     phone,
		country:   country,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (c *Customer) ID() uuid.UUID        { return c.id }
func (c *Customer) Name() string         { return c.name }
func (c *Customer) Email() Email         { return c.email }
func (c *Customer) Phone() *string       { return c.phone }
func (c *Customer) Country() *string     { return c.country }
func (c *Customer) CreatedAt() time.Time { return c.createdAt }
func (c *Customer) UpdatedAt() time.Time { return c.updatedAt }
