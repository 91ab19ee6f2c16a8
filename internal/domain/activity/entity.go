package activity

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName       = errors.New("activity name cannot be empty")
	ErrInvalidSlug     = errors.New("invalid activity slug")
	ErrNegativePrice   = errors.New("activity price cannot be negative")
	ErrInvalidCapacity = errors.New("activity capacity must be positive")
)

var slugRegex = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Activity is a bookable excursion with a per-person price.
// Read-only during booking creation; mutated only via admin CRUD.
type Activity struct {
	id              uuid.UUID
	name            string
	slug            string
	description     string
	location        string
	durationMinutes int
	price           float64
	capacity        int
	active          bool
	createdAt       time.Time
	updatedAt       time.Time
}

func NewActivity(name, slug, description, location string, durationMinutes int, price float64, capacity int) (*Activity, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if !slugRegex.MatchString(slug) {
		return nil, ErrInvalidSlug
	}
	if price < 0 {
		return nil, ErrNegativePrice
	}
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}

	return &Activity{
		id:              uuid.New(),
		name:            name,
		slug:            slug,
		description:     description,
		location:        location,
		durationMinutes: durationMinutes,
		price:           price,
		capacity:        capacity,
		active:          true,
	}, nil
}

func ReconstructActivity(
	id uuid.UUID,
	name, slug, description, location string,
	durationMinutes int,
	price float64,
	capacity int,
	active bool,
	createdAt, updatedAt time.Time,
) *Activity {
	return &Activity{
		id:              id,
		name:            name,
		slug:            slug,
		description:     description,
		location:        location,
		durationMinutes: durationMinutes,
		price:           price,
		capacity:        capacity,
		active:          active,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

func (a *Activity) ID() uuid.UUID        { return a.id }
func (a *Activity) Name() string         { return a.name }
func (a *Activity) Slug() string         { return a.slug }
func (a *Activity) Description() string  { return a.description }
func (a *Activity) Location() string     { return a.location }
func (a *Activity) DurationMinutes() int { return a.durationMinutes }
func (a *Activity) Price() float64       { return a.price }
func (a *Activity) Capacity() int        { return a.capacity }
func (a *Activity) IsActive() bool       { return a.active }
func (a *Activity) CreatedAt() time.Time { return a.createdAt }
func (a *Activity) UpdatedAt() time.Time { return a.updatedAt }

// Slugify derives a URL slug from an activity name.
func Slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	var b strings.Builder
	lastDash := true
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
