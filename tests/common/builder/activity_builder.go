//go:build unit || e2e

package builder

import (
	"time"

	"tourbook/internal/domain/activity"
	sqlc "tourbook/internal/infra/sqlc/generated"
	"tourbook/internal/pkg/pgconv"
	"tourbook/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ActivityBuilder struct {
	Name            string
	Slug            string
	Description     string
	Location        string
	DurationMinutes int
	Price           float64
	Capacity        int
	Active          bool
}

func NewActivityBuilder() *ActivityBuilder {
	return &ActivityBuilder{
		Name:            "Old Town Walking Tour",
		Slug:            "old-town-walking-tour",
		Description:     "Two hours through the historic quarter.",
		Location:        "Lisbon",
		DurationMinutes: 120,
		Price:           25.00,
		Capacity:        20,
		Active:          true,
	}
}

func (a *ActivityBuilder) WithPrice(price float64) *ActivityBuilder {
	a.Price = price
	return a
}

func (a *ActivityBuilder) WithSlug(slug string) *ActivityBuilder {
	a.Slug = slug
	return a
}

func (a *ActivityBuilder) AsInactive() *ActivityBuilder {
	a.Active = false
	return a
}

func (a *ActivityBuilder) BuildDomain() (*activity.Activity, error) {
	return activity.NewActivity(a.Name, a.Slug, a.Description, a.Location, a.DurationMinutes, a.Price, a.Capacity)
}

func (a *ActivityBuilder) BuildInfra() sqlc.Activities {
	now := time.Now()
	return sqlc.Activities{
		ID:              uuid.New(),
		Name:            a.Name,
		Slug:            a.Slug,
		Description:     a.Description,
		Location:        a.Location,
		DurationMinutes: int32(a.DurationMinutes),
		Price:           pgconv.NumericFromFloat64(a.Price),
		Capacity:        int32(a.Capacity),
		Active:          a.Active,
		CreatedAt:       pgtype.Timestamptz{Time: now, Valid: true},
		UpdatedAt:       pgtype.Timestamptz{Time: now, Valid: true},
	}
}

func (a *ActivityBuilder) BuildSnapshot() *commands.ActivitySnapshot {
	now := time.Now()
	return &commands.ActivitySnapshot{
		ID:        uuid.New(),
		Name:      a.Name,
		Slug:      a.Slug,
		Price:     a.Price,
		Capacity:  int32(a.Capacity),
		Active:    a.Active,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
