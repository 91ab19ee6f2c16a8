package readstore

import (
	"context"

	"tourbook/internal/infra"
	sqlc "tourbook/internal/infra/sqlc/generated"
	"tourbook/internal/pkg/pgconv"
	"tourbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type ActivityViewQueries interface {
	GetActivityByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Activities, error)
	GetActivityBySlug(ctx context.Context, db sqlc.DBTX, slug string) (sqlc.Activities, error)
	ListActivities(ctx context.Context, db sqlc.DBTX, includeInactive bool) ([]sqlc.Activities, error)
}

type ActivityReadStore struct {
	queries ActivityViewQueries
	db      sqlc.DBTX
}

func NewActivityReadStore(queries *sqlc.Queries, db sqlc.DBTX) *ActivityReadStore {
	return &ActivityReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ActivityReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ActivityView, error) {
	row, err := r.queries.GetActivityByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("activity not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find activity by ID", err)
	}
	return rowToActivityView(row)
}

func (r *ActivityReadStore) FindBySlug(ctx context.Context, slug string) (*queries.ActivityView, error) {
	row, err := r.queries.GetActivityBySlug(ctx, r.db, slug)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("activity not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find activity by slug", err)
	}
	return rowToActivityView(row)
}

func (r *ActivityReadStore) FindAll(ctx context.Context, includeInactive bool) ([]*queries.ActivityView, error) {
	rows, err := r.queries.ListActivities(ctx, r.db, includeInactive)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list activities", err)
	}

	result := make([]*queries.ActivityView, len(rows))
	for i, row := range rows {
		view, err := rowToActivityView(row)
		if err != nil {
			return nil, err
		}
		result[i] = view
	}
	return result, nil
}

func rowToActivityView(row sqlc.Activities) (*queries.ActivityView, error) {
	price, err := pgconv.Float64FromNumeric(row.Price)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid activity price in storage", err)
	}

	return &queries.ActivityView{
		ID:              row.ID,
		Name:            row.Name,
		Slug:            row.Slug,
		Description:     row.Description,
		Location:        row.Location,
		DurationMinutes: row.DurationMinutes,
		Price:           price,
		Capacity:        row.Capacity,
		Active:          row.Active,
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:       pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}
