package repository

import (
	"context"

	"tourbook/internal/domain/activity"
	"tourbook/internal/infra"
	"tourbook/internal/infra/repository/converter"
	sqlc "tourbook/internal/infra/sqlc/generated"
	"tourbook/internal/pkg/pgconv"
	"tourbook/internal/usecase/commands"

	"github.com/google/uuid"
)

type ActivityWriteQueries interface {
	CreateActivity(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateActivityParams) (uuid.UUID, error)
	GetActivityByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Activities, error)
	UpdateActivity(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateActivityParams) (int64, error)
	DeactivateActivity(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type ActivityRepository struct {
	queries ActivityWriteQueries
	db      sqlc.DBTX
}

func NewActivityRepository(queries *sqlc.Queries, db sqlc.DBTX) *ActivityRepository {
	return &ActivityRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ActivityRepository) FindByID(ctx context.Context, id uuid.UUID) (*commands.ActivitySnapshot, error) {
	row, err := r.queries.GetActivityByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("activity not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find activity by ID", err)
	}

	price, err := pgconv.Float64FromNumeric(row.Price)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid activity price in storage", err)
	}

	return &commands.ActivitySnapshot{
		ID:        row.ID,
		Name:      row.Name,
		Slug:      row.Slug,
		Price:     price,
		Capacity:  row.Capacity,
		Active:    row.Active,
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func (r *ActivityRepository) Create(ctx context.Context, act *activity.Activity) (uuid.UUID, error) {
	id, err := r.queries.CreateActivity(ctx, r.db, converter.ActivityToCreateParams(act))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create activity", err)
	}
	return id, nil
}

func (r *ActivityRepository) Update(ctx context.Context, act *activity.Activity) error {
	affected, err := r.queries.UpdateActivity(ctx, r.db, converter.ActivityToUpdateParams(act))
	if err != nil {
		return infra.WrapRepoErr("failed to update activity", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("activity not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ActivityRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	affected, err := r.queries.DeactivateActivity(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to deactivate activity", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("activity not found", nil, infra.KindNotFound)
	}
	return nil
}
