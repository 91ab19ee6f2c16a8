package converter

import (
	"tourbook/internal/domain/activity"
	sqlc "tourbook/internal/infra/sqlc/generated"
	"tourbook/internal/pkg/pgconv"
)

func ActivityToCreateParams(a *activity.Activity) sqlc.CreateActivityParams {
	return sqlc.CreateActivityParams{
		Name:            a.Name(),
		Slug:            a.Slug(),
		Description:     a.Description(),
		Location:        a.Location(),
		DurationMinutes: int32(a.DurationMinutes()),
		Price:           pgconv.NumericFromFloat64(a.Price()),
		Capacity:        int32(a.Capacity()),
		Active:          a.IsActive(),
	}
}

func ActivityToUpdateParams(a *activity.Activity) sqlc.UpdateActivityParams {
	return sqlc.UpdateActivityParams{
		ID:              a.ID(),
		Name:            a.Name(),
		Slug:            a.Slug(),
		Description:     a.Description(),
		Location:        a.Location(),
		DurationMinutes: int32(a.DurationMinutes()),
		Price:           pgconv.NumericFromFloat64(a.Price()),
		Capacity:        int32(a.Capacity()),
		Active:          a.IsActive(),
	}
}
