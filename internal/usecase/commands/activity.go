package commands

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"tourbook/internal/domain/activity"
	reqdto "tourbook/internal/handler/dto/request"
	"tourbook/internal/infra"
	"tourbook/internal/pkg/errs"
)

var ErrDuplicateSlug = errs.New("activity slug already exists")

type ActivityCommands interface {
	Create(ctx context.Context, req reqdto.CreateActivityRequest) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateActivityRequest) error
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type activityCommandsImpl struct {
	activityRepo ActivityRepository
}

func NewActivityCommands(activityRepo ActivityRepository) ActivityCommands {
	return &activityCommandsImpl{activityRepo: activityRepo}
}

func (a *activityCommandsImpl) Create(ctx context.Context, req reqdto.CreateActivityRequest) (uuid.UUID, error) {
	slug := strings.TrimSpace(req.Slug)
	if slug == "" {
		slug = activity.Slugify(req.Name)
	}

	entity, err := activity.NewActivity(
		req.Name,
		slug,
		req.Description,
		req.Location,
		req.DurationMinutes,
		req.Price,
		req.Capacity,
	)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	id, err := a.activityRepo.Create(ctx, entity)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, errs.Mark(err, ErrDuplicateSlug)
		}
		return uuid.Nil, errs.Mark(err, ErrPersistenceFailed)
	}
	return id, nil
}

func (a *activityCommandsImpl) Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateActivityRequest) error {
	current, err := a.activityRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrActivityNotFound
		}
		return errs.Mark(err, ErrPersistenceFailed)
	}

	slug := current.Slug
	if req.Slug != nil {
		slug = *req.Slug
	}

	entity, err := activity.NewActivity(
		req.Name,
		slug,
		req.Description,
		req.Location,
		req.DurationMinutes,
		req.Price,
		req.Capacity,
	)
	if err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}
	entity = activity.ReconstructActivity(
		id,
		entity.Name(), entity.Slug(), entity.Description(), entity.Location(),
		entity.DurationMinutes(), entity.Price(), entity.Capacity(),
		current.Active,
		current.CreatedAt, current.UpdatedAt,
	)

	if err := a.activityRepo.Update(ctx, entity); err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return ErrActivityNotFound
		case infra.IsKind(err, infra.KindDuplicateKey):
			return errs.Mark(err, ErrDuplicateSlug)
		default:
			return errs.Mark(err, ErrPersistenceFailed)
		}
	}
	return nil
}

func (a *activityCommandsImpl) Deactivate(ctx context.Context, id uuid.UUID) error {
	if err := a.activityRepo.Deactivate(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrActivityNotFound
		}
		return errs.Mark(err, ErrPersistenceFailed)
	}
	return nil
}
