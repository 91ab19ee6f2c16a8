package queries

import (
	"context"

	"tourbook/internal/infra"
	"tourbook/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrActivityNotFound = errs.New("activity not found")

type ActivityQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ActivityView, error)
	GetBySlug(ctx context.Context, slug string) (*ActivityView, error)
	List(ctx context.Context, includeInactive bool) ([]*ActivityView, error)
}

type ActivityReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ActivityView, error)
	FindBySlug(ctx context.Context, slug string) (*ActivityView, error)
	FindAll(ctx context.Context, includeInactive bool) ([]*ActivityView, error)
}

type activityQueriesImpl struct {
	readStore ActivityReadStore
}

func NewActivityQueries(readStore ActivityReadStore) ActivityQueries {
	return &activityQueriesImpl{readStore: readStore}
}

func (q *activityQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ActivityView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrActivityNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *activityQueriesImpl) GetBySlug(ctx context.Context, slug string) (*ActivityView, error) {
	view, err := q.readStore.FindBySlug(ctx, slug)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrActivityNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *activityQueriesImpl) List(ctx context.Context, includeInactive bool) ([]*ActivityView, error) {
	return q.readStore.FindAll(ctx, includeInactive)
}
