package readstore

import (
	"context"
	"time"

	"tourbook/internal/infra"
	sqlc "tourbook/internal/infra/sqlc/generated"
	"tourbook/internal/pkg/pgconv"
	"tourbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingViewQueries interface {
	GetBookingByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetBookingByIDRow, error)
	GetBookingsFirstPage(ctx context.Context, db sqlc.DBTX, limit int32) ([]sqlc.GetBookingsFirstPageRow, error)
	GetBookingsKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.GetBookingsKeysetParams) ([]sqlc.GetBookingsKeysetRow, error)
}

type BookingReadStore struct {
	queries BookingViewQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries *sqlc.Queries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	return &queries.BookingView{
		ID:            row.ID,
		ActivityID:    row.ActivityID,
		ActivityName:  row.ActivityName,
		ActivitySlug:  row.ActivitySlug,
		CustomerID:    row.CustomerID,
		CustomerName:  row.CustomerName,
		CustomerEmail: row.CustomerEmail,
		StartsAt:      pgconv.TimeFromPgtype(row.StartsAt),
		Participants:  row.Participants,
		TotalPrice:    row.TotalPrice,
		Currency:      row.Currency,
		Status:        row.Status,
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func (r *BookingReadStore) FindFirstPage(ctx context.Context, limit int32) ([]*queries.BookingListItem, error) {
	rows, err := r.queries.GetBookingsFirstPage(ctx, r.db, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find bookings first page", err)
	}

	result := make([]*queries.BookingListItem, len(rows))
	for i, row := range rows {
		result[i] = toBookingListItemFromFirstPageRow(row)
	}
	return result, nil
}

func (r *BookingReadStore) FindKeyset(ctx context.Context, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.BookingListItem, error) {
	params := sqlc.GetBookingsKeysetParams{
		CreatedAt: pgconv.TimeToPgtype(lastCreatedAt),
		ID:        lastID,
		Limit:     limit,
	}

	rows, err := r.queries.GetBookingsKeyset(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find bookings keyset", err)
	}

	result := make([]*queries.BookingListItem, len(rows))
	for i, row := range rows {
		result[i] = toBookingListItemFromKeysetRow(row)
	}
	return result, nil
}

func toBookingListItemFromFirstPageRow(row sqlc.GetBookingsFirstPageRow) *queries.BookingListItem {
	return &queries.BookingListItem{
		ID:            row.ID,
		ActivityID:    row.ActivityID,
		ActivityName:  row.ActivityName,
		CustomerID:    row.CustomerID,
		CustomerEmail: row.CustomerEmail,
		StartsAt:      pgconv.TimeFromPgtype(row.StartsAt),
		Participants:  row.Participants,
		TotalPrice:    row.TotalPrice,
		Currency:      row.Currency,
		Status:        row.Status,
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
	}
}

func toBookingListItemFromKeysetRow(row sqlc.GetBookingsKeysetRow) *queries.BookingListItem {
	return &queries.BookingListItem{
		ID:            row.ID,
		ActivityID:    row.ActivityID,
		ActivityName:  row.ActivityName,
		CustomerID:    row.CustomerID,
		CustomerEmail: row.CustomerEmail,
		StartsAt:      pgconv.TimeFromPgtype(row.StartsAt),
		Participants:  row.Participants,
		TotalPrice:    row.TotalPrice,
		Currency:      row.Currency,
		Status:        row.Status,
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
