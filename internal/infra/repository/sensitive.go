package repository

import (
	"context"

	"tourbook/internal/infra"
	sqlc "tourbook/internal/infra/sqlc/generated"
	"tourbook/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type SensitiveWriteQueries interface {
	CreateBookingSensitive(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingSensitiveParams) error
}

// SensitiveRecordRepository stores raw billing payloads keyed one-to-one by
// booking id. The write sits outside the booking transaction on purpose: a
// failed capture must never roll back a committed booking.
type SensitiveRecordRepository struct {
	queries SensitiveWriteQueries
	db      sqlc.DBTX
}

func NewSensitiveRecordRepository(queries *sqlc.Queries, db sqlc.DBTX) *SensitiveRecordRepository {
	return &SensitiveRecordRepository{
		queries: queries,
		db:      db,
	}
}

func (r *SensitiveRecordRepository) Enabled() bool {
	return true
}

func (r *SensitiveRecordRepository) Save(ctx context.Context, bookingID uuid.UUID, payload []byte, notes *string) error {
	err := r.queries.CreateBookingSensitive(ctx, r.db, sqlc.CreateBookingSensitiveParams{
		BookingID: bookingID,
		Payload:   payload,
		Notes:     pgconv.StringPtrToPgtype(notes),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to save sensitive record", err)
	}
	return nil
}

// NoopSensitiveRecordRepository is injected when capture is disabled by
// configuration. Callers see Enabled() == false and skip the write entirely.
type NoopSensitiveRecordRepository struct{}

func NewNoopSensitiveRecordRepository() *NoopSensitiveRecordRepository {
	return &NoopSensitiveRecordRepository{}
}

func (r *NoopSensitiveRecordRepository) Enabled() bool {
	return false
}

func (r *NoopSensitiveRecordRepository) Save(_ context.Context, _ uuid.UUID, _ []byte, _ *string) error {
	return nil
}
