package components

import (
	"tourbook/internal/infra/readstore"
	"tourbook/internal/infra/repository"
	sqlc "tourbook/internal/infra/sqlc/generated"
	"tourbook/internal/pkg/config"
	"tourbook/internal/usecase/commands"
	"tourbook/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewActivityReadStore,
			fx.As(new(queries.ActivityReadStore)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		fx.Annotate(
			repository.NewActivityRepository,
			fx.As(new(commands.ActivityRepository)),
		),
		fx.Annotate(
			repository.NewCustomerRepository,
			fx.As(new(commands.CustomerRepository)),
		),
		fx.Annotate(
			repository.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
		),
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(commands.UserRepository)),
		),
		NewSensitiveRecordRepository,
	),
)

// NewSensitiveRecordRepository picks the real store or a no-op at startup,
// so the booking workflow never probes configuration per request.
func NewSensitiveRecordRepository(cfg config.Config, q *sqlc.Queries, db sqlc.DBTX) commands.SensitiveRecordRepository {
	if cfg.Booking.SensitiveCaptureEnabled {
		return repository.NewSensitiveRecordRepository(q, db)
	}
	return repository.NewNoopSensitiveRecordRepository()
}

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
