package components

import (
	"tourbook/internal/domain/booking"
	"tourbook/internal/pkg/clock"
	"tourbook/internal/pkg/config"
	"tourbook/internal/usecase"
	"tourbook/internal/usecase/commands"
	"tourbook/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		booking.NewPerPersonPriceCalculator,
		fx.As(new(booking.PriceCalculator)),
	),
	func(clk clock.Clock, calc booking.PriceCalculator) *booking.Services {
		return &booking.Services{
			Clock:           clk,
			PriceCalculator: calc,
		}
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewActivityCommands,
		NewBookingCommands,
	),
)

func NewBookingCommands(
	cfg config.Config,
	bookingRepo commands.BookingRepository,
	activityRepo commands.ActivityRepository,
	customerRepo commands.CustomerRepository,
	sensitiveRepo commands.SensitiveRecordRepository,
	services *booking.Services,
) commands.BookingCommands {
	return commands.NewBookingCommands(
		bookingRepo, activityRepo, customerRepo, sensitiveRepo,
		services, cfg.Booking.DefaultCurrency,
	)
}

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewActivityQueries,
		queries.NewBookingQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
