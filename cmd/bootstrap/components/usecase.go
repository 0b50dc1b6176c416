package components

import (
	"coworking-reservations/internal/domain/pricing"
	"coworking-reservations/internal/domain/reservation"
	"coworking-reservations/internal/pkg/clock"
	"coworking-reservations/internal/pkg/config"
	"coworking-reservations/internal/usecase"
	"coworking-reservations/internal/usecase/commands"
	"coworking-reservations/internal/usecase/queries"

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
		pricing.NewComposer,
		fx.As(new(pricing.Calculator)),
	),
	reservation.NewFactory,
	func(cfg config.Config) commands.DepositPolicy {
		return commands.DepositPolicy{Amount: cfg.Deposit.Amount}
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewReservationCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewRateCardResolver,
		queries.NewPricingQueries,
		func(repo queries.ReservationViewRepo, cfg config.Config) queries.ReservationQueries {
			return queries.NewReservationQueries(repo, cfg.Booking.TriagePastWindow)
		},
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
