package components

import (
	"parkspot/internal/usecase"
	"parkspot/internal/usecase/commands"
	"parkspot/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		usecase.NewAuthUseCase,
		commands.NewSpotUseCase,
		commands.NewBookingUseCase,
		commands.NewPostingUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewSpotQueries,
		queries.NewBookingQueries,
		queries.NewPostingQueries,
		queries.NewAvailabilityQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
