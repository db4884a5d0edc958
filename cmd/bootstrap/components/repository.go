package components

import (
	"parkspot/internal/infra/repository"
	"parkspot/internal/usecase"
	"parkspot/internal/usecase/commands"
	"parkspot/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		// Write-side repositories
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(usecase.UserRepository)),
		),
		fx.Annotate(
			repository.NewSpotRepository,
			fx.As(new(commands.SpotRepository)),
		),
		fx.Annotate(
			repository.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
		),
		fx.Annotate(
			repository.NewPostingRepository,
			fx.As(new(commands.PostingRepository)),
		),
		// Read-side repositories
		fx.Annotate(
			repository.NewSpotViewRepository,
			fx.As(new(queries.SpotViewRepo)),
		),
		fx.Annotate(
			repository.NewBookingViewRepository,
			fx.As(new(queries.BookingViewRepo)),
			fx.As(new(queries.AvailabilitySpanRepo)),
		),
		fx.Annotate(
			repository.NewPostingViewRepository,
			fx.As(new(queries.PostingViewRepo)),
		),
	),
)
