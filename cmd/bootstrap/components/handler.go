package components

import (
	"parkspot/internal/handler"
	"parkspot/internal/handler/api"
	"parkspot/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewSpotHandler,
		api.NewBookingHandler,
		api.NewPostingHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
