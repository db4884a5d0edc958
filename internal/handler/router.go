package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"parkspot/internal/handler/api"
	"parkspot/internal/handler/middleware"
	"parkspot/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	spotHandler *api.SpotHandler,
	bookingHandler *api.BookingHandler,
	postingHandler *api.PostingHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, spotHandler, bookingHandler, postingHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	spotHandler *api.SpotHandler,
	bookingHandler *api.BookingHandler,
	postingHandler *api.PostingHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: authHandler.Register},
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		users := apiGroup.Group("/users")
		{
			addRoutes(users, []route{
				{Method: http.MethodGet, Path: "/:id", Handler: authHandler.GetUser},
			})
		}

		spots := apiGroup.Group("/spots")
		{
			addRoutes(spots, []route{
				{Method: http.MethodGet, Path: "", Handler: spotHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: spotHandler.Get},
				{Method: http.MethodGet, Path: "/:id/operating-hours", Handler: spotHandler.GetOperatingHours},
				{Method: http.MethodGet, Path: "/:id/availability", Handler: spotHandler.Availability},
			})

			spotsRequired := spots.Group("")
			spotsRequired.Use(authMiddleware.RequireAuth())
			addRoutes(spotsRequired, []route{
				{Method: http.MethodPost, Path: "", Handler: spotHandler.Create},
				{Method: http.MethodPut, Path: "/:id/operating-hours", Handler: spotHandler.SetOperatingHours},
				{Method: http.MethodDelete, Path: "/:id", Handler: spotHandler.Deactivate},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: bookingHandler.Create},
				{Method: http.MethodGet, Path: "", Handler: bookingHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: bookingHandler.Get},
				{Method: http.MethodDelete, Path: "/:id", Handler: bookingHandler.Cancel},
			})
		}

		postings := apiGroup.Group("/postings")
		{
			addRoutes(postings, []route{
				{Method: http.MethodGet, Path: "", Handler: postingHandler.List},
			})

			postingsRequired := postings.Group("")
			postingsRequired.Use(authMiddleware.RequireAuth())
			addRoutes(postingsRequired, []route{
				{Method: http.MethodPost, Path: "", Handler: postingHandler.Create},
				{Method: http.MethodPost, Path: "/:id/reserve", Handler: postingHandler.Reserve},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
