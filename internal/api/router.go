package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/inkwell/blog-backend/internal/api/graphql"
	"github.com/inkwell/blog-backend/internal/api/handler"
	"github.com/inkwell/blog-backend/internal/api/session"
	"github.com/inkwell/blog-backend/internal/core/ports"
)

// Deps carries the explicitly constructed collaborators for the router.
// Nothing here is ambient; main builds everything once and hands it over.
type Deps struct {
	Users        ports.UserService
	Posts        ports.PostService
	Sessions     ports.SessionStore
	SessionCfg   session.Config
	AllowOrigins []string
	Mongo        *mongo.Database
	Redis        *redis.Client
	Logger       zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("blog"))
	if len(d.AllowOrigins) > 0 {
		e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
			AllowOrigins:     d.AllowOrigins,
			AllowCredentials: true,
		}))
	}

	// --- GraphQL API (session-aware) ---
	resolver := graphql.NewResolver(d.Users, d.Posts, d.Logger)
	gqlHandler := handler.NewGraphQLHandler(graphql.NewSchema(resolver))
	e.POST("/graphql", gqlHandler.Query, session.Middleware(d.Sessions, d.SessionCfg))

	// --- Observability ---
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(d.Mongo, d.Redis)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	return e
}
