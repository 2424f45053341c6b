package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/usermgmt/user-service/docs"
	"github.com/usermgmt/user-service/internal/api/handler"
	"github.com/usermgmt/user-service/internal/api/middleware"
	"github.com/usermgmt/user-service/internal/core/auth"
	"github.com/usermgmt/user-service/internal/core/ports"
)

// Dependencies carries everything the router wires together. Services and
// the authenticator are interfaces/values so tests can supply in-memory
// implementations.
type Dependencies struct {
	AuthService   ports.AuthService
	UserService   ports.UserService
	Authenticator *auth.Authenticator
	Mongo         *mongo.Database
	Redis         *redis.Client
	Logger        zerolog.Logger
	// Metrics is the Prometheus registry HTTP metrics register with.
	// Defaults to a fresh registry when nil; production passes the one
	// behind prometheus.DefaultRegisterer.
	Metrics *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	registry := deps.Metrics
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "userapi",
		Registerer: registry,
	}))

	authHandler := handler.NewAuthHandler(deps.AuthService)
	userHandler := handler.NewUserHandler(deps.UserService)
	authMiddleware := middleware.Auth(deps.Authenticator)

	// --- Auth routes ---
	e.POST("/login", authHandler.Login)
	e.GET("/login/protected", authHandler.Protected, authMiddleware)

	// --- User routes (all authenticated) ---
	users := e.Group("/users", authMiddleware)
	users.GET("", userHandler.List)
	users.GET("/search", userHandler.Search)
	users.GET("/:id", userHandler.Get)
	users.POST("", userHandler.Create, middleware.AdminOnly())
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	e.GET("/health", healthHandler.Liveness) // liveness – is the process alive?
	if deps.Mongo != nil && deps.Redis != nil {
		readinessHandler := handler.NewReadinessHandler(deps.Mongo, deps.Redis)
		e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	}

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: registry,
	}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
