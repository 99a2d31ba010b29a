package api

import (
	"database/sql"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/authbase/person-api/internal/api/handler"
	"github.com/authbase/person-api/internal/api/middleware"
	"github.com/authbase/person-api/internal/core/ports"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(
	db *sql.DB,
	rdb *redis.Client,
	personService ports.PersonService,
	verifier ports.TokenVerifier,
	log zerolog.Logger,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("person_api"))

	// --- Handlers ---
	personHandler := handler.NewPersonHandler(personService)
	loginHandler := handler.NewLoginHandler(personService)
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	// --- Public routes ---
	e.POST("/person/sign-up", personHandler.SignUp)
	e.POST("/login", loginHandler.Login)

	// --- Infra routes (no auth required) ---
	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Token-gated person routes ---
	person := e.Group("/person", middleware.Auth(verifier))
	person.GET("/", personHandler.List)
	person.GET("/:id", personHandler.Get)
	person.POST("/", personHandler.Create)
	person.PUT("/", personHandler.Update)
	person.PATCH("/", personHandler.UpdatePassword)
	person.DELETE("/:id", personHandler.Delete)

	return e
}
