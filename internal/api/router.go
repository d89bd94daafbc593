package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/staffdesk/employee-api/docs"
	"github.com/staffdesk/employee-api/internal/api/handler"
	"github.com/staffdesk/employee-api/internal/api/middleware"
	"github.com/staffdesk/employee-api/internal/core/domain"
	"github.com/staffdesk/employee-api/internal/core/ports"
	"github.com/staffdesk/employee-api/internal/infrastructure/http/handlers"
)

// Dependencies carries everything the router needs. Mongo and Redis may be
// nil when the memory storage driver is active; the readiness probe then
// skips them.
type Dependencies struct {
	AuthService     ports.AuthService
	Guard           ports.Guard
	EmployeeService ports.EmployeeService
	StrictLogin     bool
	Mongo           *mongo.Database
	Redis           *redis.Client
	Log             zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("employee_api"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.AuthService, deps.StrictLogin)
	employeeHandler := handler.NewEmployeeHandler(deps.EmployeeService)

	// --- Auth routes ---
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)
	e.POST("/logout", authHandler.Logout)

	// --- Employee routes, each gated by the capability it requires ---
	e.POST("/employees", employeeHandler.Create,
		middleware.Authorize(deps.Guard, domain.CapEmployeeCreate))
	e.PUT("/employees", employeeHandler.Update,
		middleware.Authorize(deps.Guard, domain.CapEmployeeUpdate))
	e.GET("/employees", employeeHandler.List,
		middleware.Authorize(deps.Guard, domain.CapEmployeeRead))
	e.GET("/employees/:id", employeeHandler.Get,
		middleware.Authorize(deps.Guard, domain.CapEmployeeRead))
	e.DELETE("/employees/:id", employeeHandler.Delete,
		middleware.Authorize(deps.Guard, domain.CapEmployeeDelete))

	// --- Observability & docs (no auth required) ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	return e
}
