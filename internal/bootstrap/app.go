package bootstrap

import (
	"context"
	"fmt"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/peopleops/employee-registry/internal/config"
	"github.com/peopleops/employee-registry/internal/database"
	"github.com/peopleops/employee-registry/internal/handler"
	"github.com/peopleops/employee-registry/internal/logger"
	"github.com/peopleops/employee-registry/internal/metrics"
	"github.com/peopleops/employee-registry/internal/repository"
	"github.com/peopleops/employee-registry/internal/search"
	"github.com/peopleops/employee-registry/internal/service"
	"github.com/peopleops/employee-registry/internal/validation"
)

// App wires the process: one config object, one store handle, one echo
// instance, all constructed here and passed down explicitly.
type App struct {
	Echo   *echo.Echo
	Store  *database.Store
	Search *search.Client
	Config *config.Config
}

func NewApp() *App {
	return &App{
		Echo: echo.New(),
	}
}

func (a *App) Initialize(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load env config: %w", err)
	}
	a.Config = cfg

	logger.Init(cfg.Debug, cfg.LogFilePath)
	logger.InfoLog(ctx, "Starting %s v%s", cfg.AppName, cfg.AppVersion)

	a.Store = database.NewStore(cfg.DatastoreProjectID, cfg.DatastoreDatabaseID, cfg.DatastoreKind)
	if err := a.Store.Connect(ctx); err != nil {
		return fmt.Errorf("failed to initialize datastore: %w", err)
	}

	if cfg.SearchEnabled {
		searchClient, err := search.NewClient(cfg.ElasticsearchURL)
		if err != nil {
			return fmt.Errorf("failed to initialize search: %w", err)
		}
		a.Search = searchClient
		logger.InfoLog(ctx, "Search index enabled at %s", cfg.ElasticsearchURL)
	}

	// Initialize dependencies
	empRepo := repository.NewEmployeeRepository(a.Store)
	empSvc := service.NewEmployeeService(empRepo, a.Search)
	empHandler := handler.NewEmployeeHandler(empSvc, validation.New())
	healthHandler := handler.NewHealthHandler(a.Store, cfg.AppName, cfg.AppVersion)

	a.RegisterMiddlewares(metrics.NewMetrics(prometheus.DefaultRegisterer))
	a.RegisterRoutes(empHandler, healthHandler)

	return nil
}

func (a *App) RegisterMiddlewares(m *metrics.Metrics) {
	a.Echo.Use(middleware.Logger())
	a.Echo.Use(middleware.Recover())
	a.Echo.Use(middleware.CORS())
	a.Echo.Use(m.Middleware())
}

func (a *App) RegisterRoutes(empHandler *handler.EmployeeHandler, healthHandler *handler.HealthHandler) {
	a.Echo.POST("/employees", empHandler.CreateHandler)
	a.Echo.GET("/employees", empHandler.ListHandler)
	a.Echo.GET("/employees/meta/departments", empHandler.DepartmentsHandler)
	a.Echo.GET("/employees/export", empHandler.ExportHandler)
	if a.Config.SearchEnabled {
		a.Echo.GET("/employees/search", empHandler.SearchHandler)
	}
	a.Echo.GET("/employees/:employee_id", empHandler.GetHandler)
	a.Echo.PATCH("/employees/:employee_id", empHandler.UpdateHandler)
	a.Echo.DELETE("/employees/:employee_id", empHandler.DeleteHandler)

	a.Echo.GET("/", healthHandler.RootHandler)
	a.Echo.GET("/health", healthHandler.HealthHandler)
	a.Echo.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}

func (a *App) Run() error {
	return a.Echo.Start(":" + a.Config.AppPort)
}

// Shutdown stops the HTTP server, then releases the store handle.
func (a *App) Shutdown(ctx context.Context) error {
	if err := a.Echo.Shutdown(ctx); err != nil {
		return err
	}
	return a.Store.Disconnect()
}
