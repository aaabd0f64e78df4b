package bootstrap

import (
	"context"
	"fmt"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/locvowork/employee_registry/internal/config"
	"github.com/locvowork/employee_registry/internal/handler"
	"github.com/locvowork/employee_registry/internal/logger"
	"github.com/locvowork/employee_registry/internal/repository"
	"github.com/locvowork/employee_registry/internal/seed"
	"github.com/locvowork/employee_registry/internal/service"
)

type App struct {
	Echo    *echo.Echo
	Service *service.EmployeeService
}

func NewApp() *App {
	e := echo.New()
	e.HideBanner = true
	return &App{
		Echo:    e,
		Service: service.NewEmployeeService(repository.NewEmployeeRepository()),
	}
}

// Initialize loads configuration, sets up logging, seeds the registry
// from seedFile (or SEED_FILE when seedFile is empty) and registers the
// HTTP routes.
func (a *App) Initialize(ctx context.Context, seedFile string) error {
	if err := config.LoadEnvConfig(); err != nil {
		return fmt.Errorf("failed to load env config: %w", err)
	}

	logger.InitLogging(config.DefaultEnvConfig.LOG_FILE_PATH, config.DefaultEnvConfig.LOG_LEVEL)
	logger.InfoLog(ctx, "Environment variables loaded successfully")

	if seedFile == "" {
		seedFile = config.DefaultEnvConfig.SEED_FILE
	}
	if seedFile != "" {
		if err := a.Seed(ctx, seedFile); err != nil {
			return err
		}
	}

	empHandler := handler.NewEmployeeHandler(a.Service, config.DefaultEnvConfig.RECENT_COUNT)
	a.RegisterMiddlewares()
	a.RegisterRoutes(empHandler)
	return nil
}

// Seed imports the roster stored in a YAML file.
func (a *App) Seed(ctx context.Context, path string) error {
	roster, err := seed.LoadRoster(path)
	if err != nil {
		return err
	}
	if _, err := a.Service.Import(ctx, roster.Employees); err != nil {
		return fmt.Errorf("failed to seed from %s: %w", path, err)
	}
	logger.InfoLog(ctx, "Seeded %d employees from %s", len(roster.Employees), path)
	return nil
}

func (a *App) RegisterMiddlewares() {
	a.Echo.Use(middleware.Logger())
	a.Echo.Use(middleware.Recover())
}

func (a *App) RegisterRoutes(empHandler *handler.EmployeeHandler) {
	a.Echo.POST("/employees", empHandler.CreateHandler)
	a.Echo.GET("/employees", empHandler.ListHandler)
	a.Echo.GET("/employees/recent", empHandler.RecentHandler)
	a.Echo.GET("/employees/:id", empHandler.GetHandler)
	a.Echo.DELETE("/employees/:id", empHandler.DeleteHandler)
	a.Echo.GET("/payroll", empHandler.PayrollHandler)
	a.Echo.GET("/export", empHandler.ExportHandler)
}

func (a *App) Run() error {
	return a.Echo.Start(":" + config.DefaultEnvConfig.APP_PORT)
}
