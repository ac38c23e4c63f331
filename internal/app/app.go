package app

import (
	"lighthouse/config"
	"lighthouse/internal/controllers"
	"lighthouse/internal/database"
	"lighthouse/internal/handlers/middleware"
	"lighthouse/internal/repositories"
	"lighthouse/internal/services"

	logger "github.com/Bparsons0904/goLogger"
)

type App struct {
	Database    database.DB
	Middleware  middleware.Middleware
	Config      config.Config
	Repos       repositories.Repository
	Services    services.Service
	Controllers controllers.Controllers
}

func New() (*App, error) {
	log := logger.New("app").Function("New")

	config, err := config.New()
	if err != nil {
		return &App{}, log.Err("failed to initialize config", err)
	}

	db, err := database.New(config)
	if err != nil {
		return &App{}, log.Err("failed to create database", err)
	}

	return NewWithDatabase(config, db)
}

// NewWithDatabase wires the application around an open database.
func NewWithDatabase(config config.Config, db database.DB) (*App, error) {
	log := logger.New("app").Function("NewWithDatabase")

	repos := repositories.New(db)
	services := services.New(db, repos)

	app := &App{
		Database:    db,
		Middleware:  middleware.New(config),
		Config:      config,
		Repos:       repos,
		Services:    services,
		Controllers: controllers.New(services, repos, config),
	}

	if err := app.validate(); err != nil {
		return &App{}, log.Err("failed to validate app", err)
	}

	return app, nil
}

func (a *App) validate() error {
	log := logger.New("app").Function("validate")

	if a.Database.SQL == nil {
		return log.ErrMsg("database is nil")
	}

	if a.Config == (config.Config{}) {
		return log.ErrMsg("config is nil")
	}

	nilChecks := []any{
		a.Repos.Slot,
		a.Repos.Heart,
		a.Repos.Rating,
		a.Services.Transaction,
		a.Services.SlotStatistics,
		a.Controllers.Slot,
	}

	for _, check := range nilChecks {
		if check == nil {
			return log.ErrMsg("nil check failed")
		}
	}

	return nil
}

func (a *App) Close() error {
	return a.Database.Close()
}
