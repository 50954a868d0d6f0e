package main

import (
	"fmt"
	"log"
	"runtime"

	"mymdb/internal/config"
	"mymdb/internal/controllers"
	"mymdb/internal/logger"
	"mymdb/internal/models"
	"mymdb/internal/shutdown"
	"mymdb/internal/store"
	"mymdb/internal/views"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

const (
	AppName      = "My Movie Database [MYMDb]"
	AppID        = "com.example.mymdb"
	AppVersion   = "1.0.0"
	WindowWidth  = 300
	WindowHeight = 250
)

// Application wires the store, controller and view together.
type Application struct {
	fyneApp fyne.App
	window  fyne.Window
	logger  logger.Logger

	store      *store.Store
	controller *controllers.FormController
	view       *views.FormView

	shutdown *shutdown.Manager
}

func main() {
	cfg := config.Load()

	application, err := NewApplication(cfg)
	if err != nil {
		log.Fatalf("Application initialization failed: %v", err)
	}

	if err := application.Run(); err != nil {
		log.Fatalf("Application execution failed: %v", err)
	}
}

// NewApplication opens the store and builds the window. The store is owned by
// the shutdown manager from here on.
func NewApplication(cfg config.Config) (*Application, error) {
	appLogger := cfg.NewLogger()

	appLogger.Info("Application", "starting application", map[string]interface{}{
		"version":    AppVersion,
		"db_path":    cfg.DBPath,
		"go_version": runtime.Version(),
		"log_level":  cfg.LogLevel.String(),
	})

	movieStore, err := store.Open(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.DBPath, err)
	}

	shutdownManager := shutdown.NewManager(appLogger)
	shutdownManager.Register("store", movieStore)

	if cfg.Seed {
		n, err := movieStore.Seed(shutdownManager.Context(), store.DefaultSeed)
		if err != nil {
			shutdownManager.Shutdown()
			return nil, fmt.Errorf("seed: %w", err)
		}
		appLogger.Info("Application", "seed applied", map[string]interface{}{
			"inserted": n,
		})
	}

	fyneApp := app.NewWithID(AppID)

	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(WindowWidth, WindowHeight))
	window.SetFixedSize(true)
	window.CenterOnScreen()
	window.SetMaster()

	view := views.NewFormView(window)
	controller := controllers.NewFormController(movieStore, models.NewCursor(), appLogger)
	controller.SetView(view)

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		logger:     appLogger,
		store:      movieStore,
		controller: controller,
		view:       view,
		shutdown:   shutdownManager,
	}

	application.setupWindowEvents()

	return application, nil
}

// Run shows the form and blocks until the window is closed.
func (a *Application) Run() error {
	defer a.shutdown.Shutdown()

	ctx := a.shutdown.Context()

	count, err := a.store.Count(ctx)
	if err != nil {
		return err
	}
	a.logger.Info("Application", "database opened", map[string]interface{}{
		"movies": count,
	})

	if err := a.controller.Start(ctx); err != nil {
		return err
	}

	a.shutdown.Listen(func() {
		fyne.Do(a.window.Close)
	})

	a.view.Show()
	a.fyneApp.Run()

	a.logger.Info("Application", "application terminated", nil)
	return nil
}

func (a *Application) setupWindowEvents() {
	a.window.SetOnClosed(func() {
		a.logger.Info("Application", "window closed, releasing store", nil)
		a.shutdown.Shutdown()
	})
}
