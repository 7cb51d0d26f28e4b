package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/wuuJiawei/snail-todolist/internal/config"
	"github.com/wuuJiawei/snail-todolist/internal/logging"
	"go.uber.org/zap"
)

// App struct
type App struct {
	ctx context.Context

	Config *config.Config
	Log    *logging.Logger
	Main   *Window

	rt        Runtime
	stopReady func()
}

// NewApp creates a new App application struct
func NewApp(cfg *config.Config, log *logging.Logger) *App {
	return newApp(cfg, log, wailsRuntime{})
}

func newApp(cfg *config.Config, log *logging.Logger, rt Runtime) *App {
	if log == nil {
		log = logging.Nop()
	}
	return &App{
		Config: cfg,
		Log:    log,
		Main:   newWindow(MainWindowName, MainDocument, rt),
		rt:     rt,
	}
}

// Startup is called at application startup
func (a *App) Startup(ctx context.Context) {
	a.ctx = ctx
	a.Main.attach(ctx)
	a.Log.Zap().Info("window created",
		zap.String("window", a.Main.Name),
		zap.String("document", a.Main.Document),
		zap.Bool("visible", false))
}

// DomReady subscribes to the ready signal of the document. It runs again on every reload.
func (a *App) DomReady(ctx context.Context) {
	if a.stopReady != nil {
		a.stopReady()
	}
	a.stopReady = a.rt.EventsOn(ctx, ReadyEvent, func(optionalData ...interface{}) {
		if err := a.Main.Show(); err != nil {
			a.Log.Zap().Warn("ready signal without window", zap.Error(err))
			return
		}
		a.Log.Info("document ready, main window shown")
	})
}

// Shutdown is called at application termination
func (a *App) Shutdown(ctx context.Context) {
	if a.stopReady != nil {
		a.stopReady()
		a.stopReady = nil
	}
	a.Main.detach()
	_ = a.Log.Sync()
}

// ShowMainWindow makes the main window visible. Exposed to the frontend.
func (a *App) ShowMainWindow() error {
	if err := a.Main.Show(); err != nil {
		return fmt.Errorf("failed to show %s window: %w", a.Main.Name, err)
	}
	a.Log.Info("main window shown")
	return nil
}

// GetVersion returns the application version
func (a *App) GetVersion() string {
	return Version
}

// HealthCheck checks whether the API server responds to /health
func (a *App) HealthCheck(timeoutSeconds int) (string, error) {
	if timeoutSeconds <= 0 {
		timeoutSeconds = 5
	}
	client := http.Client{Timeout: time.Duration(timeoutSeconds) * time.Second}
	req, err := http.NewRequest("GET", fmt.Sprintf("%s/health", a.Config.APIBaseURL), nil)
	if err != nil {
		return "not-found", err
	}

	resp, err := client.Do(req)
	if err != nil {
		return "not-found", err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusOK {
		return "ok", nil
	}
	return "not-ok", nil
}
