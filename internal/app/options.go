package app

import (
	"io/fs"

	"github.com/wailsapp/wails/v2/pkg/logger"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"

	"github.com/wuuJiawei/snail-todolist/internal/initscript"
)

// Options describes the main window. It starts hidden; the injected script or the
// ready event reveals it once the document has rendered.
// The log facility is handed to the runtime only when it is attached.
func Options(a *App, assets fs.FS) *options.App {
	opts := &options.App{
		Title:       a.Config.Title,
		Width:       a.Config.Width,
		Height:      a.Config.Height,
		StartHidden: true,
		AssetServer: &assetserver.Options{
			Assets:     assets,
			Middleware: initscript.Middleware(),
		},
		BackgroundColour: &options.RGBA{R: 255, G: 255, B: 255, A: 1},
		OnStartup:        a.Startup,
		OnDomReady:       a.DomReady,
		OnShutdown:       a.Shutdown,
		Bind: []interface{}{
			a,
		},
	}

	if a.Log.Attached() {
		opts.Logger = a.Log
		opts.LogLevel = logger.INFO
		opts.LogLevelProduction = logger.INFO
	}
	return opts
}
