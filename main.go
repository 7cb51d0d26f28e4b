package main

import (
	"embed"
	"io/fs"
	"os"

	"github.com/wailsapp/wails/v2"

	"github.com/wuuJiawei/snail-todolist/internal/app"
	"github.com/wuuJiawei/snail-todolist/internal/config"
	"github.com/wuuJiawei/snail-todolist/internal/logging"
)

//go:embed all:frontend/dist
var assets embed.FS

func main() {
	if err := run(); err != nil {
		println("Error:", err.Error())
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// the log facility has to exist before the window is described
	log, err := logging.New(logging.Debug, cfg.LogFile)
	if err != nil {
		return err
	}

	dist, err := fs.Sub(assets, "frontend/dist")
	if err != nil {
		return err
	}

	a := app.NewApp(cfg, log)
	return wails.Run(app.Options(a, dist))
}
