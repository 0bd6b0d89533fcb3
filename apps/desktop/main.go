package main

import (
	"embed"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/options/linux"
	"github.com/wailsapp/wails/v2/pkg/options/windows"

	"github.com/aiolauncher/aio-desktop/pkg/logging"
	"github.com/aiolauncher/aio-desktop/pkg/version"
)

//go:embed all:frontend/dist
var assets embed.FS

//go:embed appicon.png
var appIcon []byte

func main() {
	showVersion := flag.Bool("version", false, "Show version information and exit")
	noTray := flag.Bool("no-tray", false, "Disable system tray icon")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.Full())
		os.Exit(0)
	}

	logPath := logging.Setup(*debug)
	log.Info().Str("version", version.Version).Str("log", logPath).Msg("starting AIO desktop")

	app := NewApp()
	app.noTray = *noTray

	err := wails.Run(&options.App{
		Title:     "AIO",
		Width:     1280,
		Height:    800,
		MinWidth:  900,
		MinHeight: 600,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		BackgroundColour: &options.RGBA{R: 18, G: 18, B: 24, A: 1},
		OnStartup:        app.startup,
		OnShutdown:       app.shutdown,
		Bind: []interface{}{
			app,
		},
		SingleInstanceLock: &options.SingleInstanceLock{
			UniqueId:               "c1a7e2f0-aio-desktop-shell",
			OnSecondInstanceLaunch: app.onSecondInstance,
		},
		Windows: &windows.Options{
			WebviewIsTransparent: false,
			WindowIsTranslucent:  false,
			DisableWindowIcon:    false,
		},
		Linux: &linux.Options{
			WindowIsTranslucent: false,
			Icon:                appIcon,
		},
	})

	if err != nil {
		log.Fatal().Err(err).Msg("wails run failed")
	}
}
