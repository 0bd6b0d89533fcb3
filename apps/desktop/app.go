package main

import (
	"context"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/wailsapp/wails/v2/pkg/options"
	wailsruntime "github.com/wailsapp/wails/v2/pkg/runtime"

	"github.com/aiolauncher/aio-desktop/pkg/aioapi"
	"github.com/aiolauncher/aio-desktop/pkg/command"
	"github.com/aiolauncher/aio-desktop/pkg/config"
	"github.com/aiolauncher/aio-desktop/pkg/deeplink"
	"github.com/aiolauncher/aio-desktop/pkg/discovery"
	"github.com/aiolauncher/aio-desktop/pkg/launcher"
	"github.com/aiolauncher/aio-desktop/pkg/tray"
	"github.com/aiolauncher/aio-desktop/pkg/urlscheme"
	"github.com/aiolauncher/aio-desktop/pkg/version"
)

// App struct holds the application state
type App struct {
	ctx    context.Context
	ctxMu  sync.RWMutex
	cancel context.CancelFunc

	configMgr *config.Manager
	launcher  *launcher.Launcher
	guard     *deeplink.Guard

	api   *aioapi.Client
	apiMu sync.RWMutex

	// System tray
	noTray bool
	tray   *tray.Tray
	trayMu sync.Mutex
}

// Settings represents the user-facing settings for the UI
type Settings struct {
	BackendURL  string `json:"backendUrl"`
	CloseToTray bool   `json:"closeToTray"`
	Debug       bool   `json:"debug"`
	DeviceID    string `json:"deviceId"`
}

// NewApp creates a new App application struct. The deep-link guard is
// wired here, not in startup: the second-instance callback can fire as
// soon as wails.Run begins, and the bridges already drop events while the
// window context is still nil.
func NewApp() *App {
	a := &App{}
	a.guard = deeplink.NewGuard(&wailsEvents{app: a}, &wailsWindow{app: a})
	return a
}

// startup is called when the app starts. The context is saved
// so we can call the runtime methods
func (a *App) startup(ctx context.Context) {
	appCtx, cancel := context.WithCancel(ctx)
	a.ctxMu.Lock()
	a.ctx = appCtx
	a.ctxMu.Unlock()
	a.cancel = cancel

	cfgMgr, err := config.NewManager()
	if err != nil {
		log.Error().Err(err).Msg("failed to load configuration, using defaults")
		cfgMgr = config.NewTransientManager()
	}
	a.configMgr = cfgMgr

	exec := &command.RealExecutor{}
	a.launcher = launcher.New(launcher.SystemFor(runtime.GOOS, exec))
	a.setClient(aioapi.NewClient(cfgMgr.GetBackendURL(), cfgMgr.GetAPIToken()))

	if err := urlscheme.Register(appCtx, exec); err != nil {
		log.Warn().Err(err).Msg("could not register aio:// URL scheme")
	}

	a.guard.HandleStartup(os.Args[1:])

	if !a.noTray {
		a.startTray()
	}
}

// shutdown is called when the app is closing
func (a *App) shutdown(ctx context.Context) {
	a.trayMu.Lock()
	if a.tray != nil {
		a.tray.Quit()
	}
	a.trayMu.Unlock()

	if a.cancel != nil {
		a.cancel()
	}
	log.Info().Msg("AIO desktop shutting down")
}

// onSecondInstance handles launch attempts while this instance is running
func (a *App) onSecondInstance(data options.SecondInstanceData) {
	log.Info().Strs("args", data.Args).Msg("second instance launch detected")
	a.guard.HandleSecondInstance(data.Args)
}

func (a *App) startTray() {
	a.trayMu.Lock()
	defer a.trayMu.Unlock()

	a.tray = tray.New(tray.Config{
		Icon:   appIcon,
		OnShow: a.ShowWindow,
		OnQuit: func() {
			a.ctxMu.RLock()
			ctx := a.ctx
			a.ctxMu.RUnlock()
			if ctx != nil {
				wailsruntime.Quit(ctx)
			}
		},
	})
	go a.tray.Run()
	go a.watchBackend()
}

// watchBackend polls backend health to keep the tray status current.
func (a *App) watchBackend() {
	ctx := a.appCtx()

	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		status := tray.Status{}
		if err := a.client().Health(ctx); err == nil {
			status.BackendOnline = true
			if games, err := a.client().Library(ctx); err == nil {
				status.LibraryCount = len(games)
			}
		}

		a.trayMu.Lock()
		if a.tray != nil {
			a.tray.UpdateStatus(status)
		}
		a.trayMu.Unlock()

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// client returns the current backend API client.
func (a *App) client() *aioapi.Client {
	a.apiMu.RLock()
	defer a.apiMu.RUnlock()
	return a.api
}

func (a *App) setClient(c *aioapi.Client) {
	a.apiMu.Lock()
	a.api = c
	a.apiMu.Unlock()
}

// appCtx returns the Wails context, or a background context before startup.
func (a *App) appCtx() context.Context {
	a.ctxMu.RLock()
	defer a.ctxMu.RUnlock()
	if a.ctx == nil {
		return context.Background()
	}
	return a.ctx
}

// ==================== Launching ====================

// LaunchGame starts a game through its store client. The platform is the
// store tag (steam, epic, gog), id the store's game identifier and appName
// an optional human readable name preferred for logging.
func (a *App) LaunchGame(platform string, id string, appName string) (string, error) {
	ctx := a.appCtx()

	return a.launcher.Launch(ctx, launcher.Request{
		Store:   platform,
		ID:      id,
		AppName: appName,
	})
}

// ==================== Library ====================

// GetLibrary returns the unified game library from the backend.
func (a *App) GetLibrary() ([]aioapi.LibraryGame, error) {
	ctx := a.appCtx()
	return a.client().Library(ctx)
}

// SyncStores asks the backend to refresh the library from every store.
func (a *App) SyncStores() error {
	ctx := a.appCtx()
	return a.client().SyncAllStores(ctx)
}

// DiscoverBackends browses the local network for AIO backends advertising
// over mDNS, for the settings screen's backend picker.
func (a *App) DiscoverBackends() ([]discovery.Backend, error) {
	ctx := a.appCtx()
	return discovery.Browse(ctx, discovery.DefaultTimeout)
}

// BackendOnline reports whether the backend answers its health check.
func (a *App) BackendOnline() bool {
	ctx := a.appCtx()
	return a.client().Health(ctx) == nil
}

// ==================== Settings ====================

// GetSettings returns the current settings for the UI
func (a *App) GetSettings() Settings {
	return Settings{
		BackendURL:  a.configMgr.GetBackendURL(),
		CloseToTray: a.configMgr.GetCloseToTray(),
		Debug:       a.configMgr.GetDebug(),
		DeviceID:    a.configMgr.GetDeviceID(),
	}
}

// SetBackendURL updates the backend base URL and reconnects the API client
func (a *App) SetBackendURL(url string) error {
	if err := a.configMgr.SetBackendURL(url); err != nil {
		return err
	}
	a.setClient(aioapi.NewClient(a.configMgr.GetBackendURL(), a.configMgr.GetAPIToken()))
	return nil
}

// SetAPIToken stores the backend API token
func (a *App) SetAPIToken(token string) error {
	if err := a.configMgr.SetAPIToken(token); err != nil {
		return err
	}
	if c := a.client(); c != nil {
		c.SetToken(token)
	}
	return nil
}

// SetCloseToTray updates whether closing the window hides to the tray
func (a *App) SetCloseToTray(enabled bool) error {
	return a.configMgr.SetCloseToTray(enabled)
}

// ==================== Window ====================

// ShowWindow brings the main window to the front
func (a *App) ShowWindow() {
	(&wailsWindow{app: a}).Raise()
}

// GetVersion returns version information for the UI
func (a *App) GetVersion() version.Info {
	return version.GetInfo()
}
