// Package tray manages the system tray icon and menu of the desktop shell.
package tray

import (
	"fmt"
	"sync"

	"github.com/energye/systray"
)

// Status is the shell state reflected in the tray menu.
type Status struct {
	BackendOnline bool
	LibraryCount  int
}

// Config contains the icon and callbacks for the tray.
type Config struct {
	Icon      []byte
	OnShow    func()
	OnQuit    func()
	GetStatus func() Status
}

// Tray manages the system tray icon and menu.
type Tray struct {
	config Config
	mu     sync.RWMutex
	status Status

	closed   bool
	closeMu  sync.RWMutex
	quitOnce sync.Once

	mTitle  *systray.MenuItem
	mStatus *systray.MenuItem
	mShow   *systray.MenuItem
	mQuit   *systray.MenuItem
}

// New creates a new Tray instance.
func New(cfg Config) *Tray {
	return &Tray{config: cfg}
}

// Run starts the system tray. Blocking; run in a goroutine.
func (t *Tray) Run() {
	systray.Run(t.onReady, t.onExit)
}

// UpdateStatus refreshes the tray menu from new shell state.
func (t *Tray) UpdateStatus(s Status) {
	t.closeMu.RLock()
	if t.closed {
		t.closeMu.RUnlock()
		return
	}
	t.closeMu.RUnlock()

	t.mu.Lock()
	t.status = s
	t.mu.Unlock()

	t.updateMenu()
}

// Quit signals the tray to exit.
func (t *Tray) Quit() {
	t.quitOnce.Do(func() {
		t.closeMu.Lock()
		t.closed = true
		t.closeMu.Unlock()
		systray.Quit()
	})
}

func (t *Tray) onReady() {
	if len(t.config.Icon) > 0 {
		systray.SetIcon(t.config.Icon)
	}
	systray.SetTitle("AIO")
	systray.SetTooltip("AIO game library")

	t.mTitle = systray.AddMenuItem("AIO", "")
	t.mTitle.Disable()

	systray.AddSeparator()

	t.mStatus = systray.AddMenuItem("Backend: offline", "AIO backend connection state")
	t.mStatus.Disable()

	systray.AddSeparator()

	t.mShow = systray.AddMenuItem("Show library", "Bring the AIO window to the front")

	systray.AddSeparator()

	t.mQuit = systray.AddMenuItem("Quit", "Close AIO")

	t.mShow.Click(func() {
		if t.config.OnShow != nil {
			t.config.OnShow()
		}
	})

	t.mQuit.Click(func() {
		if t.config.OnQuit != nil {
			t.config.OnQuit()
		}
		systray.Quit()
	})

	if t.config.GetStatus != nil {
		t.UpdateStatus(t.config.GetStatus())
	}
}

func (t *Tray) onExit() {
	t.closeMu.Lock()
	t.closed = true
	t.closeMu.Unlock()
}

func (t *Tray) updateMenu() {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.mStatus == nil {
		return
	}

	if t.status.BackendOnline {
		t.mStatus.SetTitle(fmt.Sprintf("Backend: online (%d games)", t.status.LibraryCount))
		systray.SetTooltip("AIO game library - backend online")
	} else {
		t.mStatus.SetTitle("Backend: offline")
		systray.SetTooltip("AIO game library - backend offline")
	}
}
