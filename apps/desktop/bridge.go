package main

import (
	wailsruntime "github.com/wailsapp/wails/v2/pkg/runtime"
)

// wailsEvents forwards events to the frontend over the Wails event bus.
type wailsEvents struct {
	app *App
}

func (e *wailsEvents) Emit(name string, data ...interface{}) {
	e.app.ctxMu.RLock()
	ctx := e.app.ctx
	e.app.ctxMu.RUnlock()
	if ctx == nil {
		return
	}
	wailsruntime.EventsEmit(ctx, name, data...)
}

// wailsWindow raises the main window out of the tray or taskbar.
type wailsWindow struct {
	app *App
}

func (w *wailsWindow) Raise() {
	w.app.ctxMu.RLock()
	ctx := w.app.ctx
	w.app.ctxMu.RUnlock()
	if ctx == nil {
		return
	}
	wailsruntime.WindowUnminimise(ctx)
	wailsruntime.WindowShow(ctx)
}
