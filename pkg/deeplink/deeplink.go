// Package deeplink recognizes aio:// deep links in process argument vectors
// and forwards them to the running window.
package deeplink

import (
	"strings"

	"github.com/rs/zerolog/log"
)

// Prefix is the literal URI scheme prefix that marks an argument as a deep
// link. The remainder of the argument is forwarded verbatim, never parsed.
const Prefix = "aio://"

// EventDetected is the event name delivered to the frontend when a deep
// link is found, carrying the raw URI string.
const EventDetected = "deeplink:detected"

// EventSink delivers named events to the frontend.
type EventSink interface {
	Emit(name string, data ...interface{})
}

// WindowRaiser brings the main window back into focus.
type WindowRaiser interface {
	Raise()
}

// Match scans an argument vector for the first deep-link argument.
func Match(args []string) (string, bool) {
	for _, arg := range args {
		if strings.HasPrefix(arg, Prefix) {
			return arg, true
		}
	}
	return "", false
}

// Guard forwards deep links found in argument vectors to the main window.
// The sink and raiser are handed in at construction; a nil value for either
// silently drops the corresponding action, which is the accepted behavior
// when the window is already gone.
type Guard struct {
	events EventSink
	window WindowRaiser
}

// NewGuard creates a Guard wired to the given event sink and window.
func NewGuard(events EventSink, window WindowRaiser) *Guard {
	return &Guard{events: events, window: window}
}

// HandleStartup scans the first launch's argument vector and forwards the
// first deep link found, if any.
func (g *Guard) HandleStartup(args []string) {
	uri, ok := Match(args)
	if !ok {
		return
	}
	log.Info().Str("uri", uri).Msg("deep link in startup arguments")
	g.forward(uri)
}

// HandleSecondInstance scans a second launch attempt's argument vector. On
// a match it forwards the deep link and raises the main window; otherwise
// it does nothing.
func (g *Guard) HandleSecondInstance(args []string) {
	uri, ok := Match(args)
	if !ok {
		log.Debug().Msg("second instance without deep link")
		return
	}
	log.Info().Str("uri", uri).Msg("deep link from second instance")
	g.forward(uri)
	if g.window != nil {
		g.window.Raise()
	}
}

func (g *Guard) forward(uri string) {
	if g.events == nil {
		return
	}
	g.events.Emit(EventDetected, uri)
}
