// Package launcher maps game-store identifiers to launch URIs and hands
// them to the operating system's default URI handler.
package launcher

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
)

// Store tags recognized by the launcher. Anything else is rejected.
const (
	StoreSteam = "steam"
	StoreEpic  = "epic"
	StoreGOG   = "gog"
)

// ErrMissingIdentifier is returned when a launch request carries neither an
// app name nor a store ID.
var ErrMissingIdentifier = errors.New("missing game identifier")

// Request describes a single launch attempt as received from the frontend.
// ID and AppName are both optional; AppName wins when both are present.
type Request struct {
	Store   string
	ID      string
	AppName string
}

// Identifier resolves the identifier substituted into the store URI.
func (r Request) Identifier() (string, error) {
	if r.AppName != "" {
		return r.AppName, nil
	}
	if r.ID != "" {
		return r.ID, nil
	}
	return "", ErrMissingIdentifier
}

// Launcher turns launch requests into OS "open URI" side effects.
type Launcher struct {
	sys System
}

// New creates a Launcher on top of the given system dispatcher.
func New(sys System) *Launcher {
	return &Launcher{sys: sys}
}

// Launch builds the store URI for the request and asks the OS to open it.
// The spawned handler process is not waited on; success means the spawn
// itself succeeded, not that the game actually started.
func (l *Launcher) Launch(ctx context.Context, req Request) (string, error) {
	log.Info().
		Str("store", req.Store).
		Str("id", req.ID).
		Str("appName", req.AppName).
		Msg("launch request")

	identifier, err := req.Identifier()
	if err != nil {
		return "", err
	}

	uri, err := l.sys.URI(req.Store, identifier)
	if err != nil {
		return "", err
	}

	log.Debug().Str("uri", uri).Str("os", l.sys.Name()).Msg("opening launch URI")

	if err := l.sys.Open(ctx, uri); err != nil {
		return "", fmt.Errorf("failed to start game: %w", err)
	}

	return fmt.Sprintf("Started %s game", req.Store), nil
}
