package launcher

import (
	"context"
	"errors"
	"fmt"

	"github.com/aiolauncher/aio-desktop/pkg/command"
)

// ErrUnsupportedOS is returned for every launch attempt on an operating
// system that has no URI handler dispatch.
var ErrUnsupportedOS = errors.New("unsupported operating system")

// System is the OS-specific half of the launcher: it knows the store URI
// templates available on one operating system and how that OS opens a URI
// with its default handler. One implementation exists per supported OS and
// is selected once at startup via SystemFor.
type System interface {
	// Name returns the GOOS-style identifier of the system.
	Name() string

	// URI builds the launch URI for a store and identifier, or reports
	// that the store is unsupported on this system.
	URI(store, identifier string) (string, error)

	// Open asks the OS to open the URI with its default handler.
	// Fire-and-forget: the handler process is never waited on.
	Open(ctx context.Context, uri string) error
}

// SystemFor returns the System implementation for a GOOS value. Unknown
// systems get a dispatcher whose every operation fails with
// ErrUnsupportedOS, so store lookups stay uniform for callers.
func SystemFor(goos string, cmd command.Executor) System {
	switch goos {
	case "windows":
		return &windowsSystem{cmd: cmd}
	case "darwin":
		return &darwinSystem{cmd: cmd}
	case "linux":
		return &linuxSystem{cmd: cmd}
	default:
		return &unsupportedSystem{goos: goos}
	}
}

func unsupportedStore(store string) error {
	return fmt.Errorf("unsupported platform: %s", store)
}

type windowsSystem struct {
	cmd command.Executor
}

func (*windowsSystem) Name() string { return "windows" }

func (*windowsSystem) URI(store, identifier string) (string, error) {
	switch store {
	case StoreSteam:
		return "steam://rungameid/" + identifier, nil
	case StoreEpic:
		return "com.epicgames.launcher://apps/" + identifier + "?action=launch&silent=true", nil
	case StoreGOG:
		return "goggalaxy://openGameView/" + identifier, nil
	default:
		return "", unsupportedStore(store)
	}
}

func (s *windowsSystem) Open(ctx context.Context, uri string) error {
	// "start" resolves the URI through the registered protocol handler.
	// The empty string is the window title start expects as first arg.
	return s.cmd.StartWithOptions(ctx, command.StartOptions{HideWindow: true},
		"cmd", "/C", "start", "", uri)
}

type darwinSystem struct {
	cmd command.Executor
}

func (*darwinSystem) Name() string { return "darwin" }

func (*darwinSystem) URI(store, identifier string) (string, error) {
	switch store {
	case StoreSteam:
		return "steam://rungameid/" + identifier, nil
	case StoreEpic:
		// The silent flag is unreliable in the macOS Epic client.
		return "com.epicgames.launcher://apps/" + identifier + "?action=launch", nil
	case StoreGOG:
		return "goggalaxy://openGameView/" + identifier, nil
	default:
		return "", unsupportedStore(store)
	}
}

func (s *darwinSystem) Open(ctx context.Context, uri string) error {
	return s.cmd.Start(ctx, "open", uri)
}

type linuxSystem struct {
	cmd command.Executor
}

func (*linuxSystem) Name() string { return "linux" }

func (*linuxSystem) URI(store, identifier string) (string, error) {
	switch store {
	case StoreSteam:
		return "steam://rungameid/" + identifier, nil
	case StoreEpic:
		return "", errors.New("Epic Games not well supported on Linux")
	case StoreGOG:
		return "", errors.New("GOG Galaxy not available on Linux")
	default:
		return "", unsupportedStore(store)
	}
}

func (s *linuxSystem) Open(ctx context.Context, uri string) error {
	return s.cmd.Start(ctx, "xdg-open", uri)
}

type unsupportedSystem struct {
	goos string
}

func (s *unsupportedSystem) Name() string { return s.goos }

func (*unsupportedSystem) URI(string, string) (string, error) {
	return "", ErrUnsupportedOS
}

func (*unsupportedSystem) Open(context.Context, string) error {
	return ErrUnsupportedOS
}

var (
	_ System = (*windowsSystem)(nil)
	_ System = (*darwinSystem)(nil)
	_ System = (*linuxSystem)(nil)
	_ System = (*unsupportedSystem)(nil)
)
