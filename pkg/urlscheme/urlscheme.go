// Package urlscheme registers the aio:// URI scheme with the operating
// system so that deep links reach the shell from browsers and other apps.
package urlscheme

import (
	"context"
	"fmt"
	"os"

	"github.com/aiolauncher/aio-desktop/pkg/command"
)

// Scheme is the URI scheme owned by the desktop shell.
const Scheme = "aio"

// Register points the OS handler for Scheme at the current executable.
// Registration is per-user and idempotent; callers treat failure as a
// warning, not a startup error.
func Register(ctx context.Context, cmd command.Executor) error {
	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("cannot determine executable path: %w", err)
	}
	return register(ctx, cmd, exe)
}

// desktopEntry renders the freedesktop.org handler entry used on Linux.
func desktopEntry(exe string) string {
	return fmt.Sprintf(`[Desktop Entry]
Name=AIO
Comment=AIO game library
Exec=%s %%u
Type=Application
NoDisplay=true
Terminal=false
MimeType=x-scheme-handler/%s;
`, exe, Scheme)
}
