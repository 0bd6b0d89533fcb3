//go:build linux

package urlscheme

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aiolauncher/aio-desktop/pkg/command"
)

const desktopFileName = "aio.desktop"

// register installs a user-level desktop entry and makes it the default
// handler for the scheme via xdg-mime.
func register(ctx context.Context, cmd command.Executor, exe string) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}

	appsDir := filepath.Join(home, ".local", "share", "applications")
	if err := os.MkdirAll(appsDir, 0755); err != nil {
		return err
	}

	entryPath := filepath.Join(appsDir, desktopFileName)
	if err := os.WriteFile(entryPath, []byte(desktopEntry(exe)), 0644); err != nil {
		return fmt.Errorf("write desktop entry: %w", err)
	}

	return cmd.Run(ctx, "xdg-mime", "default", desktopFileName, "x-scheme-handler/"+Scheme)
}
