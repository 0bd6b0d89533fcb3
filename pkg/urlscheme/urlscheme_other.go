//go:build !windows && !linux

package urlscheme

import (
	"context"

	"github.com/aiolauncher/aio-desktop/pkg/command"
)

// register is a no-op. On macOS the scheme is declared in the app bundle's
// Info.plist (CFBundleURLTypes) and Launch Services picks it up; there is
// nothing to do at runtime. Other platforms have no handler registry.
func register(context.Context, command.Executor, string) error {
	return nil
}
