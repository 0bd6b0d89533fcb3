//go:build windows

package command

import (
	"context"
	"os/exec"
	"syscall"
)

// StartWithOptions starts a command, optionally hiding the console window
// that cmd.exe would otherwise flash up.
func (*RealExecutor) StartWithOptions(
	ctx context.Context,
	opts StartOptions,
	name string,
	args ...string,
) error {
	cmd := exec.CommandContext(ctx, name, args...)
	if opts.HideWindow {
		cmd.SysProcAttr = &syscall.SysProcAttr{HideWindow: true}
	}
	return cmd.Start()
}
