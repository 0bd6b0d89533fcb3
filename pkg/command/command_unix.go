//go:build !windows

package command

import (
	"context"
	"os/exec"
)

// StartWithOptions starts a command. The HideWindow option only has meaning
// on Windows and is ignored here.
func (*RealExecutor) StartWithOptions(
	ctx context.Context,
	_ StartOptions,
	name string,
	args ...string,
) error {
	return exec.CommandContext(ctx, name, args...).Start()
}
