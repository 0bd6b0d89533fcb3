// Package command provides an abstraction over exec.Command so that code
// which spawns OS processes can be tested without executing anything.
package command

import (
	"context"
	"os/exec"
)

// StartOptions configures how a command is started.
type StartOptions struct {
	// HideWindow prevents a console window from flashing up on Windows.
	// Ignored on other platforms.
	HideWindow bool
}

// Executor runs system commands. Implementations other than RealExecutor
// are expected only in tests.
type Executor interface {
	// Run executes a command and waits for it to complete.
	Run(ctx context.Context, name string, args ...string) error

	// Start starts a command without waiting for it to complete.
	Start(ctx context.Context, name string, args ...string) error

	// StartWithOptions starts a command with platform-specific options.
	StartWithOptions(ctx context.Context, opts StartOptions, name string, args ...string) error
}

// RealExecutor executes commands with os/exec.
type RealExecutor struct{}

// Run executes a command and waits for it to complete.
func (*RealExecutor) Run(ctx context.Context, name string, args ...string) error {
	return exec.CommandContext(ctx, name, args...).Run()
}

// Start starts a command without waiting for it to complete.
func (*RealExecutor) Start(ctx context.Context, name string, args ...string) error {
	return exec.CommandContext(ctx, name, args...).Start()
}

var _ Executor = (*RealExecutor)(nil)
