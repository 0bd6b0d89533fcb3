//go:build windows

package urlscheme

import (
	"context"
	"fmt"

	"golang.org/x/sys/windows/registry"

	"github.com/aiolauncher/aio-desktop/pkg/command"
)

// register creates the HKCU protocol handler keys for the scheme. Writing
// under CURRENT_USER avoids needing elevation.
func register(_ context.Context, _ command.Executor, exe string) error {
	basePath := `SOFTWARE\Classes\` + Scheme
	access := uint32(registry.QUERY_VALUE | registry.SET_VALUE)

	k, _, err := registry.CreateKey(registry.CURRENT_USER, basePath, access)
	if err != nil {
		return fmt.Errorf("create scheme key: %w", err)
	}
	defer k.Close()

	if err := k.SetStringValue("", "URL:AIO Protocol"); err != nil {
		return err
	}
	if err := k.SetStringValue("URL Protocol", ""); err != nil {
		return err
	}

	icon, _, err := registry.CreateKey(registry.CURRENT_USER, basePath+`\DefaultIcon`, access)
	if err != nil {
		return fmt.Errorf("create icon key: %w", err)
	}
	defer icon.Close()
	if err := icon.SetStringValue("", exe+",0"); err != nil {
		return err
	}

	cmdKey, _, err := registry.CreateKey(
		registry.CURRENT_USER, basePath+`\shell\open\command`, access)
	if err != nil {
		return fmt.Errorf("create command key: %w", err)
	}
	defer cmdKey.Close()

	return cmdKey.SetStringValue("", fmt.Sprintf(`"%s" "%%1"`, exe))
}
