package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewManagerDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	mgr, err := NewManager()
	require.NoError(t, err)

	assert.Equal(t, DefaultBackendURL, mgr.GetBackendURL())
	assert.True(t, mgr.GetCloseToTray())
	assert.NotEmpty(t, mgr.GetDeviceID(), "device ID generated on first run")
}

func TestDeviceIDStableAcrossLoads(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	first, err := NewManager()
	require.NoError(t, err)
	id := first.GetDeviceID()

	second, err := NewManager()
	require.NoError(t, err)

	assert.Equal(t, id, second.GetDeviceID())
}

func TestSetAndReloadValues(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	mgr, err := NewManager()
	require.NoError(t, err)

	require.NoError(t, mgr.SetBackendURL("https://aio.example.com"))
	require.NoError(t, mgr.SetAPIToken("tok-123"))
	require.NoError(t, mgr.SetCloseToTray(false))

	reloaded, err := NewManager()
	require.NoError(t, err)

	assert.Equal(t, "https://aio.example.com", reloaded.GetBackendURL())
	assert.Equal(t, "tok-123", reloaded.GetAPIToken())
	assert.False(t, reloaded.GetCloseToTray())
}

func TestSetBackendURLEmptyRestoresDefault(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	mgr, err := NewManager()
	require.NoError(t, err)

	require.NoError(t, mgr.SetBackendURL("https://aio.example.com"))
	require.NoError(t, mgr.SetBackendURL(""))

	assert.Equal(t, DefaultBackendURL, mgr.GetBackendURL())
}

func TestCorruptConfigFileFallsBackToDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	configDir, err := os.UserConfigDir()
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Join(configDir, "aio"), 0755))
	require.NoError(t, os.WriteFile(
		filepath.Join(configDir, "aio", "config.json"), []byte("{not json"), 0600))

	mgr, err := NewManager()
	require.NoError(t, err)

	assert.Equal(t, DefaultBackendURL, mgr.GetBackendURL())
	assert.NotEmpty(t, mgr.GetDeviceID())
}

func TestMissingCloseToTrayKeyKeepsDefault(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	// A file from a version before the closeToTray field existed.
	configDir, err := os.UserConfigDir()
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Join(configDir, "aio"), 0755))
	require.NoError(t, os.WriteFile(
		filepath.Join(configDir, "aio", "config.json"),
		[]byte(`{"backendUrl":"https://aio.example.com","deviceId":"dev-1"}`), 0600))

	mgr, err := NewManager()
	require.NoError(t, err)

	assert.True(t, mgr.GetCloseToTray(), "absent key keeps the default")

	// An explicit false still wins over the default.
	require.NoError(t, os.WriteFile(
		filepath.Join(configDir, "aio", "config.json"),
		[]byte(`{"deviceId":"dev-1","closeToTray":false}`), 0600))

	mgr, err = NewManager()
	require.NoError(t, err)

	assert.False(t, mgr.GetCloseToTray())
}

func TestConfigFilePermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("file modes are not meaningful on windows")
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.SetAPIToken("secret"))

	info, err := os.Stat(mgr.filePath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}
