// Package config provides persistent configuration for the desktop shell.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// DefaultBackendURL is used until the user points the shell at another
// AIO backend deployment.
const DefaultBackendURL = "http://localhost:8080"

// Config holds the desktop shell configuration.
type Config struct {
	BackendURL  string `json:"backendUrl"`
	APIToken    string `json:"apiToken,omitempty"`
	DeviceID    string `json:"deviceId"`
	CloseToTray bool   `json:"closeToTray"`
	Debug       bool   `json:"debug"`
}

// Manager handles loading and saving configuration.
type Manager struct {
	mu       sync.RWMutex
	config   Config
	filePath string
}

// NewManager creates a configuration manager backed by
// <UserConfigDir>/aio/config.json, generating a device ID on first run.
func NewManager() (*Manager, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return nil, err
	}

	dir := filepath.Join(configDir, "aio")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	m := &Manager{
		filePath: filepath.Join(dir, "config.json"),
		config: Config{
			BackendURL:  DefaultBackendURL,
			CloseToTray: true,
		},
	}

	m.load()

	if m.config.DeviceID == "" {
		m.config.DeviceID = uuid.NewString()
		if err := m.Save(); err != nil {
			log.Warn().Err(err).Msg("failed to persist generated device ID")
		}
	}

	return m, nil
}

// NewTransientManager creates an in-memory manager used when the user
// config directory is unavailable. Nothing is persisted.
func NewTransientManager() *Manager {
	return &Manager{
		config: Config{
			BackendURL:  DefaultBackendURL,
			DeviceID:    uuid.NewString(),
			CloseToTray: true,
		},
	}
}

// load reads config from disk. Missing or corrupt files leave defaults.
func (m *Manager) load() {
	data, err := os.ReadFile(m.filePath)
	if err != nil {
		return
	}

	// CloseToTray is a pointer so files written before the field existed
	// keep the default instead of flipping it to false.
	var cfg struct {
		BackendURL  string `json:"backendUrl"`
		APIToken    string `json:"apiToken"`
		DeviceID    string `json:"deviceId"`
		CloseToTray *bool  `json:"closeToTray"`
		Debug       bool   `json:"debug"`
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		log.Warn().Err(err).Str("path", m.filePath).Msg("ignoring unreadable config file")
		return
	}

	if cfg.BackendURL != "" {
		m.config.BackendURL = cfg.BackendURL
	}
	m.config.APIToken = cfg.APIToken
	m.config.DeviceID = cfg.DeviceID
	if cfg.CloseToTray != nil {
		m.config.CloseToTray = *cfg.CloseToTray
	}
	m.config.Debug = cfg.Debug
}

// Save writes config to disk. The token lives in here, hence 0600.
func (m *Manager) Save() error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.filePath == "" {
		return nil
	}

	data, err := json.MarshalIndent(m.config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(m.filePath, data, 0600)
}

// GetConfig returns a copy of the current config.
func (m *Manager) GetConfig() Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config
}

// GetBackendURL returns the backend base URL.
func (m *Manager) GetBackendURL() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config.BackendURL
}

// SetBackendURL sets the backend base URL and saves config.
func (m *Manager) SetBackendURL(url string) error {
	m.mu.Lock()
	if url == "" {
		url = DefaultBackendURL
	}
	m.config.BackendURL = url
	m.mu.Unlock()

	return m.Save()
}

// GetAPIToken returns the stored backend session token.
func (m *Manager) GetAPIToken() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config.APIToken
}

// SetAPIToken stores the backend session token and saves config.
func (m *Manager) SetAPIToken(token string) error {
	m.mu.Lock()
	m.config.APIToken = token
	m.mu.Unlock()

	return m.Save()
}

// GetDeviceID returns the stable per-install device ID.
func (m *Manager) GetDeviceID() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config.DeviceID
}

// GetCloseToTray returns whether closing the window hides to the tray.
func (m *Manager) GetCloseToTray() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config.CloseToTray
}

// SetCloseToTray sets the close-to-tray behavior and saves config.
func (m *Manager) SetCloseToTray(enabled bool) error {
	m.mu.Lock()
	m.config.CloseToTray = enabled
	m.mu.Unlock()

	return m.Save()
}

// GetDebug returns whether debug logging is enabled.
func (m *Manager) GetDebug() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config.Debug
}
