// Package aioapi is the HTTP client for the AIO backend API.
package aioapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/aiolauncher/aio-desktop/pkg/version"
)

// Client talks to one AIO backend deployment.
type Client struct {
	baseURL    string
	httpClient http.Client

	mu    sync.RWMutex
	token string
}

// NewClient creates a client for the backend at baseURL. The token may be
// empty until the auth-callback deep link delivers one.
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: http.Client{Timeout: 15 * time.Second},
	}
}

// SetToken replaces the bearer token used on subsequent requests.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *Client) do(ctx context.Context, method, endpoint string, params url.Values) ([]byte, error) {
	reqURL := c.baseURL + endpoint
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "aio-desktop/"+version.Version)

	c.mu.RLock()
	token := c.token
	c.mu.RUnlock()
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API error %d: %s", resp.StatusCode, string(body))
	}

	return body, nil
}

// Health checks that the backend is reachable and reports ok.
func (c *Client) Health(ctx context.Context) error {
	body, err := c.do(ctx, http.MethodGet, "/health", nil)
	if err != nil {
		return err
	}

	var resp healthResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return err
	}
	if resp.Status != "ok" {
		return fmt.Errorf("backend unhealthy: %s", resp.Status)
	}
	return nil
}

// Library returns the user's aggregated game library.
func (c *Client) Library(ctx context.Context) ([]LibraryGame, error) {
	body, err := c.do(ctx, http.MethodGet, "/api/library", nil)
	if err != nil {
		return nil, err
	}

	var resp libraryResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, err
	}

	return resp.Games, nil
}

// SyncAllStores asks the backend to refresh the library from every
// connected store account.
func (c *Client) SyncAllStores(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodPost, "/api/stores/sync-all", nil)
	return err
}
