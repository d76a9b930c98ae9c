// Package divinepride is a minimal read-only client for the Divine-Pride
// game-data API.
package divinepride

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/athena-tools/mobgen/internal/config"
)

// ErrNotFound reports that the API has no record for the requested id.
var ErrNotFound = errors.New("monster not found")

// Client fetches monster records over HTTP.
type Client struct {
	httpClient *http.Client
	cfg        config.DivinePrideConfig
}

// NewClient constructs a Client from the Divine-Pride configuration.
//
// Precondition: cfg must have passed config validation.
// Postcondition: returns a non-nil Client with the configured timeout applied.
func NewClient(cfg config.DivinePrideConfig) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		cfg: cfg,
	}
}

// Monster fetches one monster record by id.
//
// A 404 response, an empty body, or a record without a usable id all map to
// ErrNotFound; transport failures and other non-2xx statuses are returned as
// wrapped errors. The caller decides whether any of these abort the batch.
func (c *Client) Monster(ctx context.Context, id int) (*Monster, error) {
	url := c.cfg.MonsterURL(id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request for monster %d: %w", id, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching monster %d: %w", id, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("monster %d: %w", id, ErrNotFound)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetching monster %d: unexpected status %s", id, resp.Status)
	}

	var m Monster
	if err := json.NewDecoder(resp.Body).Decode(&m); err != nil {
		// Divine-Pride answers unknown ids on some servers with an empty or
		// non-JSON body instead of a 404.
		return nil, fmt.Errorf("monster %d: invalid response body: %w", id, ErrNotFound)
	}
	if m.ID == 0 {
		return nil, fmt.Errorf("monster %d: record has no id: %w", id, ErrNotFound)
	}

	return &m, nil
}
