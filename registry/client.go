package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// Client fetches the Identifiers.org resolver dataset.
type Client struct {
	url    string
	client *http.Client
	log    zerolog.Logger
}

// NewClient creates a registry client. A nil httpClient uses a
// default with a generous timeout; the dataset is a few megabytes.
func NewClient(url string, httpClient *http.Client, log zerolog.Logger) *Client {
	if url == "" {
		url = DefaultURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 5 * time.Minute}
	}
	return &Client{url: url, client: httpClient, log: log}
}

// Fetch downloads the resolver dataset and returns the namespace
// mapping keyed by prefix.
func (c *Client) Fetch(ctx context.Context) (Mapping, error) {
	c.log.Info().Str("url", c.url).Msg("downloading Identifiers.org registry")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("registry: fetch: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("registry: fetch: unexpected status %s", resp.Status)
	}

	var dataset Dataset
	if err := json.NewDecoder(resp.Body).Decode(&dataset); err != nil {
		return nil, fmt.Errorf("registry: decode dataset: %w", err)
	}
	if dataset.ErrorMessage != nil && *dataset.ErrorMessage != "" {
		return nil, fmt.Errorf("registry: resolver error: %s", *dataset.ErrorMessage)
	}
	if len(dataset.Payload.Namespaces) == 0 {
		return nil, ErrEmptyRegistry
	}

	c.log.Info().Int("namespaces", len(dataset.Payload.Namespaces)).Msg("registry downloaded")
	return NewMapping(dataset.Payload.Namespaces), nil
}
