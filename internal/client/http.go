package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

type HTTPSource struct {
	name   string
	url    string
	client *http.Client
}

// NewHTTPSource fetches url with client, or http.DefaultClient when client is nil.
func NewHTTPSource(name, url string, client *http.Client) *HTTPSource {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPSource{name: name, url: url, client: client}
}

func (h *HTTPSource) Name() string {
	return h.name
}

func (h *HTTPSource) Fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", h.name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("failed to load %s: %w: %s", h.name, ErrUnexpectedStatus, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", h.name, err)
	}
	return body, nil
}
