package catalogapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"instock/pkg/models"

	"github.com/google/uuid"
)

// Client talks to a remote catalog service mirroring the local store.
// Nothing in the HTTP surface consumes it yet; it is kept for the planned
// catalog sync and its contract is tested regardless.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// StatusError is returned for any non-2xx response.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("catalog api returned status %d", e.StatusCode)
}

// DecodeError wraps a malformed response body.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode catalog api response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

func (c *Client) GetCatalogItems(ctx context.Context) ([]models.CatalogItem, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/catalog", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{StatusCode: resp.StatusCode}
	}

	var items []models.CatalogItem
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, &DecodeError{Err: err}
	}

	return items, nil
}

func (c *Client) AddCatalogItem(ctx context.Context, item models.CatalogItem) error {
	return c.send(ctx, http.MethodPost, c.baseURL+"/catalog", &item)
}

func (c *Client) UpdateCatalogItem(ctx context.Context, item models.CatalogItem) error {
	return c.send(ctx, http.MethodPut, fmt.Sprintf("%s/catalog/%s", c.baseURL, item.ID), &item)
}

func (c *Client) DeleteCatalogItem(ctx context.Context, id uuid.UUID) error {
	return c.send(ctx, http.MethodDelete, fmt.Sprintf("%s/catalog/%s", c.baseURL, id), nil)
}

func (c *Client) send(ctx context.Context, method, url string, body *models.CatalogItem) error {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode catalog item: %w", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &StatusError{StatusCode: resp.StatusCode}
	}

	return nil
}
