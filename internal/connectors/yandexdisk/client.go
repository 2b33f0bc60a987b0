package yandexdisk

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/custodia-labs/sercha-bot/internal/core/domain"
	"github.com/custodia-labs/sercha-bot/internal/logger"
)

const (
	// DefaultPageSize is the number of items requested per listing page.
	// The API returns 20 when no limit is given.
	DefaultPageSize = 100

	// publicResourcesPath is the public listing endpoint.
	publicResourcesPath = "/v1/disk/public/resources"

	// maxErrorBody bounds how much of an error response is kept.
	maxErrorBody = 512
)

// Client talks to the public disk API and downloads listed files.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *RateLimiter
	pageSize   int
}

// NewClient creates a client for the API at baseURL.
// A nil limiter disables throttling.
func NewClient(baseURL string, httpClient *http.Client, limiter *RateLimiter) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		limiter:    limiter,
		pageSize:   DefaultPageSize,
	}
}

// ListPublicFolder returns every entry in the public folder, following
// pagination until a short page is returned.
// Errors wrap domain.ErrRemoteListing.
func (c *Client) ListPublicFolder(ctx context.Context, publicKey string) ([]Resource, error) {
	var all []Resource

	for offset := 0; ; {
		page, err := c.listPage(ctx, publicKey, offset)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrRemoteListing, err)
		}

		all = append(all, page.Items...)
		logger.Debug("Listed %d items at offset %d (total %d)", len(page.Items), offset, page.Total)

		offset += len(page.Items)
		if len(page.Items) < c.pageSize || (page.Total > 0 && offset >= page.Total) {
			return all, nil
		}
	}
}

// listPage fetches one page of the folder listing.
func (c *Client) listPage(ctx context.Context, publicKey string, offset int) (*resourceList, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	query := url.Values{}
	query.Set("public_key", publicKey)
	query.Set("limit", strconv.Itoa(c.pageSize))
	query.Set("offset", strconv.Itoa(offset))
	endpoint := c.baseURL + publicResourcesPath + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("list public folder: %w", err)
	}
	defer resp.Body.Close()

	if c.limiter != nil {
		c.limiter.Observe(resp)
	}

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
			URL:        endpoint,
		}
	}

	var resource publicResource
	if err := json.NewDecoder(resp.Body).Decode(&resource); err != nil {
		return nil, fmt.Errorf("decode listing: %w", err)
	}

	if resource.Embedded == nil {
		return &resourceList{}, nil
	}
	return resource.Embedded, nil
}

// Open starts a download of a listed file. The caller must close the reader.
func (c *Client) Open(ctx context.Context, fileURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fileURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		resp.Body.Close()
		return nil, &APIError{StatusCode: resp.StatusCode, URL: fileURL}
	}

	return resp.Body, nil
}

// Download fetches the full bytes of a listed file.
func (c *Client) Download(ctx context.Context, fileURL string) ([]byte, error) {
	body, err := c.Open(ctx, fileURL)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("download: %w", err)
	}
	return data, nil
}
