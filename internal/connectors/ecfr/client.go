package ecfr

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/custodia-labs/regsnap-cli/internal/core/domain"
	"github.com/custodia-labs/regsnap-cli/internal/core/ports/driven"
	"github.com/custodia-labs/regsnap-cli/internal/logger"
)

// MaxResponseSize caps one response body read (the API serves at most a
// few MB per page; anything larger is a misbehaving endpoint).
const MaxResponseSize = 32 << 20

// Ensure Client implements the interface.
var _ driven.SearchFetcher = (*Client)(nil)

// Client fetches search results from the eCFR public API.
// The API is anonymous; no credentials are attached.
type Client struct {
	baseURL     string
	perPage     int
	httpClient  *http.Client
	rateLimiter *RateLimiter
}

// NewClient creates a search API client from settings.
func NewClient(settings *domain.Settings) *Client {
	if settings == nil {
		settings = domain.DefaultSettings()
	}
	baseURL := settings.BaseURL
	if baseURL == "" {
		baseURL = domain.DefaultBaseURL
	}
	perPage := settings.PerPage
	if perPage < 1 {
		perPage = domain.DefaultPerPage
	}
	timeout := settings.Timeout
	if timeout <= 0 {
		timeout = domain.DefaultTimeout
	}

	return &Client{
		baseURL:     baseURL,
		perPage:     perPage,
		httpClient:  &http.Client{Timeout: timeout},
		rateLimiter: NewRateLimiter(),
	}
}

// FetchRaw performs one GET against the search endpoint with the given
// page size and returns the raw response body. No retries: the caller
// decides whether a failed fetch is worth repeating.
func (c *Client) FetchRaw(ctx context.Context, perPage int) ([]byte, error) {
	if perPage < 1 {
		perPage = c.perPage
	}

	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	requestURL, err := c.buildURL(perPage)
	if err != nil {
		return nil, fmt.Errorf("build search URL: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request: %w", err)
	}
	defer resp.Body.Close()

	if err := c.rateLimiter.CheckRateLimit(resp); err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{StatusCode: resp.StatusCode, URL: requestURL}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	logger.Debug("GET %s: %d bytes in %s", requestURL, len(body), time.Since(start).Round(time.Millisecond))
	return body, nil
}

// buildURL attaches the per_page query parameter to the base URL.
func (c *Client) buildURL(perPage int) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set("per_page", strconv.Itoa(perPage))
	u.RawQuery = q.Encode()
	return u.String(), nil
}
