// Package enrich fetches supplementary verse text for a scripture
// reference from an external lookup service. Enrichment is best-effort:
// it runs in the background, patches session state when it resolves, and
// is silently dropped on failure. Nothing here is required for the
// correctness of any calculation.
package enrich

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

// DefaultBaseURL is the public verse lookup endpoint. Override with the
// SELAH_VERSE_API environment variable or WithBaseURL.
const DefaultBaseURL = "https://bible-api.com"

const defaultTimeout = 10 * time.Second

// Client looks up verse text by reference over HTTP.
type Client struct {
	baseURL string
	client  *http.Client
	retry   RetryConfig
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the lookup endpoint.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.client = hc }
}

// WithRetry overrides the retry configuration.
func WithRetry(cfg RetryConfig) Option {
	return func(c *Client) { c.retry = cfg }
}

// NewClient builds a Client, resolving the base URL from SELAH_VERSE_API
// when set.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		client:  &http.Client{Timeout: defaultTimeout},
		retry:   DefaultRetryConfig(),
	}
	if env := os.Getenv("SELAH_VERSE_API"); env != "" {
		c.baseURL = strings.TrimRight(env, "/")
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// lookupResponse is the subset of the service response we use.
type lookupResponse struct {
	Reference string `json:"reference"`
	Text      string `json:"text"`
}

// Lookup fetches the verse text for a reference like "John 3:16".
// Transient failures are retried with backoff; a non-200 on the final
// attempt or an empty body is an error for the caller to drop.
func (c *Client) Lookup(ctx context.Context, reference string) (string, error) {
	if strings.TrimSpace(reference) == "" {
		return "", fmt.Errorf("empty reference")
	}

	var text string
	err := c.retry.Do(ctx, func() error {
		var err error
		text, err = c.lookupOnce(ctx, reference)
		return err
	})
	if err != nil {
		return "", err
	}
	return text, nil
}

func (c *Client) lookupOnce(ctx context.Context, reference string) (string, error) {
	u := c.baseURL + "/" + url.PathEscape(reference)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("lookup %q: %w", reference, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("lookup %q: HTTP %d", reference, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}

	var parsed lookupResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	text := strings.TrimSpace(parsed.Text)
	if text == "" {
		return "", fmt.Errorf("lookup %q: empty text", reference)
	}
	return text, nil
}
