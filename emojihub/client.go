package emojihub

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/qyinm/emojitui/types"
	"github.com/rs/zerolog/log"
)

const (
	// DefaultURL is the EmojiHub endpoint returning the whole catalog.
	DefaultURL       = "https://emojihub.yurace.pro/api/all"
	DefaultUserAgent = "emojitui/1.0 (+https://github.com/qyinm/emojitui)"
)

// ErrUnexpectedStatus is returned when the endpoint answers with a non-200 status.
var ErrUnexpectedStatus = errors.New("unexpected status code")

// Client implements types.EmojiSource over HTTP and keeps the fetched
// snapshot in memory.
type Client struct {
	url       string
	userAgent string
	client    *http.Client
	mu        sync.Mutex
	snapshot  []types.Emoji
	cached    bool
}

// Compile-time interface check
var _ types.EmojiSource = (*Client)(nil)

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.client = hc
		}
	}
}

// WithUserAgent sets the User-Agent header sent with the request.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// New creates a Client for url. An empty url means DefaultURL.
func New(url string, opts ...Option) *Client {
	if url == "" {
		url = DefaultURL
	}
	c := &Client{
		url:       url,
		userAgent: DefaultUserAgent,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// URL returns the endpoint the client fetches from
func (c *Client) URL() string { return c.url }

// FetchEmojis fetches and parses the whole catalog. Once a fetch succeeds the
// same snapshot is returned until ClearCache is called.
func (c *Client) FetchEmojis(ctx context.Context) ([]types.Emoji, error) {
	c.mu.Lock()
	if c.cached {
		snapshot := c.snapshot
		c.mu.Unlock()
		return snapshot, nil
	}
	c.mu.Unlock()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch emojis: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Read a little of the body for error context
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: %d, body: %s", ErrUnexpectedStatus, resp.StatusCode, string(body))
	}

	emojis, err := ParseEmojis(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse emojis: %w", err)
	}

	log.Debug().Str("url", c.url).Int("count", len(emojis)).Msg("Fetched emoji catalog")

	c.mu.Lock()
	c.snapshot = emojis
	c.cached = true
	c.mu.Unlock()
	return emojis, nil
}

// ClearCache drops the held snapshot so the next fetch goes to the network.
func (c *Client) ClearCache() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snapshot = nil
	c.cached = false
}
