package fred

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync/atomic"

	"github.com/rs/zerolog"
)

// Client is a FRED API client. It is safe for concurrent use; calls share
// nothing but the immutable configuration and the HTTP connection pool.
type Client struct {
	transport Transport
	owned     *httpTransport
	logger    zerolog.Logger
	closed    atomic.Bool
}

// New creates a client authenticated with apiKey.
func New(apiKey string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrAPIKeyRequired
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	c := &Client{logger: o.logger}
	if o.transport != nil {
		c.transport = o.transport
		return c, nil
	}

	t := &httpTransport{
		baseURL:    strings.TrimRight(o.baseURL, "/"),
		apiKey:     apiKey,
		userAgent:  o.userAgent,
		httpClient: o.httpClient,
		logger:     o.logger,
	}
	if t.httpClient == nil {
		t.httpClient = &http.Client{Timeout: o.timeout}
		t.owned = true
	}
	c.transport = t
	c.owned = t
	return c, nil
}

// Close releases the client's connections. It is safe to call more than
// once; any call made afterwards fails with ErrClientClosed.
func (c *Client) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return nil
	}
	if c.owned != nil {
		c.owned.close()
	}
	return nil
}

type queryBuilder interface {
	query() (*Query, error)
}

func (c *Client) fetch(ctx context.Context, path string, params queryBuilder) ([]byte, error) {
	if c.closed.Load() {
		return nil, ErrClientClosed
	}
	q, err := params.query()
	if err != nil {
		return nil, err
	}
	return c.transport.Get(ctx, path, q)
}

func fetchOne[T any](ctx context.Context, c *Client, path string, params queryBuilder, name string, decode func(*node) (T, error)) (T, error) {
	var zero T
	body, err := c.fetch(ctx, path, params)
	if err != nil {
		return zero, fmt.Errorf("%s: %w", path, err)
	}
	v, err := parseSingle(body, name, decode)
	if err != nil {
		return zero, fmt.Errorf("%s: %w", path, err)
	}
	return v, nil
}

func fetchList[T any](ctx context.Context, c *Client, path string, params queryBuilder, filter string, decode func(*node) (T, error)) ([]T, error) {
	body, err := c.fetch(ctx, path, params)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	items, err := parseList(body, filter, decode)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	c.logger.Debug().
		Str("path", path).
		Int("count", len(items)).
		Msg("Decoded FRED records")

	return items, nil
}
