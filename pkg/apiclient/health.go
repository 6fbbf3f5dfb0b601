package apiclient

import (
	"context"

	"github.com/dulpromax/dulpromax-b2b/internal/domain"
)

const (
	pathRoot   = "/"
	pathPing   = "/ping"
	pathHealth = "/health"
)

// Health calls GET /health.
func (c *Client) Health(ctx context.Context) (*domain.Health, error) {
	var out domain.Health
	if err := c.do(ctx, pathHealth, pathHealth, RequestOptions{}, &out); err != nil {
		return nil, wrap(OpConnection, err)
	}
	return &out, nil
}

// Ping calls GET /ping.
func (c *Client) Ping(ctx context.Context) (*domain.Message, error) {
	var out domain.Message
	if err := c.do(ctx, pathPing, pathPing, RequestOptions{}, &out); err != nil {
		return nil, wrap(OpConnection, err)
	}
	return &out, nil
}

// Welcome calls GET / and returns the server greeting.
func (c *Client) Welcome(ctx context.Context) (*domain.Message, error) {
	var out domain.Message
	if err := c.do(ctx, pathRoot, pathRoot, RequestOptions{}, &out); err != nil {
		return nil, wrap(OpConnection, err)
	}
	return &out, nil
}
