package db

import "context"

// ConnProvider hands out scoped connections. *Client implements it.
type ConnProvider interface {
	WithConn(ctx context.Context, fn ConnFunc) error
}

var _ ConnProvider = (*Client)(nil)
