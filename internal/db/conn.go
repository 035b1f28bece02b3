package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"petstore/internal/domain/common"
)

type ConnFunc func(ctx context.Context, conn *sql.Conn) error

// WithConn borrows one connection from the pool for the duration of fn and
// hands it back on every exit path, panics included.
//
// Only the acquisition is bounded by the acquire timeout; fn runs under the
// caller's context. Failing to acquire in time yields an UnavailableError.
func (c *Client) WithConn(ctx context.Context, fn ConnFunc) error {
	acquireCtx := ctx
	if c.acquireTimeout > 0 {
		var cancel context.CancelFunc
		acquireCtx, cancel = context.WithTimeout(ctx, c.acquireTimeout)
		defer cancel()
	}

	conn, err := c.db.Conn(acquireCtx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
			c.logger.Warn("connection pool exhausted", "timeout", c.acquireTimeout.String())
			return common.NewUnavailable(err)
		}
		return fmt.Errorf("acquire conn: %w", err)
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil && !errors.Is(cerr, sql.ErrConnDone) {
			c.logger.Error("failed to release connection", "error", cerr)
		}
	}()

	return fn(ctx, conn)
}
