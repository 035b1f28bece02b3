package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	"petstore/internal/config"
	"petstore/internal/logging"

	_ "github.com/jackc/pgx/v5/stdlib" // register pgx as a database/sql driver
)

type Client struct {
	db             *sql.DB
	builder        *entsql.DialectBuilder
	acquireTimeout time.Duration
	logger         logging.Logger
}

// NewClient opens a database/sql pool on the pgx driver and verifies it.
func NewClient(ctx context.Context, cfg config.PostgresConfig, logger logging.Logger) (*Client, error) {
	dsn := cfg.EffectiveDSN()

	dbStd, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("sql.Open: %w", err)
	}

	dbStd.SetMaxOpenConns(cfg.MaxOpenConns)
	dbStd.SetMaxIdleConns(cfg.MaxIdleConns)
	dbStd.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	// Verify connectivity
	if err := dbStd.PingContext(ctx); err != nil {
		_ = dbStd.Close()
		return nil, fmt.Errorf("db ping: %w", err)
	}

	return NewClientFromDB(dbStd, cfg.AcquireTimeout, logger), nil
}

// NewClientFromDB wraps an already opened pool. A zero acquireTimeout waits
// as long as the caller's context allows.
func NewClientFromDB(dbStd *sql.DB, acquireTimeout time.Duration, logger logging.Logger) *Client {
	return &Client{
		db:             dbStd,
		builder:        entsql.Dialect(dialect.Postgres),
		acquireTimeout: acquireTimeout,
		logger:         logger.With("component", "db_client"),
	}
}

// SQL returns the Postgres query builder.
func (c *Client) SQL() *entsql.DialectBuilder {
	return c.builder
}

func (c *Client) Close() error {
	return c.db.Close()
}

// Ping is used by health checks.
func (c *Client) Ping(ctx context.Context) error {
	return c.db.PingContext(ctx)
}
