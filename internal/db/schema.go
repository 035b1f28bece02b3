package db

import (
	"context"
	"database/sql"
	"fmt"
)

// PetsTable is the only table of the store.
const PetsTable = "pets"

const createPetsTable = `CREATE TABLE IF NOT EXISTS "pets" (` +
	`"id" bigint PRIMARY KEY, ` +
	`"name" text NOT NULL, ` +
	`"tag" text NULL)`

// EnsureSchema creates the pets table when it does not exist yet. It never
// alters an existing table.
func (c *Client) EnsureSchema(ctx context.Context) error {
	return c.WithConn(ctx, func(ctx context.Context, conn *sql.Conn) error {
		if _, err := conn.ExecContext(ctx, createPetsTable); err != nil {
			return fmt.Errorf("create table %s: %w", PetsTable, err)
		}
		c.logger.Info("schema ensured", "table", PetsTable)
		return nil
	})
}
