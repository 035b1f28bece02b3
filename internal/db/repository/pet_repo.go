package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/jackc/pgx/v5/pgconn"

	"petstore/internal/db"
	dom "petstore/internal/domain/pet"
	"petstore/internal/logging"
)

// uniqueViolation is the Postgres SQLSTATE for a duplicate key.
const uniqueViolation = "23505"

type PetRepository struct {
	conns  db.ConnProvider
	sql    *entsql.DialectBuilder
	logger logging.Logger
}

func NewPetRepository(client *db.Client, logger logging.Logger) dom.Repository {
	return newPetRepository(client, client.SQL(), logger)
}

func newPetRepository(conns db.ConnProvider, builder *entsql.DialectBuilder, logger logging.Logger) *PetRepository {
	return &PetRepository{
		conns:  conns,
		sql:    builder,
		logger: logger.With("component", "pet_repo"),
	}
}

func (r *PetRepository) Create(ctx context.Context, p *dom.Pet) error {
	row := toPetRow(p)
	query, args := r.sql.Insert(db.PetsTable).
		Columns(petColumns...).
		Values(row.ID, row.Name, row.Tag).
		Query()

	return r.conns.WithConn(ctx, func(ctx context.Context, conn *sql.Conn) error {
		if _, err := conn.ExecContext(ctx, query, args...); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
				return dom.ErrAlreadyExists
			}
			return fmt.Errorf("insert pet: %w", err)
		}
		return nil
	})
}

func (r *PetRepository) GetByID(ctx context.Context, id int64) (*dom.Pet, error) {
	query, args := r.sql.Select(petColumns...).
		From(r.sql.Table(db.PetsTable)).
		Where(entsql.EQ("id", id)).
		Query()

	var p dom.Pet
	err := r.conns.WithConn(ctx, func(ctx context.Context, conn *sql.Conn) error {
		row, err := scanPetRow(conn.QueryRowContext(ctx, query, args...))
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return dom.ErrNotFound
			}
			return fmt.Errorf("select pet: %w", err)
		}
		p = row.toDomain()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PetRepository) List(ctx context.Context, filter dom.ListFilter) ([]dom.Pet, error) {
	sel := r.sql.Select(petColumns...).
		From(r.sql.Table(db.PetsTable)).
		OrderBy("id")
	if filter.After != nil {
		sel = sel.Where(entsql.GT("id", *filter.After))
	}
	if filter.Limit > 0 {
		sel = sel.Limit(filter.Limit)
	}
	query, args := sel.Query()

	out := make([]dom.Pet, 0)
	err := r.conns.WithConn(ctx, func(ctx context.Context, conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("select pets: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			row, err := scanPetRow(rows)
			if err != nil {
				return fmt.Errorf("scan pet: %w", err)
			}
			out = append(out, row.toDomain())
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
