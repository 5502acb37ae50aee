// Package slot implements the slot store using PostgreSQL.
// Each slot is one row holding a JSONB document.
package slot

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/lesehilfe/internal/adapter/postgres"
)

const table = "slots"

// Repo provides slot persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
	sb   squirrel.StatementBuilderType
}

// New creates a new slot repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{
		pool: pool,
		sb:   squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Get returns the document stored in a slot.
// Returns domain.ErrNotFound if the slot has never been written.
func (r *Repo) Get(ctx context.Context, name string) ([]byte, error) {
	query, args, err := r.sb.
		Select("data::text").
		From(table).
		Where(squirrel.Eq{"name": name}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var data string
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&data); err != nil {
		return nil, postgres.MapError(err, "slot", name)
	}
	return []byte(data), nil
}

// Put inserts or overwrites a slot. data must be valid JSON.
func (r *Repo) Put(ctx context.Context, name string, data []byte) error {
	query, args, err := r.sb.
		Insert(table).
		Columns("name", "data", "updated_at").
		Values(name, squirrel.Expr("?::jsonb", string(data)), squirrel.Expr("now()")).
		Suffix("ON CONFLICT (name) DO UPDATE SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "slot", name)
	}
	return nil
}

// Ping checks the database connection.
func (r *Repo) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}
