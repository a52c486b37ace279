// Package xpgx is a thin convenience layer over pgxpool for running squirrel
// builders and scanning rows into db-tagged structs.
package xpgx

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Pool struct {
	*pgxpool.Pool
}

func NewPool(pool *pgxpool.Pool) Pool {
	return Pool{pool}
}

// Execx runs a builder that returns no rows.
func (p Pool) Execx(ctx context.Context, q squirrel.Sqlizer) (pgconn.CommandTag, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return pgconn.CommandTag{}, err
	}
	return p.Exec(ctx, sql, args...)
}

// Getx runs a builder expected to return exactly one row. Returns
// pgx.ErrNoRows when it returns none.
func Getx[T any](ctx context.Context, p Pool, q squirrel.Sqlizer) (*T, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := p.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}

	return pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByNameLax[T])
}

// Selectx runs a builder and scans every row.
func Selectx[T any](ctx context.Context, p Pool, q squirrel.Sqlizer) ([]*T, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := p.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, pgx.RowToAddrOfStructByNameLax[T])
}
