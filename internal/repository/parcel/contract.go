package parcel

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	QueryBuilder(ctx context.Context, b sq.Sqlizer) (pgx.Rows, error)
	QueryRowBuilder(ctx context.Context, b sq.Sqlizer) (pgx.Row, error)
}
