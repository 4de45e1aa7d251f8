package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX объединяет пул соединений и открытую транзакцию: ему удовлетворяют
// *pgxpool.Pool, pgx.Tx и pgxmock-пул в тестах. Репозиторий, созданный
// поверх транзакции, читает согласованный снимок данных.
type DBTX interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}
