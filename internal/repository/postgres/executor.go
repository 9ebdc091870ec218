package postgres

import (
	"context"
	"database/sql"
)

// DBExecutor покрывает *sql.DB и *sql.Tx, чтобы одни и те же запросы
// работали и вне, и внутри транзакции.
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type rowScanner interface {
	Scan(dest ...any) error
}
