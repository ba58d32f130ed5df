package bookinglog

import (
	"context"
	"database/sql"
)

// DBExecutor минимальный интерфейс над *sql.DB, нужный репозиторию.
type DBExecutor interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}
