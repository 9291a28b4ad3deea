package store

import (
	"context"
	"database/sql"
)

// DBTX abstracts the sqlx access layer. It is implemented by both *sqlx.DB
// and *sqlx.Tx, allowing store code to work with either a database
// connection or a transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	GetContext(ctx context.Context, dest any, query string, args ...any) error
	SelectContext(ctx context.Context, dest any, query string, args ...any) error
}
