// Package dialect provides database dialect abstraction for executing
// filtered queries across different database systems.
package dialect

import "context"

// Supported dialects.
const (
	// MySQL is the mysql dialect.
	MySQL = "mysql"
	// SQLite is the sqlite dialect.
	SQLite = "sqlite"
	// Postgres is the postgres dialect.
	Postgres = "postgres"
)

// ExecQuerier wraps the two standard SQL operations.
type ExecQuerier interface {
	// Exec executes a query that does not return records. For example, in
	// SQL, INSERT or UPDATE. It scans the result into the pointer v for
	// SQL drivers, it is *sql.Result.
	Exec(ctx context.Context, query string, args, v any) error

	// Query executes a query that returns rows, typically a SELECT. It
	// scans the result into the pointer v. For SQL drivers, it is *sql.Rows.
	Query(ctx context.Context, query string, args, v any) error
}

// Driver is the interface that wraps all database operations.
type Driver interface {
	ExecQuerier

	// Tx starts and returns a new transaction.
	Tx(context.Context) (Tx, error)

	// Close closes the underlying connection.
	Close() error

	// Dialect returns the dialect name of the driver.
	Dialect() string
}

// Tx wraps transaction behavior around ExecQuerier.
type Tx interface {
	ExecQuerier
	Commit() error
	Rollback() error
}
