// Package store implements widget persistence over database/sql.
//
// Two drivers are supported: SQLite through mattn/go-sqlite3 (the default,
// file backed) and PostgreSQL through the pgx stdlib driver. Queries are
// built with squirrel using the placeholder format of the connected driver,
// and driver errors are mapped to the sentinels in errors.go by an
// [ErrorClassificator].
package store
