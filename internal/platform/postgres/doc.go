// Package postgres provides the PostgreSQL implementations of the
// interfaces in internal/store, together with connection setup and schema
// migrations. Queries go through database/sql with the pgx stdlib driver.
package postgres
