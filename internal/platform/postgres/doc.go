// Package postgres provides PostgreSQL-specific implementations for the data
// storage interfaces (repositories) defined in the internal/store package.
// It owns the connection pool, the embedded schema migrations, and the
// mapping between domain entities and the usuarios/questoes tables.
package postgres
