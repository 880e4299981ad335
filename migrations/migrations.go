// Package migrations embeds the schema files so binaries can apply them
// without shipping the directory alongside.
package migrations

import "embed"

//go:embed sqlite/*.sql postgres/*.sql
var FS embed.FS

// SQLiteSchema returns the initial SQLite schema.
func SQLiteSchema() (string, error) {
	data, err := FS.ReadFile("sqlite/000001_initial_schema.up.sql")
	return string(data), err
}

// PostgresSchema returns the initial PostgreSQL schema.
func PostgresSchema() (string, error) {
	data, err := FS.ReadFile("postgres/000001_initial_schema.up.sql")
	return string(data), err
}
