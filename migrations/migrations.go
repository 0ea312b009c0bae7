// Package migrations embeds the SQL schema so the binary can bootstrap its
// own table without a migrations directory next to it.
package migrations

import "embed"

//go:embed postgres/*.sql
var FS embed.FS

// PostgresDir is the directory inside FS holding the postgres migrations.
const PostgresDir = "postgres"
