package postgres

import "embed"

// MigrationsFS carries the schema migrations so a deployed binary can
// migrate without the source tree present.
//
//go:embed migrations/*.sql
var MigrationsFS embed.FS
