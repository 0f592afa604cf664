// Package leadscore exposes repository-level embedded assets, such as the
// database migrations applied by the migrate subcommand.
package leadscore

import "embed"

// Migrations contains the goose SQL migration files.
//
//go:embed migrations/*.sql
var Migrations embed.FS
