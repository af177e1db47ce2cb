// Package migrations embeds the goose SQL migrations for the postgres schema.
package migrations

import "embed"

// Migrations holds the embedded SQL migration files, applied on startup.
//
//go:embed *.sql
var Migrations embed.FS
