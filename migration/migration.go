// Package migration embeds the schema applied before the Postgres export.
package migration

import "embed"

//go:embed *.sql
var FS embed.FS
