// Package migrations embeds the goose SQL migrations so the binary can apply them on startup.
package migrations

import "embed"

// FS holds every migration file, named NNNNN_description.sql
//
//go:embed *.sql
var FS embed.FS
