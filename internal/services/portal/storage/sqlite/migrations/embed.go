package migrations

import "embed"

// FS contains embedded SQLite migrations for portal session storage.
//
//go:embed *.sql
var FS embed.FS
