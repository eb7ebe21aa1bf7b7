// Package migrations embeds the goose SQL migrations of the service database.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
