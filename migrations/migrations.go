// Package migrations embeds the SQL schema migrations shipped with studydash.
package migrations

import "embed"

//go:embed sqlite/*.sql
var FS embed.FS
