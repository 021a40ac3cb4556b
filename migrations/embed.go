// Package migrations embeds the forward-only schema migrations applied at
// startup.
package migrations

import "embed"

//go:embed *.sql
var Files embed.FS
