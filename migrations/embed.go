// Package migrations embeds the schema migrations applied by "fhir2-server migrate".
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
