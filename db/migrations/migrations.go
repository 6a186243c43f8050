// Package migrations holds the SQL schema of the auction ledger.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS

// Version is the schema version the service runs against. Bump it together
// with every new migration pair.
const Version uint = 1
