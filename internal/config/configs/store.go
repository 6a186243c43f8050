package configs

import "strings"

const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
)

// Store selects where the ledger lives. Driver is "memory" (default) or
// "postgres".
type Store struct {
	Driver string `env:"DRIVER" envDefault:"memory"`
}

// NormalizedDriver returns the lower-cased driver name, falling back to
// memory for unknown values.
func (c Store) NormalizedDriver() string {
	switch strings.ToLower(c.Driver) {
	case StorePostgres, "pg", "psql":
		return StorePostgres
	default:
		return StoreMemory
	}
}
