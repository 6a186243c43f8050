package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mesa-auction/internal/config/configs"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("AUTH_SECRET", "s3cret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.Equal(t, configs.StoreMemory, cfg.Store.NormalizedDriver())
	assert.Equal(t, "operator", cfg.Auth.Operator)
	assert.Equal(t, uint64(144), cfg.Auction.DurationTicks)
	assert.Equal(t, uint64(100_000), cfg.Auction.MinimumBidFloor)
	assert.Equal(t, 10*time.Minute, cfg.Auction.TickInterval)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), cfg.Auction.Genesis.UTC())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("AUTH_SECRET", "s3cret")
	t.Setenv("STORE_DRIVER", "PG")
	t.Setenv("AUCTION_DAY_LENGTH_TICKS", "0")
	t.Setenv("PSQL_ADDRESS", "postgres://u:p@db:5432/ledger?sslmode=disable")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, configs.StorePostgres, cfg.Store.NormalizedDriver())
	assert.Equal(t, uint64(0), cfg.Auction.DayLengthTicks)
	assert.Equal(t, "db:5432", cfg.Psql.Addr.Host)
}

func TestLoadRequiresSecret(t *testing.T) {
	t.Setenv("AUTH_SECRET", "")

	_, err := Load()
	assert.Error(t, err)
}
