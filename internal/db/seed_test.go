package db

import (
	"context"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mesa-auction/internal/adapter/memory"
	"mesa-auction/internal/core/domain"
	"mesa-auction/internal/core/port"
)

func TestSeedIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := memory.NewLedgerStore()

	created, err := Seed(ctx, store, rand.New(rand.NewPCG(1, 2)))
	require.NoError(t, err)
	assert.Len(t, created, seedPublishers+seedAdvertisers)

	err = store.View(ctx, func(r port.LedgerReader) error {
		v, err := r.Publisher(ctx, "demo-publisher-1")
		require.NoError(t, err)
		require.NotNil(t, v)
		assert.True(t, v.Verified)

		p, err := r.Advertiser(ctx, "demo-advertiser-2")
		require.NoError(t, err)
		require.NotNil(t, p)
		assert.True(t, p.AutoBidding)
		assert.GreaterOrEqual(t, p.MaxDailyBudget, uint64(1_000_000))
		assert.Equal(t, domain.DefaultReputationScore, p.ReputationScore)
		return nil
	})
	require.NoError(t, err)

	again, err := Seed(ctx, store, nil)
	require.NoError(t, err)
	assert.Empty(t, again)
}
