package rules

import (
	"math"
	"testing"

	"github.com/peterldowns/testy/assert"
	"github.com/peterldowns/testy/check"

	"mesa-auction/internal/core/domain"
)

func TestPlatformFee(t *testing.T) {
	tests := []struct {
		revenue  uint64
		expected uint64
	}{
		{0, 0},
		{33, 0},
		{34, 1},
		{100_000, 3_000},
		{150_000, 4_500},
		{1_000_000, 30_000},
		{1_000_001, 30_000},
	}

	for _, tt := range tests {
		check.Equal(t, tt.expected, PlatformFee(tt.revenue))
	}
}

func TestPlatformFee_NoOverflow(t *testing.T) {
	fee := PlatformFee(math.MaxUint64)
	check.True(t, fee > 0)
	check.True(t, fee < math.MaxUint64)
}

func TestCollectFee(t *testing.T) {
	ledger := domain.NewLedgerCounters()
	ledger.TotalPlatformRevenue = 10

	fee := CollectFee(&ledger, 1_000_000)

	assert.Equal(t, uint64(30_000), fee)
	check.Equal(t, uint64(30_010), ledger.TotalPlatformRevenue)
	check.Equal(t, domain.FirstAuctionID, ledger.NextAuctionID)
}

func TestCollectFee_SaturatesRevenue(t *testing.T) {
	ledger := domain.LedgerCounters{TotalPlatformRevenue: math.MaxUint64 - 1}

	CollectFee(&ledger, 1_000_000)

	check.Equal(t, uint64(math.MaxUint64), ledger.TotalPlatformRevenue)
}
