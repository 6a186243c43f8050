package rules

import (
	"math"
	"testing"

	"github.com/peterldowns/testy/check"

	"mesa-auction/internal/core/domain"
)

func TestFraudScore(t *testing.T) {
	tests := []struct {
		name     string
		profile  *domain.AdvertiserProfile
		bid      uint64
		expected uint64
	}{
		{
			name:     "unknown advertiser scores zero",
			profile:  nil,
			bid:      1_000_000,
			expected: 0,
		},
		{
			name:     "new advertiser gets no deviation signal",
			profile:  &domain.AdvertiserProfile{},
			bid:      9_000_000,
			expected: 0,
		},
		{
			name:     "bid equal to average",
			profile:  &domain.AdvertiserProfile{TotalSpent: 400_000, SuccessfulCampaigns: 4},
			bid:      100_000,
			expected: 0,
		},
		{
			name:     "bid above average",
			profile:  &domain.AdvertiserProfile{TotalSpent: 400_000, SuccessfulCampaigns: 4},
			bid:      150_000,
			expected: 50,
		},
		{
			name:     "bid below average",
			profile:  &domain.AdvertiserProfile{TotalSpent: 400_000, SuccessfulCampaigns: 4},
			bid:      30_000,
			expected: 70,
		},
		{
			name:     "deviation truncates",
			profile:  &domain.AdvertiserProfile{TotalSpent: 300, SuccessfulCampaigns: 1},
			bid:      301,
			expected: 0,
		},
		{
			name:     "fraud history without deviation",
			profile:  &domain.AdvertiserProfile{FraudIncidents: 3},
			bid:      100_000,
			expected: 60,
		},
		{
			name:     "deviation plus history",
			profile:  &domain.AdvertiserProfile{TotalSpent: 100_000, SuccessfulCampaigns: 1, FraudIncidents: 2},
			bid:      140_000,
			expected: 80,
		},
		{
			name:     "huge deviation saturates",
			profile:  &domain.AdvertiserProfile{TotalSpent: 1, SuccessfulCampaigns: 1},
			bid:      math.MaxUint64,
			expected: math.MaxUint64,
		},
		{
			name:     "huge history saturates",
			profile:  &domain.AdvertiserProfile{FraudIncidents: math.MaxUint64},
			bid:      1,
			expected: math.MaxUint64,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			check.Equal(t, tt.expected, FraudScore(tt.profile, tt.bid))
		})
	}
}

func TestIsSuspicious(t *testing.T) {
	check.False(t, IsSuspicious(79))
	check.True(t, IsSuspicious(80))
	check.True(t, IsSuspicious(math.MaxUint64))
}

func TestAverageHistoricalBid(t *testing.T) {
	check.Equal(t, uint64(0), AverageHistoricalBid(domain.AdvertiserProfile{TotalSpent: 500}))
	check.Equal(t, uint64(166), AverageHistoricalBid(domain.AdvertiserProfile{TotalSpent: 500, SuccessfulCampaigns: 3}))
}
