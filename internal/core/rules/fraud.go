package rules

import (
	"math"
	"math/bits"

	"mesa-auction/internal/core/domain"
)

const (
	// FraudThreshold is the lowest score at which a bid is refused.
	FraudThreshold uint64 = 80
	// FraudIncidentWeight is added to the score per confirmed past incident.
	FraudIncidentWeight uint64 = 20
)

// AverageHistoricalBid is the advertiser's total spend divided by its
// successful campaigns, or 0 before the first success.
func AverageHistoricalBid(profile domain.AdvertiserProfile) uint64 {
	if profile.SuccessfulCampaigns == 0 {
		return 0
	}
	return profile.TotalSpent / profile.SuccessfulCampaigns
}

// FraudScore rates how suspicious a bid is for this advertiser: the
// percentage deviation from its historical average plus a weight per past
// fraud incident. Advertisers without a historical average get no deviation
// component at all. A nil profile scores 0. The score saturates at
// math.MaxUint64.
func FraudScore(profile *domain.AdvertiserProfile, bidAmount uint64) uint64 {
	if profile == nil {
		return 0
	}
	deviation := deviationPercent(bidAmount, AverageHistoricalBid(*profile))

	hi, weight := bits.Mul64(profile.FraudIncidents, FraudIncidentWeight)
	if hi != 0 {
		return math.MaxUint64
	}
	score, carry := bits.Add64(deviation, weight, 0)
	if carry != 0 {
		return math.MaxUint64
	}
	return score
}

// IsSuspicious reports whether score reaches the rejection threshold.
func IsSuspicious(score uint64) bool {
	return score >= FraudThreshold
}

// deviationPercent returns |bid-avg|*100/avg computed without overflow.
func deviationPercent(bid, avg uint64) uint64 {
	if avg == 0 {
		return 0
	}
	diff := bid - avg
	if bid < avg {
		diff = avg - bid
	}
	hi, lo := bits.Mul64(diff, 100)
	if hi >= avg {
		return math.MaxUint64
	}
	q, _ := bits.Div64(hi, lo, avg)
	return q
}
