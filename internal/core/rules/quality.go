package rules

import (
	"math"
	"math/big"

	"github.com/shopspring/decimal"

	"mesa-auction/internal/core/domain"
)

// QualityBoostThreshold is the quality score an advertiser must exceed to
// have its bids boosted.
const QualityBoostThreshold uint64 = 700

var (
	qualityBoost = decimal.NewFromInt(150).Div(decimal.NewFromInt(100))
	noBoost      = decimal.NewFromInt(1)
)

// QualityMultiplier returns the factor applied to raw bids of an advertiser
// with the given quality score.
func QualityMultiplier(qualityScore uint64) decimal.Decimal {
	if qualityScore > QualityBoostThreshold {
		return qualityBoost
	}
	return noBoost
}

// QualityAdjustedBid scales raw by the advertiser's quality multiplier and
// floors the result. A nil profile is scored with the default quality score,
// so the function is defined for every identity.
func QualityAdjustedBid(raw uint64, profile *domain.AdvertiserProfile) uint64 {
	quality := domain.DefaultQualityScore
	if profile != nil {
		quality = profile.QualityScore
	}
	adjusted := decimalFromUint64(raw).Mul(QualityMultiplier(quality)).Floor()
	return uint64FromDecimal(adjusted)
}

func decimalFromUint64(v uint64) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(v), 0)
}

// uint64FromDecimal truncates d to an integer and clamps it to the uint64 range.
func uint64FromDecimal(d decimal.Decimal) uint64 {
	if d.Sign() <= 0 {
		return 0
	}
	b := d.BigInt()
	if !b.IsUint64() {
		return math.MaxUint64
	}
	return b.Uint64()
}
