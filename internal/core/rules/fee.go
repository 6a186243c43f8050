package rules

import (
	"math"

	"github.com/shopspring/decimal"

	"mesa-auction/internal/core/domain"
)

// FeeBasisPoints is the platform's cut of a settled auction (3%).
const FeeBasisPoints int64 = 300

var basisPointsScale = decimal.NewFromInt(10000)

// PlatformFee returns floor(revenue * FeeBasisPoints / 10000).
func PlatformFee(revenue uint64) uint64 {
	fee := decimalFromUint64(revenue).
		Mul(decimal.NewFromInt(FeeBasisPoints)).
		Div(basisPointsScale).
		Floor()
	return uint64FromDecimal(fee)
}

// CollectFee computes the fee on revenue and accrues it to the platform
// revenue counter. It returns the fee so the caller can derive the
// publisher payout as revenue minus fee.
func CollectFee(ledger *domain.LedgerCounters, revenue uint64) uint64 {
	fee := PlatformFee(revenue)
	if ledger.TotalPlatformRevenue > math.MaxUint64-fee {
		ledger.TotalPlatformRevenue = math.MaxUint64
	} else {
		ledger.TotalPlatformRevenue += fee
	}
	return fee
}
