package domain

const (
	DefaultReputationScore uint64 = 500
	DefaultQualityScore    uint64 = 500
)

// AdvertiserProfile is the bidding account of an advertiser. Spend figures
// are in integer currency units.
type AdvertiserProfile struct {
	Advertiser          Identity
	ReputationScore     uint64
	QualityScore        uint64
	TotalSpent          uint64
	SuccessfulCampaigns uint64
	FraudIncidents      uint64
	AutoBidding         bool
	MaxDailyBudget      uint64
	CurrentDailySpent   uint64
	// SpendDay is the logical day CurrentDailySpent was committed in.
	SpendDay uint64
}

// NewAdvertiserProfile returns a freshly registered profile with default
// scores and empty history.
func NewAdvertiserProfile(advertiser Identity, maxDailyBudget uint64, autoBidding bool) AdvertiserProfile {
	return AdvertiserProfile{
		Advertiser:      advertiser,
		ReputationScore: DefaultReputationScore,
		QualityScore:    DefaultQualityScore,
		AutoBidding:     autoBidding,
		MaxDailyBudget:  maxDailyBudget,
	}
}

// DailySpent returns the spend already committed during day. Spend recorded
// against an earlier day no longer counts.
func (p AdvertiserProfile) DailySpent(day uint64) uint64 {
	if p.SpendDay != day {
		return 0
	}
	return p.CurrentDailySpent
}

// CanSpend reports whether amount fits in what is left of the daily budget.
func (p AdvertiserProfile) CanSpend(day, amount uint64) bool {
	spent := p.DailySpent(day)
	if spent > p.MaxDailyBudget {
		return false
	}
	return amount <= p.MaxDailyBudget-spent
}
