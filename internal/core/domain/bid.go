package domain

// Bid is the live bid of one advertiser in one auction. A later bid from the
// same advertiser replaces the earlier record.
type Bid struct {
	AuctionID       uint64
	Bidder          Identity
	Amount          uint64
	PlacedAt        Tick
	QualityAdjusted uint64
	// Automated marks bids placed by an agent rather than by hand.
	Automated bool
}
