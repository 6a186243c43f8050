package domain

// PublisherVerification is written by the platform operator and gates who
// may open auctions.
type PublisherVerification struct {
	Publisher       Identity
	Verified        bool
	DomainAuthority uint64
	MonthlyTraffic  uint64
	ContentQuality  uint64
	PayoutAddress   string
}

// LedgerCounters are the platform-wide scalars kept next to the records.
// ActiveAuctions may over-count auctions that ended but were never settled.
type LedgerCounters struct {
	NextAuctionID        uint64
	TotalPlatformRevenue uint64
	ActiveAuctions       uint64
}

// FirstAuctionID is the id handed to the first auction ever created.
const FirstAuctionID uint64 = 1

// NewLedgerCounters returns the counters of an empty ledger.
func NewLedgerCounters() LedgerCounters {
	return LedgerCounters{NextAuctionID: FirstAuctionID}
}
