package domain

// AuctionStatus is the lifecycle state of an auction.
type AuctionStatus string

const (
	StatusActive  AuctionStatus = "active"
	StatusEnded   AuctionStatus = "ended"
	StatusSettled AuctionStatus = "settled"
)

// Auction is a time-bounded sale of one ad slot. Amounts are stored in
// integer currency units. WinningBid holds the quality-adjusted amount of
// the current leader, never the raw bid.
type Auction struct {
	ID            uint64
	Publisher     Identity
	Category      string
	Audience      string
	OpenedAt      Tick
	ClosesAt      Tick
	MinimumBid    uint64
	WinningBid    uint64
	WinningBidder *Identity
	Status        AuctionStatus
	// Impressions and Clicks are maintained by the delivery pipeline.
	Impressions uint64
	Clicks      uint64
}

// NewAuction opens an auction at now that closes duration ticks later.
func NewAuction(id uint64, publisher Identity, category, audience string, minimumBid uint64, now, duration Tick) Auction {
	return Auction{
		ID:         id,
		Publisher:  publisher,
		Category:   category,
		Audience:   audience,
		OpenedAt:   now,
		ClosesAt:   now.AddTicks(duration),
		MinimumBid: minimumBid,
		Status:     StatusActive,
	}
}

// AcceptsBids reports whether a bid submitted at now can be admitted.
func (a Auction) AcceptsBids(now Tick) bool {
	return a.Status == StatusActive && now < a.ClosesAt
}

// EffectiveStatus is the status as observed at now. An active auction past
// its closing tick reads as ended even though nothing has persisted that yet.
func (a Auction) EffectiveStatus(now Tick) AuctionStatus {
	if a.Status == StatusActive && now >= a.ClosesAt {
		return StatusEnded
	}
	return a.Status
}

// HasWinner reports whether any bid has taken the lead.
func (a Auction) HasWinner() bool {
	return a.WinningBidder != nil
}

// CTRBasisPoints returns clicks per impression in basis points.
func (a Auction) CTRBasisPoints() uint64 {
	if a.Impressions == 0 {
		return 0
	}
	return a.Clicks * 10000 / a.Impressions
}

// Clone returns a copy that shares no memory with a.
func (a Auction) Clone() Auction {
	if a.WinningBidder != nil {
		w := *a.WinningBidder
		a.WinningBidder = &w
	}
	return a
}
