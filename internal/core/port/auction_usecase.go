package port

import (
	"context"

	"mesa-auction/internal/core/domain"
)

// AuctionUseCase defines the business operations of the auction engine. It
// is the primary port into the application domain. Every mutating call
// takes the authenticated caller and the current tick explicitly; the
// implementation never derives either on its own.
type AuctionUseCase interface {
	// RegisterAdvertiser creates or overwrites the caller's advertiser
	// profile with default scores and an empty history.
	RegisterAdvertiser(ctx context.Context, caller domain.Identity, now domain.Tick, maxDailyBudget uint64, autoBidding bool) (*domain.AdvertiserProfile, error)

	// VerifyPublisher records verification data for a publisher. Only the
	// platform operator may call it.
	VerifyPublisher(ctx context.Context, caller domain.Identity, now domain.Tick, req VerifyPublisherReq) (*domain.PublisherVerification, error)

	// CreateAuction opens an auction owned by the caller, who must be a
	// verified publisher. It returns the id of the new auction.
	CreateAuction(ctx context.Context, caller domain.Identity, now domain.Tick, req CreateAuctionReq) (uint64, error)

	// PlaceBid records the caller's bid and, if its quality-adjusted value
	// beats the current leader, makes the caller the winner. It returns the
	// quality-adjusted bid. A rejected bid changes nothing.
	PlaceBid(ctx context.Context, caller domain.Identity, now domain.Tick, auctionID uint64, amount uint64) (uint64, error)

	// Settle closes an auction whose bidding window has passed and splits
	// the winning amount between platform fee and publisher payout. Any
	// caller may trigger it; it takes effect once.
	Settle(ctx context.Context, caller domain.Identity, now domain.Tick, auctionID uint64) (*SettlementResult, error)

	// ReportCampaignOutcome folds the result of a delivered campaign into an
	// advertiser's history. Only the platform operator may call it.
	ReportCampaignOutcome(ctx context.Context, caller domain.Identity, now domain.Tick, advertiser domain.Identity, outcome CampaignOutcome) (*domain.AdvertiserProfile, error)

	// QualityAdjustedBid previews the adjusted value of a raw bid.
	QualityAdjustedBid(ctx context.Context, advertiser domain.Identity, raw uint64) (uint64, error)
	// FraudScore previews the fraud score a bid would receive.
	FraudScore(ctx context.Context, advertiser domain.Identity, bidAmount uint64) (uint64, error)

	// GetAuction returns the auction with its status as observed at now.
	GetAuction(ctx context.Context, now domain.Tick, id uint64) (*domain.Auction, error)
	GetAdvertiser(ctx context.Context, advertiser domain.Identity) (*domain.AdvertiserProfile, error)
	GetBid(ctx context.Context, auctionID uint64, bidder domain.Identity) (*domain.Bid, error)
	GetPublisher(ctx context.Context, publisher domain.Identity) (*domain.PublisherVerification, error)
	GetLedger(ctx context.Context) (domain.LedgerCounters, error)
}

type VerifyPublisherReq struct {
	Publisher       domain.Identity
	DomainAuthority uint64
	MonthlyTraffic  uint64
	ContentQuality  uint64
	PayoutAddress   string
}

type CreateAuctionReq struct {
	Category   string
	Audience   string
	MinimumBid uint64
}

// CampaignOutcome is what the delivery side reports after a campaign ran.
// Nil scores leave the current score untouched.
type CampaignOutcome struct {
	Spent           uint64
	Successful      bool
	Fraudulent      bool
	ReputationScore *uint64
	QualityScore    *uint64
}

// SettlementResult describes how a settled auction was paid out. Winner is
// nil and all amounts are zero when nobody bid.
type SettlementResult struct {
	AuctionID       uint64
	Winner          *domain.Identity
	Revenue         uint64
	PlatformFee     uint64
	PublisherPayout uint64
}
