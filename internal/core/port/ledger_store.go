package port

import (
	"context"

	"mesa-auction/internal/core/domain"
)

// LedgerReader exposes point reads over the auction ledger. Lookups of a
// missing key return a nil record and a nil error.
type LedgerReader interface {
	Auction(ctx context.Context, id uint64) (*domain.Auction, error)
	Advertiser(ctx context.Context, advertiser domain.Identity) (*domain.AdvertiserProfile, error)
	Bid(ctx context.Context, auctionID uint64, bidder domain.Identity) (*domain.Bid, error)
	Publisher(ctx context.Context, publisher domain.Identity) (*domain.PublisherVerification, error)
	Counters(ctx context.Context) (domain.LedgerCounters, error)
}

// LedgerTx is a read-write view used inside Update. Writes are staged and
// become visible to other callers only when the transaction commits.
type LedgerTx interface {
	LedgerReader

	PutAuction(ctx context.Context, auction domain.Auction) error
	PutAdvertiser(ctx context.Context, profile domain.AdvertiserProfile) error
	PutBid(ctx context.Context, bid domain.Bid) error
	PutPublisher(ctx context.Context, verification domain.PublisherVerification) error
	PutCounters(ctx context.Context, counters domain.LedgerCounters) error
}

// LedgerStore is the outbound persistence port of the auction engine.
// Implementations must run each Update atomically and in isolation from
// other Updates: either every staged write of fn is committed or none is.
// If fn returns an error nothing is written and that error is returned
// unchanged.
type LedgerStore interface {
	View(ctx context.Context, fn func(LedgerReader) error) error
	Update(ctx context.Context, fn func(LedgerTx) error) error
}
