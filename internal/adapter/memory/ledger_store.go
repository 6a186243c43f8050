package memory

import (
	"context"
	"sync"

	"mesa-auction/internal/core/domain"
	"mesa-auction/internal/core/port"
)

type bidKey struct {
	auctionID uint64
	bidder    domain.Identity
}

type tables struct {
	auctions    map[uint64]domain.Auction
	advertisers map[domain.Identity]domain.AdvertiserProfile
	bids        map[bidKey]domain.Bid
	publishers  map[domain.Identity]domain.PublisherVerification
	counters    *domain.LedgerCounters
}

func newTables() tables {
	return tables{
		auctions:    make(map[uint64]domain.Auction),
		advertisers: make(map[domain.Identity]domain.AdvertiserProfile),
		bids:        make(map[bidKey]domain.Bid),
		publishers:  make(map[domain.Identity]domain.PublisherVerification),
	}
}

// LedgerStore implements port.LedgerStore in process memory. Updates are
// serialized by a single write lock and staged in an overlay that is merged
// only when the callback succeeds.
type LedgerStore struct {
	mu       sync.RWMutex
	data     tables
	counters domain.LedgerCounters
}

// NewLedgerStore returns an empty ledger.
func NewLedgerStore() *LedgerStore {
	return &LedgerStore{
		data:     newTables(),
		counters: domain.NewLedgerCounters(),
	}
}

func (s *LedgerStore) View(ctx context.Context, fn func(port.LedgerReader) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(&tx{store: s})
}

func (s *LedgerStore) Update(ctx context.Context, fn func(port.LedgerTx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	t := &tx{store: s, staged: newTables()}
	if err := fn(t); err != nil {
		return err
	}
	s.commit(t.staged)
	return nil
}

func (s *LedgerStore) commit(staged tables) {
	for k, v := range staged.auctions {
		s.data.auctions[k] = v
	}
	for k, v := range staged.advertisers {
		s.data.advertisers[k] = v
	}
	for k, v := range staged.bids {
		s.data.bids[k] = v
	}
	for k, v := range staged.publishers {
		s.data.publishers[k] = v
	}
	if staged.counters != nil {
		s.counters = *staged.counters
	}
}

// tx reads through its own staged writes before falling back to committed
// state. Every value handed out is a copy.
type tx struct {
	store  *LedgerStore
	staged tables
}

func (t *tx) Auction(_ context.Context, id uint64) (*domain.Auction, error) {
	a, ok := t.staged.auctions[id]
	if !ok {
		a, ok = t.store.data.auctions[id]
	}
	if !ok {
		return nil, nil
	}
	out := a.Clone()
	return &out, nil
}

func (t *tx) Advertiser(_ context.Context, advertiser domain.Identity) (*domain.AdvertiserProfile, error) {
	p, ok := t.staged.advertisers[advertiser]
	if !ok {
		p, ok = t.store.data.advertisers[advertiser]
	}
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (t *tx) Bid(_ context.Context, auctionID uint64, bidder domain.Identity) (*domain.Bid, error) {
	key := bidKey{auctionID: auctionID, bidder: bidder}
	b, ok := t.staged.bids[key]
	if !ok {
		b, ok = t.store.data.bids[key]
	}
	if !ok {
		return nil, nil
	}
	return &b, nil
}

func (t *tx) Publisher(_ context.Context, publisher domain.Identity) (*domain.PublisherVerification, error) {
	v, ok := t.staged.publishers[publisher]
	if !ok {
		v, ok = t.store.data.publishers[publisher]
	}
	if !ok {
		return nil, nil
	}
	return &v, nil
}

func (t *tx) Counters(context.Context) (domain.LedgerCounters, error) {
	if t.staged.counters != nil {
		return *t.staged.counters, nil
	}
	return t.store.counters, nil
}

func (t *tx) PutAuction(_ context.Context, auction domain.Auction) error {
	t.staged.auctions[auction.ID] = auction.Clone()
	return nil
}

func (t *tx) PutAdvertiser(_ context.Context, profile domain.AdvertiserProfile) error {
	t.staged.advertisers[profile.Advertiser] = profile
	return nil
}

func (t *tx) PutBid(_ context.Context, bid domain.Bid) error {
	t.staged.bids[bidKey{auctionID: bid.AuctionID, bidder: bid.Bidder}] = bid
	return nil
}

func (t *tx) PutPublisher(_ context.Context, verification domain.PublisherVerification) error {
	t.staged.publishers[verification.Publisher] = verification
	return nil
}

func (t *tx) PutCounters(_ context.Context, counters domain.LedgerCounters) error {
	c := counters
	t.staged.counters = &c
	return nil
}
