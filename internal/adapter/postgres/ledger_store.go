package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"mesa-auction/internal/core/domain"
	"mesa-auction/internal/core/port"
)

// maxAttempts bounds how often an Update is replayed after a serialization
// failure.
const maxAttempts = 3

// LedgerStore implements port.LedgerStore on PostgreSQL. Every Update runs in
// a SERIALIZABLE transaction and locks the rows it reads.
type LedgerStore struct {
	pool *pgxpool.Pool
}

func NewLedgerStore(pool *pgxpool.Pool) *LedgerStore {
	return &LedgerStore{pool: pool}
}

var _ port.LedgerStore = (*LedgerStore)(nil)

// View runs fn in a read-only snapshot.
func (s *LedgerStore) View(ctx context.Context, fn func(port.LedgerReader) error) error {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()
	return fn(&ledgerTx{tx: tx})
}

// Update runs fn in a serializable transaction. fn may be called again when
// the database aborts the transaction with a serialization failure.
func (s *LedgerStore) Update(ctx context.Context, fn func(port.LedgerTx) error) error {
	for attempt := 1; ; attempt++ {
		err := s.update(ctx, fn)
		if attempt == maxAttempts || !isSerializationFailure(err) {
			return err
		}
	}
}

func (s *LedgerStore) update(ctx context.Context, fn func(port.LedgerTx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()
	return fn(&ledgerTx{tx: tx, lock: true})
}

func isSerializationFailure(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && (pgErr.Code == "40001" || pgErr.Code == "40P01")
}

type ledgerTx struct {
	tx   pgx.Tx
	lock bool
}

func (t *ledgerTx) forUpdate(query string) string {
	if t.lock {
		return query + " FOR UPDATE"
	}
	return query
}

func (t *ledgerTx) Auction(ctx context.Context, id uint64) (*domain.Auction, error) {
	query := t.forUpdate(`
        SELECT id::text, publisher, category, audience, opened_at::text, closes_at::text,
               minimum_bid::text, winning_bid::text, winning_bidder, status,
               impressions::text, clicks::text
        FROM auctions
        WHERE id = $1::numeric`)

	var (
		a      domain.Auction
		bidder *string
		status string
	)
	err := t.tx.QueryRow(ctx, query, num(id)).Scan(
		u64(&a.ID), &a.Publisher, &a.Category, &a.Audience, u64(&a.OpenedAt), u64(&a.ClosesAt),
		u64(&a.MinimumBid), u64(&a.WinningBid), &bidder, &status,
		u64(&a.Impressions), u64(&a.Clicks),
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select auction %d: %w", id, err)
	}
	a.Status = domain.AuctionStatus(status)
	if bidder != nil {
		w := domain.Identity(*bidder)
		a.WinningBidder = &w
	}
	return &a, nil
}

func (t *ledgerTx) Advertiser(ctx context.Context, advertiser domain.Identity) (*domain.AdvertiserProfile, error) {
	query := t.forUpdate(`
        SELECT advertiser, reputation_score::text, quality_score::text, total_spent::text,
               successful_campaigns::text, fraud_incidents::text, auto_bidding,
               max_daily_budget::text, current_daily_spent::text, spend_day::text
        FROM advertiser_profiles
        WHERE advertiser = $1`)

	var p domain.AdvertiserProfile
	err := t.tx.QueryRow(ctx, query, string(advertiser)).Scan(
		&p.Advertiser, u64(&p.ReputationScore), u64(&p.QualityScore), u64(&p.TotalSpent),
		u64(&p.SuccessfulCampaigns), u64(&p.FraudIncidents), &p.AutoBidding,
		u64(&p.MaxDailyBudget), u64(&p.CurrentDailySpent), u64(&p.SpendDay),
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select advertiser %q: %w", advertiser, err)
	}
	return &p, nil
}

func (t *ledgerTx) Bid(ctx context.Context, auctionID uint64, bidder domain.Identity) (*domain.Bid, error) {
	query := t.forUpdate(`
        SELECT auction_id::text, bidder, amount::text, placed_at::text, quality_adjusted::text, automated
        FROM bids
        WHERE auction_id = $1::numeric AND bidder = $2`)

	var b domain.Bid
	err := t.tx.QueryRow(ctx, query, num(auctionID), string(bidder)).Scan(
		u64(&b.AuctionID), &b.Bidder, u64(&b.Amount), u64(&b.PlacedAt), u64(&b.QualityAdjusted), &b.Automated,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select bid %d/%q: %w", auctionID, bidder, err)
	}
	return &b, nil
}

func (t *ledgerTx) Publisher(ctx context.Context, publisher domain.Identity) (*domain.PublisherVerification, error) {
	query := t.forUpdate(`
        SELECT publisher, verified, domain_authority::text, monthly_traffic::text,
               content_quality::text, payout_address
        FROM publisher_verifications
        WHERE publisher = $1`)

	var v domain.PublisherVerification
	err := t.tx.QueryRow(ctx, query, string(publisher)).Scan(
		&v.Publisher, &v.Verified, u64(&v.DomainAuthority), u64(&v.MonthlyTraffic),
		u64(&v.ContentQuality), &v.PayoutAddress,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select publisher %q: %w", publisher, err)
	}
	return &v, nil
}

func (t *ledgerTx) Counters(ctx context.Context) (domain.LedgerCounters, error) {
	query := t.forUpdate(`
        SELECT next_auction_id::text, total_platform_revenue::text, active_auctions::text
        FROM platform_ledger
        WHERE id = 1`)

	var c domain.LedgerCounters
	err := t.tx.QueryRow(ctx, query).Scan(u64(&c.NextAuctionID), u64(&c.TotalPlatformRevenue), u64(&c.ActiveAuctions))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.NewLedgerCounters(), nil
	}
	if err != nil {
		return domain.LedgerCounters{}, fmt.Errorf("select ledger counters: %w", err)
	}
	return c, nil
}

func (t *ledgerTx) PutAuction(ctx context.Context, a domain.Auction) error {
	var bidder *string
	if a.WinningBidder != nil {
		w := string(*a.WinningBidder)
		bidder = &w
	}
	_, err := t.tx.Exec(ctx, `
        INSERT INTO auctions (id, publisher, category, audience, opened_at, closes_at,
                              minimum_bid, winning_bid, winning_bidder, status, impressions, clicks)
        VALUES ($1::numeric, $2, $3, $4, $5::numeric, $6::numeric,
                $7::numeric, $8::numeric, $9, $10, $11::numeric, $12::numeric)
        ON CONFLICT (id) DO UPDATE SET
            winning_bid    = EXCLUDED.winning_bid,
            winning_bidder = EXCLUDED.winning_bidder,
            status         = EXCLUDED.status,
            impressions    = EXCLUDED.impressions,
            clicks         = EXCLUDED.clicks`,
		num(a.ID), string(a.Publisher), a.Category, a.Audience, num(a.OpenedAt), num(a.ClosesAt),
		num(a.MinimumBid), num(a.WinningBid), bidder, string(a.Status), num(a.Impressions), num(a.Clicks),
	)
	if err != nil {
		return fmt.Errorf("upsert auction %d: %w", a.ID, err)
	}
	return nil
}

func (t *ledgerTx) PutAdvertiser(ctx context.Context, p domain.AdvertiserProfile) error {
	_, err := t.tx.Exec(ctx, `
        INSERT INTO advertiser_profiles (advertiser, reputation_score, quality_score, total_spent,
                                         successful_campaigns, fraud_incidents, auto_bidding,
                                         max_daily_budget, current_daily_spent, spend_day)
        VALUES ($1, $2::numeric, $3::numeric, $4::numeric, $5::numeric, $6::numeric, $7,
                $8::numeric, $9::numeric, $10::numeric)
        ON CONFLICT (advertiser) DO UPDATE SET
            reputation_score     = EXCLUDED.reputation_score,
            quality_score        = EXCLUDED.quality_score,
            total_spent          = EXCLUDED.total_spent,
            successful_campaigns = EXCLUDED.successful_campaigns,
            fraud_incidents      = EXCLUDED.fraud_incidents,
            auto_bidding         = EXCLUDED.auto_bidding,
            max_daily_budget     = EXCLUDED.max_daily_budget,
            current_daily_spent  = EXCLUDED.current_daily_spent,
            spend_day            = EXCLUDED.spend_day`,
		string(p.Advertiser), num(p.ReputationScore), num(p.QualityScore), num(p.TotalSpent),
		num(p.SuccessfulCampaigns), num(p.FraudIncidents), p.AutoBidding,
		num(p.MaxDailyBudget), num(p.CurrentDailySpent), num(p.SpendDay),
	)
	if err != nil {
		return fmt.Errorf("upsert advertiser %q: %w", p.Advertiser, err)
	}
	return nil
}

func (t *ledgerTx) PutBid(ctx context.Context, b domain.Bid) error {
	_, err := t.tx.Exec(ctx, `
        INSERT INTO bids (auction_id, bidder, amount, placed_at, quality_adjusted, automated)
        VALUES ($1::numeric, $2, $3::numeric, $4::numeric, $5::numeric, $6)
        ON CONFLICT (auction_id, bidder) DO UPDATE SET
            amount           = EXCLUDED.amount,
            placed_at        = EXCLUDED.placed_at,
            quality_adjusted = EXCLUDED.quality_adjusted,
            automated        = EXCLUDED.automated`,
		num(b.AuctionID), string(b.Bidder), num(b.Amount), num(b.PlacedAt), num(b.QualityAdjusted), b.Automated,
	)
	if err != nil {
		return fmt.Errorf("upsert bid %d/%q: %w", b.AuctionID, b.Bidder, err)
	}
	return nil
}

func (t *ledgerTx) PutPublisher(ctx context.Context, v domain.PublisherVerification) error {
	_, err := t.tx.Exec(ctx, `
        INSERT INTO publisher_verifications (publisher, verified, domain_authority, monthly_traffic,
                                             content_quality, payout_address)
        VALUES ($1, $2, $3::numeric, $4::numeric, $5::numeric, $6)
        ON CONFLICT (publisher) DO UPDATE SET
            verified         = EXCLUDED.verified,
            domain_authority = EXCLUDED.domain_authority,
            monthly_traffic  = EXCLUDED.monthly_traffic,
            content_quality  = EXCLUDED.content_quality,
            payout_address   = EXCLUDED.payout_address`,
		string(v.Publisher), v.Verified, num(v.DomainAuthority), num(v.MonthlyTraffic),
		num(v.ContentQuality), v.PayoutAddress,
	)
	if err != nil {
		return fmt.Errorf("upsert publisher %q: %w", v.Publisher, err)
	}
	return nil
}

func (t *ledgerTx) PutCounters(ctx context.Context, c domain.LedgerCounters) error {
	_, err := t.tx.Exec(ctx, `
        INSERT INTO platform_ledger (id, next_auction_id, total_platform_revenue, active_auctions)
        VALUES (1, $1::numeric, $2::numeric, $3::numeric)
        ON CONFLICT (id) DO UPDATE SET
            next_auction_id        = EXCLUDED.next_auction_id,
            total_platform_revenue = EXCLUDED.total_platform_revenue,
            active_auctions        = EXCLUDED.active_auctions`,
		num(c.NextAuctionID), num(c.TotalPlatformRevenue), num(c.ActiveAuctions),
	)
	if err != nil {
		return fmt.Errorf("update ledger counters: %w", err)
	}
	return nil
}

// num renders an unsigned value for a $n::numeric parameter. int8 cannot
// hold the upper half of the uint64 range.
func num[T ~uint64](v T) string {
	return strconv.FormatUint(uint64(v), 10)
}

// uintScanner reads a NUMERIC column selected as text.
type uintScanner[T ~uint64] struct {
	dst *T
}

func u64[T ~uint64](dst *T) uintScanner[T] {
	return uintScanner[T]{dst: dst}
}

func (s uintScanner[T]) Scan(src any) error {
	var raw string
	switch v := src.(type) {
	case string:
		raw = v
	case []byte:
		raw = string(v)
	case nil:
		return errors.New("unexpected NULL numeric")
	default:
		return fmt.Errorf("cannot scan %T into uint64", src)
	}
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return err
	}
	*s.dst = T(n)
	return nil
}
