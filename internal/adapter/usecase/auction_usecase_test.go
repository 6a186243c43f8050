package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math/rand"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mesa-auction/internal/adapter/memory"
	"mesa-auction/internal/core/domain"
	"mesa-auction/internal/core/port"
	"mesa-auction/internal/core/port/mocks"
	"mesa-auction/internal/obs"
)

const (
	operator  domain.Identity = "operator"
	publisher domain.Identity = "publisher"
)

type fixture struct {
	ctx   context.Context
	store *memory.LedgerStore
	svc   *AuctionUseCase
}

func newFixture(t *testing.T, opts Options) *fixture {
	t.Helper()
	store := memory.NewLedgerStore()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewAuctionUseCase(store, opts, logger, obs.NewMetrics(prometheus.NewRegistry()))
	return &fixture{ctx: context.Background(), store: store, svc: svc}
}

func defaultFixture(t *testing.T) *fixture {
	return newFixture(t, DefaultOptions(operator))
}

func (f *fixture) verify(t *testing.T, pub domain.Identity) {
	t.Helper()
	_, err := f.svc.VerifyPublisher(f.ctx, operator, 0, port.VerifyPublisherReq{Publisher: pub, DomainAuthority: 60})
	require.NoError(t, err)
}

func (f *fixture) openAuction(t *testing.T, now domain.Tick, minimumBid uint64) uint64 {
	t.Helper()
	id, err := f.svc.CreateAuction(f.ctx, publisher, now, port.CreateAuctionReq{Category: "sports", Audience: "18-34", MinimumBid: minimumBid})
	require.NoError(t, err)
	return id
}

func (f *fixture) register(t *testing.T, adv domain.Identity, budget uint64) {
	t.Helper()
	_, err := f.svc.RegisterAdvertiser(f.ctx, adv, 0, budget, false)
	require.NoError(t, err)
}

func (f *fixture) setQuality(t *testing.T, adv domain.Identity, quality uint64) {
	t.Helper()
	_, err := f.svc.ReportCampaignOutcome(f.ctx, operator, 0, adv, port.CampaignOutcome{QualityScore: &quality})
	require.NoError(t, err)
}

// snapshot captures every record a test touches so rejections can be shown
// to leave the ledger unchanged.
type snapshot struct {
	auction  *domain.Auction
	profile  *domain.AdvertiserProfile
	bid      *domain.Bid
	counters domain.LedgerCounters
}

func (f *fixture) snapshot(t *testing.T, auctionID uint64, adv domain.Identity) snapshot {
	t.Helper()
	var s snapshot
	require.NoError(t, f.store.View(f.ctx, func(r port.LedgerReader) error {
		var err error
		if s.auction, err = r.Auction(f.ctx, auctionID); err != nil {
			return err
		}
		if s.profile, err = r.Advertiser(f.ctx, adv); err != nil {
			return err
		}
		if s.bid, err = r.Bid(f.ctx, auctionID, adv); err != nil {
			return err
		}
		s.counters, err = r.Counters(f.ctx)
		return err
	}))
	return s
}

func TestCreateAuction(t *testing.T) {
	f := defaultFixture(t)
	f.verify(t, publisher)

	id := f.openAuction(t, 10, 100_000)
	require.Equal(t, domain.FirstAuctionID, id)

	a, err := f.svc.GetAuction(f.ctx, 10, id)
	require.NoError(t, err)
	assert.Equal(t, publisher, a.Publisher)
	assert.Equal(t, domain.Tick(10), a.OpenedAt)
	assert.Equal(t, domain.Tick(10)+DefaultAuctionDuration, a.ClosesAt)
	assert.Equal(t, domain.StatusActive, a.Status)
	assert.Zero(t, a.WinningBid)
	assert.Nil(t, a.WinningBidder)

	ledger, err := f.svc.GetLedger(f.ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), ledger.NextAuctionID)
	assert.Equal(t, uint64(1), ledger.ActiveAuctions)

	second := f.openAuction(t, 11, 200_000)
	assert.Equal(t, id+1, second)
}

func TestCreateAuction_UnverifiedPublisherConsumesNoID(t *testing.T) {
	f := defaultFixture(t)

	_, err := f.svc.CreateAuction(f.ctx, "stranger", 0, port.CreateAuctionReq{MinimumBid: 100_000})
	require.ErrorIs(t, err, domain.ErrPublisherNotVerified)

	ledger, err := f.svc.GetLedger(f.ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.FirstAuctionID, ledger.NextAuctionID)
	assert.Zero(t, ledger.ActiveAuctions)

	// verification comes before the floor check
	_, err = f.svc.CreateAuction(f.ctx, "stranger", 0, port.CreateAuctionReq{MinimumBid: 1})
	require.ErrorIs(t, err, domain.ErrPublisherNotVerified)
}

func TestCreateAuction_BelowFloor(t *testing.T) {
	f := defaultFixture(t)
	f.verify(t, publisher)

	_, err := f.svc.CreateAuction(f.ctx, publisher, 0, port.CreateAuctionReq{MinimumBid: DefaultMinimumBidFloor - 1})
	require.ErrorIs(t, err, domain.ErrInvalidBid)

	ledger, err := f.svc.GetLedger(f.ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.FirstAuctionID, ledger.NextAuctionID)
}

func TestVerifyPublisher_OperatorOnly(t *testing.T) {
	f := defaultFixture(t)

	_, err := f.svc.VerifyPublisher(f.ctx, publisher, 0, port.VerifyPublisherReq{Publisher: publisher})
	require.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = f.svc.GetPublisher(f.ctx, publisher)
	require.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.svc.VerifyPublisher(f.ctx, operator, 0, port.VerifyPublisherReq{})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	v, err := f.svc.VerifyPublisher(f.ctx, operator, 0, port.VerifyPublisherReq{Publisher: publisher, MonthlyTraffic: 1_000})
	require.NoError(t, err)
	assert.True(t, v.Verified)
	assert.Equal(t, string(publisher), v.PayoutAddress)

	stored, err := f.svc.GetPublisher(f.ctx, publisher)
	require.NoError(t, err)
	assert.Equal(t, *v, *stored)
}

func TestRegisterAdvertiser_OverwritesProfile(t *testing.T) {
	f := defaultFixture(t)
	f.register(t, "adv", 500_000)

	_, err := f.svc.ReportCampaignOutcome(f.ctx, operator, 0, "adv", port.CampaignOutcome{Spent: 10, Successful: true, Fraudulent: true})
	require.NoError(t, err)

	p, err := f.svc.RegisterAdvertiser(f.ctx, "adv", 0, 900_000, true)
	require.NoError(t, err)
	assert.Equal(t, uint64(900_000), p.MaxDailyBudget)
	assert.True(t, p.AutoBidding)
	assert.Zero(t, p.FraudIncidents)
	assert.Zero(t, p.TotalSpent)
	assert.Equal(t, domain.DefaultQualityScore, p.QualityScore)
	assert.Equal(t, domain.DefaultReputationScore, p.ReputationScore)
}

func TestPlaceBid_ScenarioDailyBudget(t *testing.T) {
	f := defaultFixture(t)
	f.verify(t, publisher)
	id := f.openAuction(t, 0, 100_000)
	f.register(t, "adv", 500_000)

	adjusted, err := f.svc.PlaceBid(f.ctx, "adv", 1, id, 100_000)
	require.NoError(t, err)
	assert.Equal(t, uint64(100_000), adjusted)

	before := f.snapshot(t, id, "adv")
	_, err = f.svc.PlaceBid(f.ctx, "adv", 2, id, 450_000)
	require.ErrorIs(t, err, domain.ErrInsufficientBalance)
	assert.Equal(t, before, f.snapshot(t, id, "adv"))

	p, err := f.svc.GetAdvertiser(f.ctx, "adv")
	require.NoError(t, err)
	assert.Equal(t, uint64(100_000), p.CurrentDailySpent)
}

func TestPlaceBid_ScenarioQualityOutranksRaw(t *testing.T) {
	f := defaultFixture(t)
	f.verify(t, publisher)
	id := f.openAuction(t, 0, 100_000)
	f.register(t, "strong", 1_000_000)
	f.register(t, "plain", 1_000_000)
	f.setQuality(t, "strong", 800)

	adjusted, err := f.svc.PlaceBid(f.ctx, "strong", 1, id, 100_000)
	require.NoError(t, err)
	assert.Equal(t, uint64(150_000), adjusted)

	adjusted, err = f.svc.PlaceBid(f.ctx, "plain", 2, id, 140_000)
	require.NoError(t, err)
	assert.Equal(t, uint64(140_000), adjusted)

	a, err := f.svc.GetAuction(f.ctx, 2, id)
	require.NoError(t, err)
	require.NotNil(t, a.WinningBidder)
	assert.Equal(t, domain.Identity("strong"), *a.WinningBidder)
	assert.Equal(t, uint64(150_000), a.WinningBid)

	// the losing bid is still recorded
	b, err := f.svc.GetBid(f.ctx, id, "plain")
	require.NoError(t, err)
	assert.Equal(t, uint64(140_000), b.Amount)
	assert.Equal(t, uint64(140_000), b.QualityAdjusted)
	assert.Equal(t, domain.Tick(2), b.PlacedAt)
	assert.False(t, b.Automated)
}

func TestPlaceBid_TieKeepsIncumbent(t *testing.T) {
	f := defaultFixture(t)
	f.verify(t, publisher)
	id := f.openAuction(t, 0, 100_000)
	f.register(t, "first", 1_000_000)
	f.register(t, "second", 1_000_000)
	f.setQuality(t, "first", 701)

	_, err := f.svc.PlaceBid(f.ctx, "first", 1, id, 100_000)
	require.NoError(t, err)
	// 150_000 raw at default quality ties the 1.5x boosted 100_000
	_, err = f.svc.PlaceBid(f.ctx, "second", 2, id, 150_000)
	require.NoError(t, err)

	a, err := f.svc.GetAuction(f.ctx, 2, id)
	require.NoError(t, err)
	assert.Equal(t, domain.Identity("first"), *a.WinningBidder)

	_, err = f.svc.PlaceBid(f.ctx, "second", 3, id, 150_001)
	require.NoError(t, err)
	a, err = f.svc.GetAuction(f.ctx, 3, id)
	require.NoError(t, err)
	assert.Equal(t, domain.Identity("second"), *a.WinningBidder)
	assert.Equal(t, uint64(150_001), a.WinningBid)
}

func TestPlaceBid_CheckOrder(t *testing.T) {
	f := defaultFixture(t)
	f.verify(t, publisher)
	id := f.openAuction(t, 0, 200_000)
	f.register(t, "adv", 150_000)

	tests := []struct {
		name     string
		bidder   domain.Identity
		auction  uint64
		now      domain.Tick
		amount   uint64
		expected error
	}{
		{"missing auction wins over everything", "nobody", 99, 1_000, 1, domain.ErrAuctionNotFound},
		{"closed auction before amount", "nobody", id, DefaultAuctionDuration, 1, domain.ErrAuctionEnded},
		{"amount before profile", "nobody", id, 1, 1, domain.ErrInvalidBid},
		{"profile before budget", "nobody", id, 1, 300_000, domain.ErrUnauthorized},
		{"budget", "adv", id, 1, 300_000, domain.ErrInsufficientBalance},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := f.snapshot(t, id, "adv")
			_, err := f.svc.PlaceBid(f.ctx, tt.bidder, tt.now, tt.auction, tt.amount)
			require.ErrorIs(t, err, tt.expected)
			assert.Equal(t, before, f.snapshot(t, id, "adv"))
		})
	}
}

func TestPlaceBid_FraudRejection(t *testing.T) {
	f := defaultFixture(t)
	f.verify(t, publisher)
	id := f.openAuction(t, 0, 100_000)
	f.register(t, "adv", 10_000_000)

	// average historical bid of 100_000
	_, err := f.svc.ReportCampaignOutcome(f.ctx, operator, 0, "adv", port.CampaignOutcome{Spent: 100_000, Successful: true})
	require.NoError(t, err)

	score, err := f.svc.FraudScore(f.ctx, "adv", 180_000)
	require.NoError(t, err)
	require.Equal(t, uint64(80), score)

	before := f.snapshot(t, id, "adv")
	_, err = f.svc.PlaceBid(f.ctx, "adv", 1, id, 180_000)
	require.ErrorIs(t, err, domain.ErrInvalidBid)
	assert.Equal(t, before, f.snapshot(t, id, "adv"))

	_, err = f.svc.PlaceBid(f.ctx, "adv", 1, id, 179_999)
	require.NoError(t, err)
}

func TestPlaceBid_EndedIsNotPersisted(t *testing.T) {
	f := defaultFixture(t)
	f.verify(t, publisher)
	id := f.openAuction(t, 0, 100_000)
	f.register(t, "adv", 1_000_000)

	_, err := f.svc.PlaceBid(f.ctx, "adv", DefaultAuctionDuration, id, 100_000)
	require.ErrorIs(t, err, domain.ErrAuctionEnded)

	s := f.snapshot(t, id, "adv")
	assert.Equal(t, domain.StatusActive, s.auction.Status)

	a, err := f.svc.GetAuction(f.ctx, DefaultAuctionDuration, id)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusEnded, a.Status)
}

func TestPlaceBid_DailyRollover(t *testing.T) {
	f := defaultFixture(t)
	f.verify(t, publisher)
	f.register(t, "adv", 150_000)

	first := f.openAuction(t, 0, 100_000)
	_, err := f.svc.PlaceBid(f.ctx, "adv", 1, first, 100_000)
	require.NoError(t, err)
	_, err = f.svc.PlaceBid(f.ctx, "adv", 2, first, 100_000)
	require.ErrorIs(t, err, domain.ErrInsufficientBalance)

	// next budget day
	now := DefaultDayLength + 1
	second := f.openAuction(t, now, 100_000)
	_, err = f.svc.PlaceBid(f.ctx, "adv", now, second, 100_000)
	require.NoError(t, err)

	p, err := f.svc.GetAdvertiser(f.ctx, "adv")
	require.NoError(t, err)
	assert.Equal(t, uint64(100_000), p.CurrentDailySpent)
	assert.Equal(t, uint64(1), p.SpendDay)
}

func TestPlaceBid_NoRolloverWhenDisabled(t *testing.T) {
	opts := DefaultOptions(operator)
	opts.DayLength = 0
	f := newFixture(t, opts)
	f.verify(t, publisher)
	f.register(t, "adv", 150_000)

	first := f.openAuction(t, 0, 100_000)
	_, err := f.svc.PlaceBid(f.ctx, "adv", 1, first, 100_000)
	require.NoError(t, err)

	now := domain.Tick(10_000)
	second := f.openAuction(t, now, 100_000)
	_, err = f.svc.PlaceBid(f.ctx, "adv", now, second, 100_000)
	require.ErrorIs(t, err, domain.ErrInsufficientBalance)
}

func TestPlaceBid_SpendNeverExceedsBudget(t *testing.T) {
	f := defaultFixture(t)
	f.verify(t, publisher)
	id := f.openAuction(t, 0, 100_000)
	f.register(t, "adv", 1_000_000)

	rnd := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		amount := 100_000 + uint64(rnd.Intn(300_000))
		_, err := f.svc.PlaceBid(f.ctx, "adv", domain.Tick(i%int(DefaultAuctionDuration)), id, amount)
		if err != nil {
			require.ErrorIs(t, err, domain.ErrInsufficientBalance)
		}
		p, err := f.svc.GetAdvertiser(f.ctx, "adv")
		require.NoError(t, err)
		require.LessOrEqual(t, p.CurrentDailySpent, p.MaxDailyBudget)
	}
}

func TestPlaceBid_WinnerIsStrictMaximum(t *testing.T) {
	f := defaultFixture(t)
	f.verify(t, publisher)
	id := f.openAuction(t, 0, 100_000)

	bidders := []domain.Identity{"a", "b", "c", "d"}
	for i, b := range bidders {
		f.register(t, b, 100_000_000)
		if i%2 == 0 {
			f.setQuality(t, b, 900)
		}
	}

	rnd := rand.New(rand.NewSource(42))
	var (
		best   uint64
		winner domain.Identity
	)
	for i := 0; i < 100; i++ {
		b := bidders[rnd.Intn(len(bidders))]
		amount := 100_000 + uint64(rnd.Intn(10))*10_000
		adjusted, err := f.svc.PlaceBid(f.ctx, b, 1, id, amount)
		require.NoError(t, err)
		if adjusted > best {
			best, winner = adjusted, b
		}
	}

	a, err := f.svc.GetAuction(f.ctx, 1, id)
	require.NoError(t, err)
	assert.Equal(t, best, a.WinningBid)
	assert.Equal(t, winner, *a.WinningBidder)
}

func TestSettle(t *testing.T) {
	f := defaultFixture(t)
	f.verify(t, publisher)
	id := f.openAuction(t, 0, 100_000)
	f.register(t, "adv", 10_000_000)
	f.setQuality(t, "adv", 800)

	_, err := f.svc.PlaceBid(f.ctx, "adv", 1, id, 1_000_000)
	require.NoError(t, err)

	_, err = f.svc.Settle(f.ctx, "anyone", DefaultAuctionDuration-1, id)
	require.ErrorIs(t, err, domain.ErrAuctionNotEnded)

	res, err := f.svc.Settle(f.ctx, "anyone", DefaultAuctionDuration, id)
	require.NoError(t, err)
	require.NotNil(t, res.Winner)
	assert.Equal(t, domain.Identity("adv"), *res.Winner)
	assert.Equal(t, uint64(1_500_000), res.Revenue)
	assert.Equal(t, uint64(45_000), res.PlatformFee)
	assert.Equal(t, uint64(1_455_000), res.PublisherPayout)

	ledger, err := f.svc.GetLedger(f.ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(45_000), ledger.TotalPlatformRevenue)
	assert.Zero(t, ledger.ActiveAuctions)

	a, err := f.svc.GetAuction(f.ctx, DefaultAuctionDuration, id)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusSettled, a.Status)

	_, err = f.svc.Settle(f.ctx, "anyone", DefaultAuctionDuration+1, id)
	require.ErrorIs(t, err, domain.ErrAuctionEnded)

	ledger, err = f.svc.GetLedger(f.ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(45_000), ledger.TotalPlatformRevenue)

	_, err = f.svc.PlaceBid(f.ctx, "adv", 2, id, 100_000)
	require.ErrorIs(t, err, domain.ErrAuctionEnded)
}

func TestSettle_CollectsThreePercent(t *testing.T) {
	f := defaultFixture(t)
	f.verify(t, publisher)
	id := f.openAuction(t, 0, 100_000)
	f.register(t, "adv", 10_000_000)

	_, err := f.svc.PlaceBid(f.ctx, "adv", 1, id, 1_000_000)
	require.NoError(t, err)

	res, err := f.svc.Settle(f.ctx, publisher, DefaultAuctionDuration, id)
	require.NoError(t, err)
	assert.Equal(t, uint64(30_000), res.PlatformFee)
	assert.Equal(t, uint64(970_000), res.PublisherPayout)
}

func TestSettle_WithoutWinner(t *testing.T) {
	f := defaultFixture(t)
	f.verify(t, publisher)
	id := f.openAuction(t, 0, 100_000)

	res, err := f.svc.Settle(f.ctx, publisher, DefaultAuctionDuration, id)
	require.NoError(t, err)
	assert.Nil(t, res.Winner)
	assert.Zero(t, res.PlatformFee)

	ledger, err := f.svc.GetLedger(f.ctx)
	require.NoError(t, err)
	assert.Zero(t, ledger.TotalPlatformRevenue)
	assert.Zero(t, ledger.ActiveAuctions)

	a, err := f.svc.GetAuction(f.ctx, DefaultAuctionDuration, id)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusSettled, a.Status)
}

func TestSettle_NotFound(t *testing.T) {
	f := defaultFixture(t)
	_, err := f.svc.Settle(f.ctx, publisher, 1_000, 7)
	require.ErrorIs(t, err, domain.ErrAuctionNotFound)
}

func TestSettle_ConcurrentCollectsOnce(t *testing.T) {
	f := defaultFixture(t)
	f.verify(t, publisher)
	id := f.openAuction(t, 0, 100_000)
	f.register(t, "adv", 10_000_000)
	_, err := f.svc.PlaceBid(f.ctx, "adv", 1, id, 1_000_000)
	require.NoError(t, err)

	const n = 20
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		oks  int
		errs []error
	)
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			_, err := f.svc.Settle(f.ctx, publisher, DefaultAuctionDuration, id)
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				oks++
				return
			}
			errs = append(errs, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, oks)
	for _, err := range errs {
		assert.ErrorIs(t, err, domain.ErrAuctionEnded)
	}
	ledger, err := f.svc.GetLedger(f.ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(30_000), ledger.TotalPlatformRevenue)
}

func TestReportCampaignOutcome(t *testing.T) {
	f := defaultFixture(t)
	f.register(t, "adv", 1_000)

	_, err := f.svc.ReportCampaignOutcome(f.ctx, "adv", 0, "adv", port.CampaignOutcome{Successful: true})
	require.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = f.svc.ReportCampaignOutcome(f.ctx, operator, 0, "ghost", port.CampaignOutcome{})
	require.ErrorIs(t, err, domain.ErrNotFound)

	reputation := uint64(650)
	p, err := f.svc.ReportCampaignOutcome(f.ctx, operator, 0, "adv", port.CampaignOutcome{
		Spent:           300,
		Successful:      true,
		Fraudulent:      true,
		ReputationScore: &reputation,
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(300), p.TotalSpent)
	assert.Equal(t, uint64(1), p.SuccessfulCampaigns)
	assert.Equal(t, uint64(1), p.FraudIncidents)
	assert.Equal(t, uint64(650), p.ReputationScore)
	assert.Equal(t, domain.DefaultQualityScore, p.QualityScore)
}

func TestQualityAdjustedBidLookup(t *testing.T) {
	f := defaultFixture(t)
	f.register(t, "adv", 1_000)
	f.setQuality(t, "adv", 701)

	v, err := f.svc.QualityAdjustedBid(f.ctx, "adv", 100_000)
	require.NoError(t, err)
	assert.Equal(t, uint64(150_000), v)

	v, err = f.svc.QualityAdjustedBid(f.ctx, "unknown", 100_000)
	require.NoError(t, err)
	assert.Equal(t, uint64(100_000), v)

	score, err := f.svc.FraudScore(f.ctx, "unknown", 100_000)
	require.NoError(t, err)
	assert.Zero(t, score)
}

func TestReadsReportMissing(t *testing.T) {
	f := defaultFixture(t)

	_, err := f.svc.GetAuction(f.ctx, 0, 1)
	assert.ErrorIs(t, err, domain.ErrAuctionNotFound)
	_, err = f.svc.GetAdvertiser(f.ctx, "x")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = f.svc.GetBid(f.ctx, 1, "x")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = f.svc.GetPublisher(f.ctx, "x")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStoreFailuresPropagate(t *testing.T) {
	store := mocks.NewMockLedgerStore(t)
	boom := errors.New("connection reset")

	store.EXPECT().
		Update(mock.Anything, mock.AnythingOfType("func(port.LedgerTx) error")).
		Return(boom)
	store.EXPECT().
		View(mock.Anything, mock.AnythingOfType("func(port.LedgerReader) error")).
		Return(boom)

	svc := NewAuctionUseCase(store, DefaultOptions(operator), nil, nil)
	ctx := context.Background()

	_, err := svc.PlaceBid(ctx, "adv", 0, 1, 100_000)
	require.ErrorIs(t, err, boom)
	assert.Equal(t, "internal", domain.ErrorKind(err))

	_, err = svc.RegisterAdvertiser(ctx, "adv", 0, 1, false)
	require.ErrorIs(t, err, boom)

	_, err = svc.GetLedger(ctx)
	require.ErrorIs(t, err, boom)
}
