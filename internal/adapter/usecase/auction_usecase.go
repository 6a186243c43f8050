package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"mesa-auction/internal/core/domain"
	"mesa-auction/internal/core/port"
	"mesa-auction/internal/core/rules"
	"mesa-auction/internal/obs"
)

const (
	DefaultAuctionDuration domain.Tick = 144
	DefaultMinimumBidFloor uint64      = 100_000
	DefaultDayLength       domain.Tick = 144
)

// Options are the lifecycle constants of the engine.
type Options struct {
	// AuctionDuration is the number of ticks between opening and closing.
	// Zero selects DefaultAuctionDuration so that closing is always after
	// opening.
	AuctionDuration domain.Tick
	MinimumBidFloor uint64
	// DayLength is the number of ticks in a budget day. Zero disables the
	// daily reset and spend accumulates for the lifetime of the profile.
	DayLength domain.Tick
	// Operator is the identity allowed to verify publishers and report
	// campaign outcomes.
	Operator domain.Identity
}

// DefaultOptions returns the production constants with the given operator.
func DefaultOptions(operator domain.Identity) Options {
	return Options{
		AuctionDuration: DefaultAuctionDuration,
		MinimumBidFloor: DefaultMinimumBidFloor,
		DayLength:       DefaultDayLength,
		Operator:        operator,
	}
}

var _ port.AuctionUseCase = (*AuctionUseCase)(nil)

// AuctionUseCase implements port.AuctionUseCase on top of a LedgerStore.
// Every operation runs its admission checks and its writes inside one
// store transaction, so a rejected call leaves the ledger untouched.
type AuctionUseCase struct {
	store   port.LedgerStore
	opts    Options
	logger  *slog.Logger
	metrics *obs.Metrics
}

// NewAuctionUseCase wires the use case. logger may be nil, in which case
// slog.Default is used; metrics may be nil.
func NewAuctionUseCase(store port.LedgerStore, opts Options, logger *slog.Logger, metrics *obs.Metrics) *AuctionUseCase {
	if opts.AuctionDuration == 0 {
		opts.AuctionDuration = DefaultAuctionDuration
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &AuctionUseCase{store: store, opts: opts, logger: logger, metrics: metrics}
}

// day returns the budget day now falls in.
func (u *AuctionUseCase) day(now domain.Tick) uint64 {
	if u.opts.DayLength == 0 {
		return 0
	}
	return uint64(now / u.opts.DayLength)
}

func (u *AuctionUseCase) RegisterAdvertiser(ctx context.Context, caller domain.Identity, now domain.Tick, maxDailyBudget uint64, autoBidding bool) (*domain.AdvertiserProfile, error) {
	if caller == "" {
		return nil, domain.ErrUnauthorized
	}
	profile := domain.NewAdvertiserProfile(caller, maxDailyBudget, autoBidding)
	profile.SpendDay = u.day(now)

	err := u.store.Update(ctx, func(tx port.LedgerTx) error {
		return tx.PutAdvertiser(ctx, profile)
	})
	if err != nil {
		return nil, fmt.Errorf("register advertiser: %w", err)
	}
	u.logger.InfoContext(ctx, "advertiser registered",
		slog.String("advertiser", string(caller)),
		slog.Uint64("max_daily_budget", maxDailyBudget),
		slog.Bool("auto_bidding", autoBidding),
	)
	return &profile, nil
}

func (u *AuctionUseCase) VerifyPublisher(ctx context.Context, caller domain.Identity, _ domain.Tick, req port.VerifyPublisherReq) (*domain.PublisherVerification, error) {
	if !u.isOperator(caller) {
		return nil, domain.ErrUnauthorized
	}
	if strings.TrimSpace(string(req.Publisher)) == "" {
		return nil, fmt.Errorf("%w: publisher is required", domain.ErrInvalidInput)
	}
	v := domain.PublisherVerification{
		Publisher:       req.Publisher,
		Verified:        true,
		DomainAuthority: req.DomainAuthority,
		MonthlyTraffic:  req.MonthlyTraffic,
		ContentQuality:  req.ContentQuality,
		PayoutAddress:   req.PayoutAddress,
	}
	if v.PayoutAddress == "" {
		v.PayoutAddress = string(req.Publisher)
	}

	err := u.store.Update(ctx, func(tx port.LedgerTx) error {
		return tx.PutPublisher(ctx, v)
	})
	if err != nil {
		return nil, fmt.Errorf("verify publisher: %w", err)
	}
	u.logger.InfoContext(ctx, "publisher verified", slog.String("publisher", string(req.Publisher)))
	return &v, nil
}

func (u *AuctionUseCase) CreateAuction(ctx context.Context, caller domain.Identity, now domain.Tick, req port.CreateAuctionReq) (uint64, error) {
	var id uint64
	err := u.store.Update(ctx, func(tx port.LedgerTx) error {
		v, err := tx.Publisher(ctx, caller)
		if err != nil {
			return err
		}
		if v == nil || !v.Verified {
			return domain.ErrPublisherNotVerified
		}
		if req.MinimumBid < u.opts.MinimumBidFloor {
			return fmt.Errorf("%w: minimum bid %d is below floor %d", domain.ErrInvalidBid, req.MinimumBid, u.opts.MinimumBidFloor)
		}

		counters, err := tx.Counters(ctx)
		if err != nil {
			return err
		}
		id = counters.NextAuctionID
		auction := domain.NewAuction(id, caller, req.Category, req.Audience, req.MinimumBid, now, u.opts.AuctionDuration)
		if auction.ClosesAt <= auction.OpenedAt {
			return fmt.Errorf("%w: auction would close before it opens", domain.ErrInvalidInput)
		}

		counters.NextAuctionID++
		counters.ActiveAuctions++
		if err = tx.PutAuction(ctx, auction); err != nil {
			return err
		}
		return tx.PutCounters(ctx, counters)
	})
	if err != nil {
		u.logger.WarnContext(ctx, "auction creation rejected",
			slog.String("publisher", string(caller)),
			slog.Uint64("minimum_bid", req.MinimumBid),
			slog.Any("error", err),
		)
		return 0, err
	}

	u.metrics.AuctionCreated()
	u.logger.InfoContext(ctx, "auction created",
		slog.Uint64("auction_id", id),
		slog.String("publisher", string(caller)),
		slog.String("category", req.Category),
		slog.Uint64("minimum_bid", req.MinimumBid),
	)
	return id, nil
}

func (u *AuctionUseCase) PlaceBid(ctx context.Context, caller domain.Identity, now domain.Tick, auctionID uint64, amount uint64) (uint64, error) {
	var (
		adjusted uint64
		leading  bool
	)
	err := u.store.Update(ctx, func(tx port.LedgerTx) error {
		auction, err := tx.Auction(ctx, auctionID)
		if err != nil {
			return err
		}
		if auction == nil {
			return domain.ErrAuctionNotFound
		}
		if !auction.AcceptsBids(now) {
			return domain.ErrAuctionEnded
		}
		if amount < auction.MinimumBid {
			return fmt.Errorf("%w: amount %d is below minimum %d", domain.ErrInvalidBid, amount, auction.MinimumBid)
		}
		profile, err := tx.Advertiser(ctx, caller)
		if err != nil {
			return err
		}
		if profile == nil {
			return domain.ErrUnauthorized
		}
		day := u.day(now)
		if !profile.CanSpend(day, amount) {
			return domain.ErrInsufficientBalance
		}
		if score := rules.FraudScore(profile, amount); rules.IsSuspicious(score) {
			return fmt.Errorf("%w: fraud score %d", domain.ErrInvalidBid, score)
		}

		adjusted = rules.QualityAdjustedBid(amount, profile)
		if adjusted > auction.WinningBid {
			auction.WinningBid = adjusted
			bidder := caller
			auction.WinningBidder = &bidder
			leading = true
			if err = tx.PutAuction(ctx, *auction); err != nil {
				return err
			}
		}

		bid := domain.Bid{
			AuctionID:       auctionID,
			Bidder:          caller,
			Amount:          amount,
			PlacedAt:        now,
			QualityAdjusted: adjusted,
			Automated:       false,
		}
		if err = tx.PutBid(ctx, bid); err != nil {
			return err
		}

		profile.CurrentDailySpent = profile.DailySpent(day) + amount
		profile.SpendDay = day
		return tx.PutAdvertiser(ctx, *profile)
	})

	u.metrics.BidResult(domain.ErrorKind(err))
	if err != nil {
		u.logger.WarnContext(ctx, "bid rejected",
			slog.Uint64("auction_id", auctionID),
			slog.String("bidder", string(caller)),
			slog.Uint64("amount", amount),
			slog.Any("error", err),
		)
		return 0, err
	}
	u.logger.InfoContext(ctx, "bid accepted",
		slog.Uint64("auction_id", auctionID),
		slog.String("bidder", string(caller)),
		slog.Uint64("amount", amount),
		slog.Uint64("quality_adjusted", adjusted),
		slog.Bool("leading", leading),
	)
	return adjusted, nil
}

func (u *AuctionUseCase) Settle(ctx context.Context, caller domain.Identity, now domain.Tick, auctionID uint64) (*port.SettlementResult, error) {
	var result port.SettlementResult
	err := u.store.Update(ctx, func(tx port.LedgerTx) error {
		auction, err := tx.Auction(ctx, auctionID)
		if err != nil {
			return err
		}
		if auction == nil {
			return domain.ErrAuctionNotFound
		}
		if auction.Status != domain.StatusActive {
			return domain.ErrAuctionEnded
		}
		if now < auction.ClosesAt {
			return domain.ErrAuctionNotEnded
		}

		auction.Status = domain.StatusEnded
		counters, err := tx.Counters(ctx)
		if err != nil {
			return err
		}

		result = port.SettlementResult{AuctionID: auctionID}
		if auction.HasWinner() {
			winner := *auction.WinningBidder
			result.Winner = &winner
			result.Revenue = auction.WinningBid
			result.PlatformFee = rules.CollectFee(&counters, result.Revenue)
			result.PublisherPayout = result.Revenue - result.PlatformFee
		}
		if counters.ActiveAuctions > 0 {
			counters.ActiveAuctions--
		}
		auction.Status = domain.StatusSettled

		if err = tx.PutAuction(ctx, *auction); err != nil {
			return err
		}
		return tx.PutCounters(ctx, counters)
	})
	if err != nil {
		u.logger.WarnContext(ctx, "settlement rejected",
			slog.Uint64("auction_id", auctionID),
			slog.String("caller", string(caller)),
			slog.Any("error", err),
		)
		return nil, err
	}

	u.metrics.Settled(result.Winner != nil, result.PlatformFee)
	attrs := []any{
		slog.Uint64("auction_id", auctionID),
		slog.Uint64("revenue", result.Revenue),
		slog.Uint64("platform_fee", result.PlatformFee),
		slog.Uint64("publisher_payout", result.PublisherPayout),
	}
	if result.Winner != nil {
		attrs = append(attrs, slog.String("winner", string(*result.Winner)))
	}
	u.logger.InfoContext(ctx, "auction settled", attrs...)
	return &result, nil
}

func (u *AuctionUseCase) ReportCampaignOutcome(ctx context.Context, caller domain.Identity, _ domain.Tick, advertiser domain.Identity, outcome port.CampaignOutcome) (*domain.AdvertiserProfile, error) {
	if !u.isOperator(caller) {
		return nil, domain.ErrUnauthorized
	}
	var updated domain.AdvertiserProfile
	err := u.store.Update(ctx, func(tx port.LedgerTx) error {
		profile, err := tx.Advertiser(ctx, advertiser)
		if err != nil {
			return err
		}
		if profile == nil {
			return fmt.Errorf("advertiser %q: %w", advertiser, domain.ErrNotFound)
		}
		profile.TotalSpent = saturatingAdd(profile.TotalSpent, outcome.Spent)
		if outcome.Successful {
			profile.SuccessfulCampaigns = saturatingAdd(profile.SuccessfulCampaigns, 1)
		}
		if outcome.Fraudulent {
			profile.FraudIncidents = saturatingAdd(profile.FraudIncidents, 1)
		}
		if outcome.ReputationScore != nil {
			profile.ReputationScore = *outcome.ReputationScore
		}
		if outcome.QualityScore != nil {
			profile.QualityScore = *outcome.QualityScore
		}
		updated = *profile
		return tx.PutAdvertiser(ctx, updated)
	})
	if err != nil {
		return nil, fmt.Errorf("report campaign outcome: %w", err)
	}
	u.logger.InfoContext(ctx, "campaign outcome recorded",
		slog.String("advertiser", string(advertiser)),
		slog.Uint64("spent", outcome.Spent),
		slog.Bool("successful", outcome.Successful),
		slog.Bool("fraudulent", outcome.Fraudulent),
	)
	return &updated, nil
}

func (u *AuctionUseCase) QualityAdjustedBid(ctx context.Context, advertiser domain.Identity, raw uint64) (uint64, error) {
	var adjusted uint64
	err := u.store.View(ctx, func(r port.LedgerReader) error {
		profile, err := r.Advertiser(ctx, advertiser)
		if err != nil {
			return err
		}
		adjusted = rules.QualityAdjustedBid(raw, profile)
		return nil
	})
	return adjusted, err
}

func (u *AuctionUseCase) FraudScore(ctx context.Context, advertiser domain.Identity, bidAmount uint64) (uint64, error) {
	var score uint64
	err := u.store.View(ctx, func(r port.LedgerReader) error {
		profile, err := r.Advertiser(ctx, advertiser)
		if err != nil {
			return err
		}
		score = rules.FraudScore(profile, bidAmount)
		return nil
	})
	return score, err
}

// GetAuction reports the auction as observed at now. An active auction past
// its closing tick is returned as ended without persisting that.
func (u *AuctionUseCase) GetAuction(ctx context.Context, now domain.Tick, id uint64) (*domain.Auction, error) {
	var auction *domain.Auction
	err := u.store.View(ctx, func(r port.LedgerReader) error {
		var err error
		auction, err = r.Auction(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	if auction == nil {
		return nil, domain.ErrAuctionNotFound
	}
	auction.Status = auction.EffectiveStatus(now)
	return auction, nil
}

func (u *AuctionUseCase) GetAdvertiser(ctx context.Context, advertiser domain.Identity) (*domain.AdvertiserProfile, error) {
	var profile *domain.AdvertiserProfile
	err := u.store.View(ctx, func(r port.LedgerReader) error {
		var err error
		profile, err = r.Advertiser(ctx, advertiser)
		return err
	})
	return found(profile, err)
}

func (u *AuctionUseCase) GetBid(ctx context.Context, auctionID uint64, bidder domain.Identity) (*domain.Bid, error) {
	var bid *domain.Bid
	err := u.store.View(ctx, func(r port.LedgerReader) error {
		var err error
		bid, err = r.Bid(ctx, auctionID, bidder)
		return err
	})
	return found(bid, err)
}

func (u *AuctionUseCase) GetPublisher(ctx context.Context, publisher domain.Identity) (*domain.PublisherVerification, error) {
	var v *domain.PublisherVerification
	err := u.store.View(ctx, func(r port.LedgerReader) error {
		var err error
		v, err = r.Publisher(ctx, publisher)
		return err
	})
	return found(v, err)
}

func (u *AuctionUseCase) GetLedger(ctx context.Context) (domain.LedgerCounters, error) {
	var counters domain.LedgerCounters
	err := u.store.View(ctx, func(r port.LedgerReader) error {
		var err error
		counters, err = r.Counters(ctx)
		return err
	})
	return counters, err
}

func (u *AuctionUseCase) isOperator(caller domain.Identity) bool {
	return caller != "" && caller == u.opts.Operator
}

func found[T any](v *T, err error) (*T, error) {
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, domain.ErrNotFound
	}
	return v, nil
}

func saturatingAdd(a, b uint64) uint64 {
	if a > math.MaxUint64-b {
		return math.MaxUint64
	}
	return a + b
}
