package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuctionLifecycleObservation(t *testing.T) {
	a := NewAuction(1, "pub", "sports", "18-34", 100, 10, 5)

	require.Equal(t, Tick(15), a.ClosesAt)
	assert.Equal(t, StatusActive, a.Status)

	assert.True(t, a.AcceptsBids(14))
	assert.False(t, a.AcceptsBids(15))

	assert.Equal(t, StatusActive, a.EffectiveStatus(14))
	assert.Equal(t, StatusEnded, a.EffectiveStatus(15))
	// observing does not write
	assert.Equal(t, StatusActive, a.Status)

	a.Status = StatusSettled
	assert.Equal(t, StatusSettled, a.EffectiveStatus(100))
	assert.False(t, a.AcceptsBids(12))
}

func TestAuctionClosingTickSaturates(t *testing.T) {
	a := NewAuction(1, "pub", "", "", 0, math.MaxUint64-1, 10)
	assert.Equal(t, Tick(math.MaxUint64), a.ClosesAt)
}

func TestAuctionCloneDoesNotAlias(t *testing.T) {
	w := Identity("adv")
	a := Auction{ID: 1, WinningBid: 10, WinningBidder: &w}

	c := a.Clone()
	*c.WinningBidder = "other"

	assert.Equal(t, Identity("adv"), *a.WinningBidder)
}

func TestAuctionCTR(t *testing.T) {
	assert.Equal(t, uint64(0), Auction{}.CTRBasisPoints())
	assert.Equal(t, uint64(250), Auction{Impressions: 400, Clicks: 10}.CTRBasisPoints())
}

func TestAdvertiserDailyBudget(t *testing.T) {
	p := NewAdvertiserProfile("adv", 500_000, false)
	require.Equal(t, DefaultReputationScore, p.ReputationScore)
	require.Equal(t, DefaultQualityScore, p.QualityScore)

	assert.True(t, p.CanSpend(0, 500_000))
	assert.False(t, p.CanSpend(0, 500_001))

	p.CurrentDailySpent = 100_000
	assert.True(t, p.CanSpend(0, 400_000))
	assert.False(t, p.CanSpend(0, 450_000))

	// spend from an earlier day is forgotten
	assert.Equal(t, uint64(0), p.DailySpent(1))
	assert.True(t, p.CanSpend(1, 500_000))

	huge := AdvertiserProfile{MaxDailyBudget: math.MaxUint64, CurrentDailySpent: 10}
	assert.False(t, huge.CanSpend(0, math.MaxUint64))
}

func TestErrorKind(t *testing.T) {
	assert.Equal(t, "ok", ErrorKind(nil))
	assert.Equal(t, "invalid_bid", ErrorKind(ErrInvalidBid))
	assert.Equal(t, "auction_ended", ErrorKind(ErrAuctionEnded))
	assert.Equal(t, "internal", ErrorKind(assert.AnError))
}
