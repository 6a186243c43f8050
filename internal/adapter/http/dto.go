package httpadapter

import (
	"mesa-auction/internal/core/domain"
	"mesa-auction/internal/core/port"
)

type registerAdvertiserRequest struct {
	MaxDailyBudget     uint64 `json:"max_daily_budget"`
	AutoBiddingEnabled bool   `json:"auto_bidding_enabled"`
}

type verifyPublisherRequest struct {
	Publisher       string `json:"publisher"`
	DomainAuthority uint64 `json:"domain_authority"`
	MonthlyTraffic  uint64 `json:"monthly_traffic"`
	ContentQuality  uint64 `json:"content_quality"`
	PayoutAddress   string `json:"payout_address"`
}

type createAuctionRequest struct {
	Category   string `json:"category"`
	Audience   string `json:"audience"`
	MinimumBid uint64 `json:"minimum_bid"`
}

type placeBidRequest struct {
	Amount uint64 `json:"amount"`
}

type campaignOutcomeRequest struct {
	Spent           uint64  `json:"spent"`
	Successful      bool    `json:"successful"`
	Fraudulent      bool    `json:"fraudulent"`
	ReputationScore *uint64 `json:"reputation_score,omitempty"`
	QualityScore    *uint64 `json:"quality_score,omitempty"`
}

type advertiserResponse struct {
	Advertiser          string `json:"advertiser"`
	ReputationScore     uint64 `json:"reputation_score"`
	QualityScore        uint64 `json:"quality_score"`
	TotalSpent          uint64 `json:"total_spent"`
	SuccessfulCampaigns uint64 `json:"successful_campaigns"`
	FraudIncidents      uint64 `json:"fraud_incidents"`
	AutoBidding         bool   `json:"auto_bidding_enabled"`
	MaxDailyBudget      uint64 `json:"max_daily_budget"`
	CurrentDailySpent   uint64 `json:"current_daily_spent"`
	SpendDay            uint64 `json:"spend_day"`
}

func toAdvertiserResponse(p *domain.AdvertiserProfile) advertiserResponse {
	return advertiserResponse{
		Advertiser:          string(p.Advertiser),
		ReputationScore:     p.ReputationScore,
		QualityScore:        p.QualityScore,
		TotalSpent:          p.TotalSpent,
		SuccessfulCampaigns: p.SuccessfulCampaigns,
		FraudIncidents:      p.FraudIncidents,
		AutoBidding:         p.AutoBidding,
		MaxDailyBudget:      p.MaxDailyBudget,
		CurrentDailySpent:   p.CurrentDailySpent,
		SpendDay:            p.SpendDay,
	}
}

type publisherResponse struct {
	Publisher       string `json:"publisher"`
	Verified        bool   `json:"verified"`
	DomainAuthority uint64 `json:"domain_authority"`
	MonthlyTraffic  uint64 `json:"monthly_traffic"`
	ContentQuality  uint64 `json:"content_quality"`
	PayoutAddress   string `json:"payout_address"`
}

func toPublisherResponse(v *domain.PublisherVerification) publisherResponse {
	return publisherResponse{
		Publisher:       string(v.Publisher),
		Verified:        v.Verified,
		DomainAuthority: v.DomainAuthority,
		MonthlyTraffic:  v.MonthlyTraffic,
		ContentQuality:  v.ContentQuality,
		PayoutAddress:   v.PayoutAddress,
	}
}

type auctionResponse struct {
	ID            uint64  `json:"id"`
	Publisher     string  `json:"publisher"`
	Category      string  `json:"category"`
	Audience      string  `json:"audience"`
	OpenedAt      uint64  `json:"opened_at"`
	ClosesAt      uint64  `json:"closes_at"`
	MinimumBid    uint64  `json:"minimum_bid"`
	WinningBid    uint64  `json:"winning_bid"`
	WinningBidder *string `json:"winning_bidder"`
	Status        string  `json:"status"`
	Impressions   uint64  `json:"impressions"`
	Clicks        uint64  `json:"clicks"`
	CTRBasisPts   uint64  `json:"ctr_bps"`
}

func toAuctionResponse(a *domain.Auction) auctionResponse {
	resp := auctionResponse{
		ID:          a.ID,
		Publisher:   string(a.Publisher),
		Category:    a.Category,
		Audience:    a.Audience,
		OpenedAt:    uint64(a.OpenedAt),
		ClosesAt:    uint64(a.ClosesAt),
		MinimumBid:  a.MinimumBid,
		WinningBid:  a.WinningBid,
		Status:      string(a.Status),
		Impressions: a.Impressions,
		Clicks:      a.Clicks,
		CTRBasisPts: a.CTRBasisPoints(),
	}
	if a.WinningBidder != nil {
		w := string(*a.WinningBidder)
		resp.WinningBidder = &w
	}
	return resp
}

type bidResponse struct {
	AuctionID       uint64 `json:"auction_id"`
	Bidder          string `json:"bidder"`
	Amount          uint64 `json:"amount"`
	PlacedAt        uint64 `json:"placed_at"`
	QualityAdjusted uint64 `json:"quality_adjusted"`
	Automated       bool   `json:"automated"`
}

func toBidResponse(b *domain.Bid) bidResponse {
	return bidResponse{
		AuctionID:       b.AuctionID,
		Bidder:          string(b.Bidder),
		Amount:          b.Amount,
		PlacedAt:        uint64(b.PlacedAt),
		QualityAdjusted: b.QualityAdjusted,
		Automated:       b.Automated,
	}
}

type createAuctionResponse struct {
	AuctionID uint64 `json:"auction_id"`
}

type placeBidResponse struct {
	AuctionID       uint64 `json:"auction_id"`
	QualityAdjusted uint64 `json:"quality_adjusted"`
}

type settlementResponse struct {
	AuctionID       uint64  `json:"auction_id"`
	Winner          *string `json:"winner"`
	Revenue         uint64  `json:"revenue"`
	PlatformFee     uint64  `json:"platform_fee"`
	PublisherPayout uint64  `json:"publisher_payout"`
}

func toSettlementResponse(s *port.SettlementResult) settlementResponse {
	resp := settlementResponse{
		AuctionID:       s.AuctionID,
		Revenue:         s.Revenue,
		PlatformFee:     s.PlatformFee,
		PublisherPayout: s.PublisherPayout,
	}
	if s.Winner != nil {
		w := string(*s.Winner)
		resp.Winner = &w
	}
	return resp
}

type ledgerResponse struct {
	NextAuctionID        uint64 `json:"next_auction_id"`
	TotalPlatformRevenue uint64 `json:"total_platform_revenue"`
	ActiveAuctions       uint64 `json:"active_auctions"`
}

type valueResponse struct {
	Advertiser string `json:"advertiser"`
	Amount     uint64 `json:"amount"`
	Value      uint64 `json:"value"`
}
