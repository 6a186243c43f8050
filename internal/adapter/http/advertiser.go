package httpadapter

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"mesa-auction/internal/core/domain"
	"mesa-auction/internal/core/port"
)

// handleRegisterAdvertiser creates or overwrites the caller's own profile.
func (h *Handler) handleRegisterAdvertiser(w http.ResponseWriter, r *http.Request) {
	var req registerAdvertiserRequest
	if !h.decode(w, r, &req) {
		return
	}
	p, err := h.svc.RegisterAdvertiser(r.Context(), caller(r), h.clock.Now(), req.MaxDailyBudget, req.AutoBiddingEnabled)
	if err != nil {
		h.writeError(w, r, "register advertiser", err)
		return
	}
	writeJSON(w, http.StatusCreated, toAdvertiserResponse(p))
}

func (h *Handler) handleGetAdvertiser(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.GetAdvertiser(r.Context(), domain.Identity(chi.URLParam(r, "advertiser")))
	if err != nil {
		h.writeError(w, r, "get advertiser", err)
		return
	}
	writeJSON(w, http.StatusOK, toAdvertiserResponse(p))
}

// handleQualityPreview returns the quality-adjusted value of ?amount= for
// the advertiser. Unknown advertisers are scored with default quality.
func (h *Handler) handleQualityPreview(w http.ResponseWriter, r *http.Request) {
	h.preview(w, r, "quality preview", h.svc.QualityAdjustedBid)
}

// handleFraudPreview returns the fraud score ?amount= would receive.
func (h *Handler) handleFraudPreview(w http.ResponseWriter, r *http.Request) {
	h.preview(w, r, "fraud preview", h.svc.FraudScore)
}

func (h *Handler) preview(w http.ResponseWriter, r *http.Request, op string, fn func(ctx context.Context, advertiser domain.Identity, amount uint64) (uint64, error)) {
	amount, ok := h.queryUint(w, r, "amount")
	if !ok {
		return
	}
	advertiser := chi.URLParam(r, "advertiser")
	v, err := fn(r.Context(), domain.Identity(advertiser), amount)
	if err != nil {
		h.writeError(w, r, op, err)
		return
	}
	writeJSON(w, http.StatusOK, valueResponse{Advertiser: advertiser, Amount: amount, Value: v})
}

// handleReportOutcome records a delivered campaign against an advertiser.
// Operator only.
func (h *Handler) handleReportOutcome(w http.ResponseWriter, r *http.Request) {
	var req campaignOutcomeRequest
	if !h.decode(w, r, &req) {
		return
	}
	outcome := port.CampaignOutcome{
		Spent:           req.Spent,
		Successful:      req.Successful,
		Fraudulent:      req.Fraudulent,
		ReputationScore: req.ReputationScore,
		QualityScore:    req.QualityScore,
	}
	advertiser := domain.Identity(chi.URLParam(r, "advertiser"))
	p, err := h.svc.ReportCampaignOutcome(r.Context(), caller(r), h.clock.Now(), advertiser, outcome)
	if err != nil {
		h.writeError(w, r, "report outcome", err)
		return
	}
	writeJSON(w, http.StatusOK, toAdvertiserResponse(p))
}
