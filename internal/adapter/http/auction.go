package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"mesa-auction/internal/core/domain"
	"mesa-auction/internal/core/port"
)

// handleCreateAuction opens an auction owned by the caller, who must be a
// verified publisher.
func (h *Handler) handleCreateAuction(w http.ResponseWriter, r *http.Request) {
	var req createAuctionRequest
	if !h.decode(w, r, &req) {
		return
	}
	id, err := h.svc.CreateAuction(r.Context(), caller(r), h.clock.Now(), port.CreateAuctionReq{
		Category:   req.Category,
		Audience:   req.Audience,
		MinimumBid: req.MinimumBid,
	})
	if err != nil {
		h.writeError(w, r, "create auction", err)
		return
	}
	writeJSON(w, http.StatusCreated, createAuctionResponse{AuctionID: id})
}

// handleGetAuction reports the auction as observed at the current tick.
func (h *Handler) handleGetAuction(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathUint(w, r, "id")
	if !ok {
		return
	}
	a, err := h.svc.GetAuction(r.Context(), h.clock.Now(), id)
	if err != nil {
		h.writeError(w, r, "get auction", err)
		return
	}
	writeJSON(w, http.StatusOK, toAuctionResponse(a))
}

func (h *Handler) handlePlaceBid(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathUint(w, r, "id")
	if !ok {
		return
	}
	var req placeBidRequest
	if !h.decode(w, r, &req) {
		return
	}
	adjusted, err := h.svc.PlaceBid(r.Context(), caller(r), h.clock.Now(), id, req.Amount)
	if err != nil {
		h.writeError(w, r, "place bid", err)
		return
	}
	writeJSON(w, http.StatusOK, placeBidResponse{AuctionID: id, QualityAdjusted: adjusted})
}

func (h *Handler) handleGetBid(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathUint(w, r, "id")
	if !ok {
		return
	}
	b, err := h.svc.GetBid(r.Context(), id, domain.Identity(chi.URLParam(r, "bidder")))
	if err != nil {
		h.writeError(w, r, "get bid", err)
		return
	}
	writeJSON(w, http.StatusOK, toBidResponse(b))
}

func (h *Handler) handleSettle(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathUint(w, r, "id")
	if !ok {
		return
	}
	res, err := h.svc.Settle(r.Context(), caller(r), h.clock.Now(), id)
	if err != nil {
		h.writeError(w, r, "settle", err)
		return
	}
	writeJSON(w, http.StatusOK, toSettlementResponse(res))
}

func (h *Handler) handleGetLedger(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.GetLedger(r.Context())
	if err != nil {
		h.writeError(w, r, "get ledger", err)
		return
	}
	writeJSON(w, http.StatusOK, ledgerResponse{
		NextAuctionID:        c.NextAuctionID,
		TotalPlatformRevenue: c.TotalPlatformRevenue,
		ActiveAuctions:       c.ActiveAuctions,
	})
}
