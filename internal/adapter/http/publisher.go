package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"mesa-auction/internal/core/domain"
	"mesa-auction/internal/core/port"
)

// handleVerifyPublisher records a verified publisher. Operator only.
func (h *Handler) handleVerifyPublisher(w http.ResponseWriter, r *http.Request) {
	var req verifyPublisherRequest
	if !h.decode(w, r, &req) {
		return
	}
	v, err := h.svc.VerifyPublisher(r.Context(), caller(r), h.clock.Now(), port.VerifyPublisherReq{
		Publisher:       domain.Identity(req.Publisher),
		DomainAuthority: req.DomainAuthority,
		MonthlyTraffic:  req.MonthlyTraffic,
		ContentQuality:  req.ContentQuality,
		PayoutAddress:   req.PayoutAddress,
	})
	if err != nil {
		h.writeError(w, r, "verify publisher", err)
		return
	}
	writeJSON(w, http.StatusCreated, toPublisherResponse(v))
}

func (h *Handler) handleGetPublisher(w http.ResponseWriter, r *http.Request) {
	v, err := h.svc.GetPublisher(r.Context(), domain.Identity(chi.URLParam(r, "publisher")))
	if err != nil {
		h.writeError(w, r, "get publisher", err)
		return
	}
	writeJSON(w, http.StatusOK, toPublisherResponse(v))
}
