package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"mesa-auction/internal/core/domain"
)

type problem struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeProblem(w http.ResponseWriter, status int, kind, msg string) {
	writeJSON(w, status, problem{Error: kind, Message: msg})
}

// statusFor maps a use case error onto an HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrPublisherNotVerified):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrAuctionNotFound), errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrAuctionEnded), errors.Is(err, domain.ErrAuctionNotEnded):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInsufficientBalance):
		return http.StatusPaymentRequired
	case errors.Is(err, domain.ErrInvalidBid):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// writeError reports err to the client. Internal errors are logged and
// their text is not sent.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, op string, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		h.logger.ErrorContext(r.Context(), op+" error",
			slog.String("request_id", requestIDFrom(r.Context())),
			slog.Any("error", err),
		)
		writeProblem(w, status, "internal", "internal error")
		return
	}
	writeProblem(w, status, domain.ErrorKind(err), err.Error())
}
