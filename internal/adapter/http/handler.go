package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"mesa-auction/internal/core/domain"
	"mesa-auction/internal/core/port"
	"mesa-auction/internal/obs"
)

// TokenParser resolves a bearer token to the caller identity.
type TokenParser interface {
	Parse(token string) (domain.Identity, error)
}

// Config carries the collaborators of the HTTP adapter besides the use case.
// Metrics may be nil. A zero RatePerSecond disables rate limiting.
type Config struct {
	Tokens        TokenParser
	Clock         port.Clock
	Metrics       *obs.Metrics
	RatePerSecond int
	RateBurst     int
}

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP. Every /api/v1 route requires a bearer token; the caller identity is
// the token subject and the logical tick is read from the configured clock.
type Handler struct {
	svc     port.AuctionUseCase
	logger  *slog.Logger
	tokens  TokenParser
	clock   port.Clock
	metrics *obs.Metrics
	router  chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc port.AuctionUseCase, logger *slog.Logger, cfg Config) *Handler {
	h := &Handler{
		svc:     svc,
		logger:  logger,
		tokens:  cfg.Tokens,
		clock:   cfg.Clock,
		metrics: cfg.Metrics,
	}
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(h.requestID)
	r.Use(cfg.Metrics.Instrument(routePattern))
	r.Use(h.requestLog)
	if cfg.RatePerSecond > 0 {
		r.Use(newIPLimiter(cfg.RatePerSecond, cfg.RateBurst).middleware)
	}

	r.Get("/healthz", h.handleHealth)
	r.Method(http.MethodGet, "/metrics", cfg.Metrics.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(h.authenticate)

		r.Post("/advertisers", h.handleRegisterAdvertiser)
		r.Get("/advertisers/{advertiser}", h.handleGetAdvertiser)
		r.Get("/advertisers/{advertiser}/quality", h.handleQualityPreview)
		r.Get("/advertisers/{advertiser}/fraud", h.handleFraudPreview)
		r.Post("/advertisers/{advertiser}/outcomes", h.handleReportOutcome)

		r.Post("/publishers", h.handleVerifyPublisher)
		r.Get("/publishers/{publisher}", h.handleGetPublisher)

		r.Post("/auctions", h.handleCreateAuction)
		r.Get("/auctions/{id}", h.handleGetAuction)
		r.Post("/auctions/{id}/bids", h.handlePlaceBid)
		r.Get("/auctions/{id}/bids/{bidder}", h.handleGetBid)
		r.Post("/auctions/{id}/settle", h.handleSettle)

		r.Get("/ledger", h.handleGetLedger)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func routePattern(r *http.Request) string {
	if rc := chi.RouteContext(r.Context()); rc != nil {
		if p := rc.RoutePattern(); p != "" {
			return p
		}
	}
	return "unmatched"
}
