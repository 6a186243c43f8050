package domain

import "errors"

var (
	ErrUnauthorized         = errors.New("unauthorized")
	ErrAuctionNotFound      = errors.New("auction not found")
	ErrAuctionEnded         = errors.New("auction ended")
	ErrAuctionNotEnded      = errors.New("auction has not reached its closing tick")
	ErrInsufficientBalance  = errors.New("insufficient balance")
	ErrInvalidBid           = errors.New("invalid bid")
	ErrPublisherNotVerified = errors.New("publisher not verified")
	ErrNotFound             = errors.New("record not found")
	ErrInvalidInput         = errors.New("invalid input")
)

// ErrorKind returns a short stable label for a rejection, or "internal" for
// anything that is not a domain rejection.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrUnauthorized):
		return "unauthorized"
	case errors.Is(err, ErrAuctionNotFound):
		return "auction_not_found"
	case errors.Is(err, ErrAuctionEnded):
		return "auction_ended"
	case errors.Is(err, ErrAuctionNotEnded):
		return "auction_not_ended"
	case errors.Is(err, ErrInsufficientBalance):
		return "insufficient_balance"
	case errors.Is(err, ErrInvalidBid):
		return "invalid_bid"
	case errors.Is(err, ErrPublisherNotVerified):
		return "publisher_not_verified"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrInvalidInput):
		return "invalid_input"
	default:
		return "internal"
	}
}
