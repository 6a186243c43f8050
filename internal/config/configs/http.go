package configs

// HTTP defines configuration for the HTTP server. Port selects the listen
// port; RatePerSecond and RateBurst size the per-client token bucket.
type HTTP struct {
	// Port is the TCP port the HTTP server will listen on. Defaults to 8080.
	Port uint16 `env:"PORT" envDefault:"8080"`
	// RatePerSecond is the sustained request rate allowed per client IP.
	// Zero disables rate limiting.
	RatePerSecond int `env:"RATE_PER_SECOND" envDefault:"50"`
	RateBurst     int `env:"RATE_BURST" envDefault:"100"`
}
