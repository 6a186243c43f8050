package configs

import "time"

// Auction holds the lifecycle constants. Durations are measured in logical
// ticks; TickInterval and Genesis map wall-clock time onto ticks for the
// standalone server.
type Auction struct {
	DurationTicks   uint64 `env:"DURATION_TICKS" envDefault:"144"`
	MinimumBidFloor uint64 `env:"MINIMUM_BID_FLOOR" envDefault:"100000"`
	// DayLengthTicks is the length of a budget day. Zero disables the daily
	// spend reset.
	DayLengthTicks uint64        `env:"DAY_LENGTH_TICKS" envDefault:"144"`
	TickInterval   time.Duration `env:"TICK_INTERVAL" envDefault:"10m"`
	Genesis        time.Time     `env:"GENESIS" envDefault:"2024-01-01T00:00:00Z"`
}
