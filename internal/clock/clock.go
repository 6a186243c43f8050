package clock

import (
	"sync"
	"sync/atomic"
	"time"

	"mesa-auction/internal/core/domain"
)

// Ticker maps wall-clock time onto logical ticks: the number of whole
// Intervals elapsed since Genesis. Ticks never go backwards even if the
// wall clock does.
type Ticker struct {
	genesis  time.Time
	interval time.Duration
	now      func() time.Time

	mu   sync.Mutex
	last domain.Tick
}

// NewTicker returns a Ticker. A non-positive interval is treated as one
// second.
func NewTicker(genesis time.Time, interval time.Duration) *Ticker {
	if interval <= 0 {
		interval = time.Second
	}
	return &Ticker{genesis: genesis, interval: interval, now: time.Now}
}

func (t *Ticker) Now() domain.Tick {
	elapsed := t.now().Sub(t.genesis)
	var tick domain.Tick
	if elapsed > 0 {
		tick = domain.Tick(elapsed / t.interval)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if tick < t.last {
		return t.last
	}
	t.last = tick
	return tick
}

// Fixed is a settable clock for tests and tools.
type Fixed struct {
	tick atomic.Uint64
}

// NewFixed returns a clock stopped at tick.
func NewFixed(tick domain.Tick) *Fixed {
	f := &Fixed{}
	f.tick.Store(uint64(tick))
	return f
}

func (f *Fixed) Now() domain.Tick { return domain.Tick(f.tick.Load()) }

func (f *Fixed) Set(tick domain.Tick) { f.tick.Store(uint64(tick)) }

// Advance moves the clock forward by d ticks.
func (f *Fixed) Advance(d domain.Tick) { f.tick.Add(uint64(d)) }
