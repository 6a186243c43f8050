package domain

// Identity is an authenticated principal supplied by the host: a publisher,
// an advertiser or the platform operator.
type Identity string

// Tick is a logical clock value (block height). It is supplied with every
// call and is never read from wall-clock time inside the core.
type Tick uint64

// AddTicks returns t advanced by d, saturating instead of wrapping.
func (t Tick) AddTicks(d Tick) Tick {
	if t+d < t {
		return ^Tick(0)
	}
	return t + d
}
