package port

import "mesa-auction/internal/core/domain"

// Clock supplies the logical tick of the current call. The core never reads
// wall-clock time; adapters ask a Clock and pass the result in.
type Clock interface {
	Now() domain.Tick
}
