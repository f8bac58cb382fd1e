package kata

import (
	"time"

	"github.com/aalvaropc/kata/internal/domain"
)

// SquareDelay is how long SquareAsync waits before settling a valid input.
const SquareDelay = 1000 * time.Millisecond

// SquareAsync squares n after SquareDelay. A negative n settles right away
// with domain.ErrNegativeNumber. There is no way to cancel or skip the delay.
func SquareAsync(n float64) *Future[float64] {
	f := newFuture[float64]()
	if n < 0 {
		f.settle(0, domain.ErrNegativeNumber)
		return f
	}
	time.AfterFunc(SquareDelay, func() {
		f.settle(n*n, nil)
	})
	return f
}
