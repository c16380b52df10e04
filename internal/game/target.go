package game

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// Range is an inclusive interval of allowed targets.
type Range struct {
	Min uint32
	Max uint32
}

// DefaultRange is the classic 1 to 100.
var DefaultRange = Range{Min: 1, Max: 100}

// Validate rejects ranges that are empty or whose span does not fit in a uint32.
func (r Range) Validate() error {
	if r.Min > r.Max {
		return fmt.Errorf("%w: min %d greater than max %d", ErrInvalidRange, r.Min, r.Max)
	}
	if r.Max == math.MaxUint32 {
		return fmt.Errorf("%w: max must be below %d", ErrInvalidRange, uint32(math.MaxUint32))
	}
	return nil
}

// Contains reports whether n lies inside the range.
func (r Range) Contains(n uint32) bool {
	return n >= r.Min && n <= r.Max
}

func (r Range) String() string {
	return fmt.Sprintf("%d..=%d", r.Min, r.Max)
}

// TargetSource picks the secret value for a session.
type TargetSource interface {
	Target(r Range) uint32
}

// RandomTarget draws uniformly from the range using the runtime-seeded
// generator of math/rand/v2.
type RandomTarget struct{}

func (RandomTarget) Target(r Range) uint32 {
	return r.Min + rand.Uint32N(r.Max-r.Min+1)
}

// FixedTarget always yields the same value. Used by tests and replays.
type FixedTarget uint32

func (f FixedTarget) Target(Range) uint32 {
	return uint32(f)
}
