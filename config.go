package hashring

import (
	"fmt"
	"math"
)

// DefaultBaseWeight is the number of clock points one unit of weight
// produces. A base weight of 1 gives a badly skewed clock for small member
// counts; 50 keeps the load within roughly +/- 5%.
const DefaultBaseWeight = 50

// BaseWeight is the process-wide base weight used by rings whose Config
// leaves BaseWeight unset. It is read once, when the ring is created.
var BaseWeight = DefaultBaseWeight

// Config represents a structure to control the hashring package.
type Config struct {
	// Hasher places both clock points and lookup keys on the ring. Leave nil
	// for DefaultHasher.
	Hasher Hasher

	// BaseWeight overrides the package level BaseWeight for this ring.
	// A member with weight w gets round(w * BaseWeight) points. It must be
	// between 1 and math.MaxInt32.
	BaseWeight int
}

func (c Config) withDefaults() (Config, error) {
	if c.Hasher == nil {
		c.Hasher = DefaultHasher
	}
	if c.BaseWeight == 0 {
		c.BaseWeight = BaseWeight
	}
	if c.BaseWeight <= 0 {
		return c, fmt.Errorf("%w: base weight must be positive, got %d", ErrInvalidArgument, c.BaseWeight)
	}
	if c.BaseWeight > math.MaxInt32 {
		return c, fmt.Errorf("%w: base weight %d is too large", ErrInvalidArgument, c.BaseWeight)
	}
	return c, nil
}
