package bench

import (
	"errors"
	"fmt"
)

// Shape selects which sample record the workload constructs.
type Shape string

const (
	ShapeUser Shape = "user"
	ShapeTree Shape = "tree"
)

// IsValid checks if the value is one of the known shapes.
func (s Shape) IsValid() bool {
	return s == ShapeUser || s == ShapeTree
}

func (s Shape) String() string {
	return string(s)
}

// Default iteration counts. A tree is roughly a thousand times the work of a user.
const (
	DefaultUserIterations = 100_000
	DefaultTreeIterations = 100
)

// ErrInvalidIterations is returned for a non-positive iteration count.
var ErrInvalidIterations = errors.New("iterations must be positive")

// Config holds the driver configuration.
type Config struct {
	Shape      Shape
	Iterations int
	// Seed feeds both the payload generator and, with Shuffle, the phase order.
	Seed uint64
	// Shuffle randomizes which phase runs first. Off by default so runs stay
	// comparable with the fixed explicit-then-implicit order.
	Shuffle bool
}

// DefaultConfig returns the configuration for shape with its default
// iteration count.
func DefaultConfig(shape Shape) *Config {
	cfg := &Config{Shape: shape}
	switch shape {
	case ShapeTree:
		cfg.Iterations = DefaultTreeIterations
	default:
		cfg.Iterations = DefaultUserIterations
	}
	return cfg
}

// Validate reports whether the configuration can be run.
func (c *Config) Validate() error {
	if !c.Shape.IsValid() {
		return fmt.Errorf("unknown shape %q", c.Shape)
	}
	if c.Iterations <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidIterations, c.Iterations)
	}
	return nil
}
