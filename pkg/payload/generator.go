// Package payload builds the sample records constructed by the benchmark loops.
//
// Two shapes exist: a small flat user record (UserData) and a deep record tree
// (RootModel) with 1,000 leaf records. Every record is fully built by its
// constructor and never mutated afterwards.
package payload

import (
	"time"

	"github.com/appnet-org/declbench/pkg/entropy"
)

// Generator produces sample records from an injected entropy source.
// It is not safe for concurrent use.
type Generator struct {
	src *entropy.Source
	now func() time.Time
}

// Option configures a Generator.
type Option func(*Generator)

// WithClock overrides the clock used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		if now != nil {
			g.now = now
		}
	}
}

// NewGenerator returns a Generator drawing from src. A nil src gets a randomly
// seeded source.
func NewGenerator(src *entropy.Source, opts ...Option) *Generator {
	if src == nil {
		src = entropy.NewRandom()
	}
	g := &Generator{
		src: src,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Source returns the entropy source the generator draws from.
func (g *Generator) Source() *entropy.Source {
	return g.src
}

func (g *Generator) randomString() string {
	return g.src.AlphaNumeric(RandomStringLength)
}

// pastTime returns now shifted back by up to MaxTimestampAge.
func (g *Generator) pastTime(now time.Time) time.Time {
	return now.Add(-g.src.Duration(MaxTimestampAge))
}
