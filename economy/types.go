// SPDX-License-Identifier: MIT

package economy

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/horizon/bnb"
)

// Sentinel errors for malformed blueprints and plans.
var (
	ErrKinds           = errors.New("economy: kinds must be in 1..MaxKinds")
	ErrBadCost         = errors.New("economy: invalid cost entry")
	ErrBadInitial      = errors.New("economy: invalid initial producers")
	ErrNegativeHorizon = errors.New("economy: negative horizon")
	ErrInsufficient    = errors.New("economy: insufficient resources")
	ErrBadPlan         = errors.New("economy: invalid build plan")
)

// Blueprint is the cost table of one economy.
type Blueprint struct {
	// ID is a caller-chosen identifier, used for quality aggregation.
	ID int

	// Kinds is the number of resource kinds in use; kind Kinds-1 is the
	// terminal resource.
	Kinds int

	// Costs[k] is the price of one producer of kind k.
	Costs [MaxKinds]Vector

	// Initial is the producer set at t=0. The zero value means a single
	// producer of kind 0.
	Initial Vector
}

// Terminal returns the index of the terminal resource kind.
func (b Blueprint) Terminal() int { return b.Kinds - 1 }

// Validate checks the dependency order and sign of every cost entry.
func (b Blueprint) Validate() error {
	if b.Kinds < 1 || b.Kinds > MaxKinds {
		return fmt.Errorf("%w: %d", ErrKinds, b.Kinds)
	}
	var k, r int
	for k = 0; k < MaxKinds; k++ {
		for r = 0; r < MaxKinds; r++ {
			c := b.Costs[k][r]
			switch {
			case c < 0:
				return fmt.Errorf("%w: producer %d costs %d of kind %d", ErrBadCost, k, c, r)
			case c > 0 && (k >= b.Kinds || r >= b.Kinds):
				return fmt.Errorf("%w: producer %d uses kind %d outside %d kinds", ErrBadCost, k, r, b.Kinds)
			case c > 0 && r > k:
				return fmt.Errorf("%w: producer %d depends on later kind %d", ErrBadCost, k, r)
			case c > 0 && r == b.Terminal():
				return fmt.Errorf("%w: producer %d spends the terminal resource", ErrBadCost, k)
			}
		}
		if b.Initial[k] < 0 || (k >= b.Kinds && b.Initial[k] > 0) {
			return fmt.Errorf("%w: kind %d count %d", ErrBadInitial, k, b.Initial[k])
		}
	}

	return nil
}

// producers returns the initial producer vector after defaulting.
func (b Blueprint) producers() Vector {
	if b.Initial == (Vector{}) {
		return Vector{1}
	}

	return b.Initial
}

// Build records one producer purchase: started at step T, of the given kind.
type Build struct {
	T    int `yaml:"t"`
	Kind int `yaml:"kind"`
}

// Option configures a Problem.
type Option func(*Options)

// Options holds the problem knobs.
type Options struct {
	// ProducerCap prunes builds of non-terminal producers beyond what a
	// single build can ever spend per step.
	ProducerCap bool

	// Engine is forwarded to bnb.Solve.
	Engine []bnb.Option
}

// DefaultOptions returns the producer cap enabled and no engine options.
func DefaultOptions() Options {
	return Options{ProducerCap: true}
}

// WithProducerCap toggles the producer cap.
func WithProducerCap(on bool) Option {
	return func(o *Options) { o.ProducerCap = on }
}

// WithEngine appends engine options.
func WithEngine(opts ...bnb.Option) Option {
	return func(o *Options) { o.Engine = append(o.Engine, opts...) }
}
