package search

import (
	"math"

	"github.com/katalvlaran/xtalmap/mapping"
)

// Options configures the mapping search orchestrator. Zero value is not
// valid; MapStructures, MapLattices and MapAtoms start from the defaults
// and apply the With* functions passed to them.
type Options struct {
	Alpha, Beta float64

	MaxLatticeCost float64
	MaxAtomCost    float64
	MaxTotalCost   float64
	KBest          int

	MinVolume          int
	MaxVolume          int
	ReorientationBound int

	Robust         bool
	Tol            float64
	MaxEigenIter   int
	MaxVoronoiIter int
}

// Option mutates Options; the functional-options pattern used throughout
// this module's public constructors.
type Option func(*Options)

func WithWeights(alpha, beta float64) Option {
	return func(o *Options) { o.Alpha, o.Beta = alpha, beta }
}
func WithMaxLatticeCost(cost float64) Option { return func(o *Options) { o.MaxLatticeCost = cost } }
func WithMaxAtomCost(cost float64) Option    { return func(o *Options) { o.MaxAtomCost = cost } }
func WithMaxTotalCost(cost float64) Option   { return func(o *Options) { o.MaxTotalCost = cost } }
func WithKBest(k int) Option                 { return func(o *Options) { o.KBest = k } }
func WithVolumeRange(min, max int) Option {
	return func(o *Options) { o.MinVolume, o.MaxVolume = min, max }
}
func WithReorientationBound(bound int) Option {
	return func(o *Options) { o.ReorientationBound = bound }
}
func WithRobustPBC(robust bool) Option { return func(o *Options) { o.Robust = robust } }
func WithTol(tol float64) Option       { return func(o *Options) { o.Tol = tol } }

func defaultOptions() Options {
	return Options{
		Alpha:              1,
		Beta:               1,
		MaxLatticeCost:     math.Inf(1),
		MaxAtomCost:        math.Inf(1),
		MaxTotalCost:       math.Inf(1),
		KBest:              1,
		MinVolume:          1,
		MaxVolume:          1,
		ReorientationBound: 1,
		Tol:                1e-8,
		MaxEigenIter:       200,
		MaxVoronoiIter:     50,
	}
}

func (o Options) validate() error {
	if o.KBest <= 0 || o.Tol <= 0 || o.Alpha < 0 || o.Beta < 0 || o.MinVolume <= 0 || o.MaxVolume < o.MinVolume {
		return ErrInvalidInput
	}
	return nil
}

// Result is the orchestrator's output: an ordered list of surviving
// mappings (ascending score) and whether enumeration stopped early because
// of a cost ceiling or the k_best cap rather than exhausting the search
// space.
type Result struct {
	Mappings  []mapping.ScoredStructureMapping
	Truncated bool
}
