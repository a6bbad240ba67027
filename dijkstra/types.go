// Package dijkstra defines the configuration options and sentinel errors
// for the shortest-path computation.
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by Dijkstra's input validation. Algorithmic
// conditions (including negative weights) never produce an error.
var (
	// ErrNoSource indicates that no Source option was supplied.
	ErrNoSource = errors.New("dijkstra: source vertex not set")

	// ErrNilGraph indicates that a nil *graph.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source vertex does not exist
	// in the provided graph.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrBadMaxDistance indicates that WithMaxDistance received a negative cap.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Options configures a single Dijkstra run.
//
// Source      – starting vertex (required; selected via the Source option).
// ReturnPath  – if true, return the predecessor map; otherwise it is nil.
// MaxDistance – cap on distances to explore. Default +Inf (no cap).
type Options[V comparable] struct {
	Source      V
	ReturnPath  bool
	MaxDistance float64

	hasSource bool // Source carries no usable zero sentinel for generic V
}

// Option is a functional option for configuring Dijkstra.
type Option[V comparable] func(*Options[V])

// Source sets the starting vertex. Must be supplied on every call;
// without it Dijkstra returns ErrNoSource.
func Source[V comparable](v V) Option[V] {
	return func(o *Options[V]) {
		o.Source = v
		o.hasSource = true
	}
}

// WithReturnPath enables the predecessor map in the result. If unset
// (default), the predecessor map is nil.
func WithReturnPath[V comparable]() Option[V] {
	return func(o *Options[V]) { o.ReturnPath = true }
}

// WithMaxDistance caps exploration: once the nearest frontier entry
// exceeds d, the run stops and farther vertices keep +Inf.
// Panics with ErrBadMaxDistance on a negative cap — invalid configuration
// is a programmer error, caught at option-application time.
func WithMaxDistance[V comparable](d float64) Option[V] {
	return func(o *Options[V]) {
		if d < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = d
	}
}

// DefaultOptions returns the Options Dijkstra starts from before applying
// functional overrides: no source, no predecessor map, no distance cap.
func DefaultOptions[V comparable]() Options[V] {
	return Options[V]{MaxDistance: math.Inf(1)}
}
