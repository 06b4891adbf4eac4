// Package prim_kruskal defines the Builder abstraction, method selection options
// and sentinel errors for spanning-forest computation.
package prim_kruskal

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/simforest/core"
)

// ErrUnknownMethod indicates a method name that selects no strategy.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown method")

// Method names a spanning-forest strategy.
type Method string

// MethodKruskal selects the sort-and-union strategy.
const MethodKruskal Method = "kruskal"

// MethodPrim selects the frontier-growth strategy.
const MethodPrim Method = "prim"

// ParseMethod maps user input to a Method. Matching is case-insensitive.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "kruskal", "sort-and-union", "1":
		return MethodKruskal, nil
	case "prim", "prims", "frontier-growth", "2":
		return MethodPrim, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMethod, s)
	}
}

// Builder computes a maximum-weight spanning forest. Implementations never
// modify the input slice.
type Builder interface {
	Build(edges []core.Edge) []core.Edge
}

// BuilderFunc adapts a plain function to Builder.
type BuilderFunc func(edges []core.Edge) []core.Edge

// Build calls f(edges).
func (f BuilderFunc) Build(edges []core.Edge) []core.Edge { return f(edges) }

// Options configures which strategy New returns.
type Options struct {
	// Method to use: MethodKruskal or MethodPrim.
	Method Method
}

// Option configures Options.
type Option func(*Options)

// WithMethod returns an Option that sets the strategy.
func WithMethod(m Method) Option {
	return func(o *Options) {
		o.Method = m
	}
}

// DefaultOptions selects Kruskal.
func DefaultOptions() Options {
	return Options{Method: MethodKruskal}
}

// New returns the Builder selected by opts.
func New(opts ...Option) (Builder, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	switch o.Method {
	case MethodKruskal:
		return BuilderFunc(Kruskal), nil
	case MethodPrim:
		return BuilderFunc(Prim), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, o.Method)
	}
}

// Compute selects a strategy, builds the forest and returns it with its total weight.
func Compute(edges []core.Edge, opts ...Option) ([]core.Edge, int, error) {
	b, err := New(opts...)
	if err != nil {
		return nil, 0, err
	}
	forest := b.Build(edges)

	return forest, TotalWeight(forest), nil
}

// TotalWeight sums Edge.Weight over edges.
func TotalWeight(edges []core.Edge) int {
	total := 0
	for _, e := range edges {
		total += e.Weight
	}

	return total
}
