package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for edge construction.
var (
	// ErrMalformedLabel indicates a label that does not follow <text><digits>(<percent>%).
	ErrMalformedLabel = errors.New("core: malformed label")

	// ErrBadSharedLines indicates a negative shared-lines magnitude.
	ErrBadSharedLines = errors.New("core: shared lines must be non-negative")
)

// ParseError reports a record that could not be turned into an Edge.
// It always wraps ErrMalformedLabel or ErrBadSharedLines.
type ParseError struct {
	// Input is the offending label (or shared-lines value rendered as text).
	Input string

	// Reason is a short human-readable explanation.
	Reason string

	// Err is the sentinel this error wraps.
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v: %q: %s", e.Err, e.Input, e.Reason)
}

// Unwrap exposes the wrapped sentinel to errors.Is.
func (e *ParseError) Unwrap() error { return e.Err }

// Record is one raw similarity measurement as supplied by an external reader.
//
// RefA and RefB are opaque pass-through values (for example hyperlinks to the
// compared files). An empty string means "no reference".
type Record struct {
	LabelA      string `json:"labelA" yaml:"labelA"`
	LabelB      string `json:"labelB" yaml:"labelB"`
	SharedLines int    `json:"sharedLines" yaml:"sharedLines"`
	RefA        string `json:"refA,omitempty" yaml:"refA,omitempty"`
	RefB        string `json:"refB,omitempty" yaml:"refB,omitempty"`
}

// Label is the parsed form of one endpoint label.
type Label struct {
	// Name is the display text preceding "(", trailing blanks trimmed.
	Name string

	// ID is the node identifier built from the digits of Name.
	ID int

	// Percent is the similarity share in [0,100].
	Percent int
}

// Edge is one undirected similarity link between nodes A and B.
// Edges are plain values and are never mutated after NewEdge.
type Edge struct {
	// NameA and NameB are the display names of the endpoints.
	NameA, NameB string

	// PercentA is the share of A found in B; PercentB the share of B found in A.
	PercentA, PercentB int

	// SharedLines is the magnitude of the overlap.
	SharedLines int

	// Weight is max(PercentA, PercentB).
	Weight int

	// A and B are the node ids of the endpoints.
	A, B int

	// RefA and RefB are passed through from the Record unchanged.
	RefA, RefB string
}
