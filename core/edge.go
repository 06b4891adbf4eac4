package core

import (
	"fmt"
	"strconv"
)

// NewEdge parses both labels of rec and derives the edge weight.
// Any malformed label or a negative SharedLines yields a *ParseError.
func NewEdge(rec Record) (Edge, error) {
	la, err := ParseLabel(rec.LabelA)
	if err != nil {
		return Edge{}, err
	}
	lb, err := ParseLabel(rec.LabelB)
	if err != nil {
		return Edge{}, err
	}
	if rec.SharedLines < 0 {
		return Edge{}, &ParseError{
			Input:  strconv.Itoa(rec.SharedLines),
			Reason: "negative shared lines",
			Err:    ErrBadSharedLines,
		}
	}

	return Edge{
		NameA:       la.Name,
		NameB:       lb.Name,
		PercentA:    la.Percent,
		PercentB:    lb.Percent,
		SharedLines: rec.SharedLines,
		Weight:      max(la.Percent, lb.Percent),
		A:           la.ID,
		B:           lb.ID,
		RefA:        rec.RefA,
		RefB:        rec.RefB,
	}, nil
}

// FromRecords converts every record or none: the first failure aborts and is
// returned with its zero-based record index.
func FromRecords(recs []Record) ([]Edge, error) {
	edges := make([]Edge, 0, len(recs))
	for i, rec := range recs {
		e, err := NewEdge(rec)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		edges = append(edges, e)
	}

	return edges, nil
}

// Compare orders edges best-first: higher Weight, then higher SharedLines.
// It returns -1 if a precedes b, +1 if b precedes a, and 0 if they are order-equivalent.
func Compare(a, b Edge) int {
	switch {
	case a.Weight > b.Weight:
		return -1
	case a.Weight < b.Weight:
		return 1
	case a.SharedLines > b.SharedLines:
		return -1
	case a.SharedLines < b.SharedLines:
		return 1
	default:
		return 0
	}
}

// Less reports whether a strictly precedes b under Compare.
func Less(a, b Edge) bool { return Compare(a, b) < 0 }

// DisplayA renders endpoint A as "<name> (<percent>%)".
func (e Edge) DisplayA() string { return fmt.Sprintf("%s (%d%%)", e.NameA, e.PercentA) }

// DisplayB renders endpoint B as "<name> (<percent>%)".
func (e Edge) DisplayB() string { return fmt.Sprintf("%s (%d%%)", e.NameB, e.PercentB) }
