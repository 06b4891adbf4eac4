package core

import (
	"strconv"
	"strings"
)

// maxPercent bounds Label.Percent and therefore Edge.Weight.
const maxPercent = 100

// ParseLabel splits a label of the form <text><digits>(<percent>%) into its
// display name, node id and percentage.
//
// Steps:
//  1. Locate "(" and the first "%" after it; either missing → ErrMalformedLabel.
//  2. Collect every digit of the prefix in order; none → ErrMalformedLabel.
//  3. Parse the text between "(" and "%" as an integer in [0,100].
//
// Complexity: O(len(s)).
func ParseLabel(s string) (Label, error) {
	// 1. Delimiters.
	open := strings.IndexByte(s, '(')
	if open < 0 {
		return Label{}, malformed(s, "missing '('")
	}
	closing := strings.IndexByte(s[open+1:], '%')
	if closing < 0 {
		return Label{}, malformed(s, "missing '%'")
	}
	closing += open + 1

	// 2. Digits of the prefix form the id.
	prefix := s[:open]
	var digits strings.Builder
	for i := 0; i < len(prefix); i++ {
		if c := prefix[i]; c >= '0' && c <= '9' {
			digits.WriteByte(c)
		}
	}
	if digits.Len() == 0 {
		return Label{}, malformed(s, "no digits in identifier")
	}
	id, err := strconv.Atoi(digits.String())
	if err != nil {
		return Label{}, malformed(s, "identifier out of range")
	}

	// 3. Percentage.
	pct, err := strconv.Atoi(strings.TrimSpace(s[open+1 : closing]))
	if err != nil {
		return Label{}, malformed(s, "percentage is not an integer")
	}
	if pct < 0 || pct > maxPercent {
		return Label{}, malformed(s, "percentage outside [0,100]")
	}

	return Label{
		Name:    strings.TrimRight(prefix, " \t"),
		ID:      id,
		Percent: pct,
	}, nil
}

func malformed(input, reason string) *ParseError {
	return &ParseError{Input: input, Reason: reason, Err: ErrMalformedLabel}
}
