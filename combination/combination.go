// Package combination expands an ordered identity into the ordered list of
// candidate value combinations used to probe for configuration files.
//
// Combinations are emitted least specific first, and the order is a pure
// function of the inputs: downstream merge precedence depends on it, so two
// runs over the same identity always produce the identical sequence.
package combination

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"
)

// Algorithm selects how combinations are generated from an identity.
type Algorithm int

const (
	// Nested produces the cartesian product of wildcard-or-value choices,
	// one entry per identity position.
	Nested Algorithm = iota
	// Permute produces every distinct ordering of every subset of the
	// identity values. The wildcard is ignored in this mode.
	Permute
)

// ErrUnknownAlgorithm is returned when an algorithm name cannot be parsed.
var ErrUnknownAlgorithm = errors.New("unknown algorithm")

// Valid reports whether a is one of the defined algorithms.
func (a Algorithm) Valid() bool {
	return a == Nested || a == Permute
}

// String returns the lower-case name of the algorithm.
func (a Algorithm) String() string {
	switch a {
	case Nested:
		return "nested"
	case Permute:
		return "permute"
	default:
		return fmt.Sprintf("algorithm(%d)", int(a))
	}
}

// Parse returns the Algorithm named by s. Names are matched
// case-insensitively.
func Parse(s string) (Algorithm, error) {
	switch strings.ToLower(s) {
	case "nested":
		return Nested, nil
	case "permute":
		return Permute, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
	}
}

// Generate returns the ordered combinations for identity under the given
// algorithm, least specific first. In Nested mode an empty wildcard means
// positions without a concrete value are dropped from the combination
// instead of substituted; Permute mode never consults the wildcard.
func Generate(identity []string, wildcard string, algorithm Algorithm) [][]string {
	if algorithm == Permute {
		return permute(identity)
	}

	return nested(identity, wildcard)
}

// nested walks an odometer over the N binary wildcard-or-value choices,
// varying the last position fastest, so the all-wildcard combination comes
// first and the all-concrete combination last. With no wildcard configured,
// unselected positions are dropped and a combination that becomes empty is
// discarded entirely.
func nested(identity []string, wildcard string) [][]string {
	n := len(identity)
	combinations := make([][]string, 0, 1<<n)

	for mask := 0; mask < 1<<n; mask++ {
		combo := make([]string, 0, n)

		for pos := 0; pos < n; pos++ {
			// The first identity position maps to the highest bit so that
			// the last position varies fastest.
			if mask&(1<<(n-1-pos)) != 0 {
				combo = append(combo, identity[pos])
			} else if wildcard != "" {
				combo = append(combo, wildcard)
			}
		}

		if len(combo) == 0 && n > 0 {
			continue
		}

		combinations = append(combinations, combo)
	}

	return combinations
}

// permute emits every distinct ordering of every subset of the identity
// values, grouped by subset size ascending. Subsets of equal size keep the
// order in which the cartesian sweep first produced them, and each subset's
// orderings are enumerated lexicographically starting from the sorted
// arrangement. Duplicate identity values collapse to a single subset.
func permute(identity []string) [][]string {
	n := len(identity)
	seen := make(map[string]bool, 1<<n)
	bySize := make([][][]string, n+1)

	for mask := 0; mask < 1<<n; mask++ {
		values := make([]string, 0, n)

		for pos := 0; pos < n; pos++ {
			if mask&(1<<(n-1-pos)) != 0 {
				values = append(values, identity[pos])
			}
		}

		sort.Strings(values)

		key := strings.Join(values, "\x00")
		if seen[key] {
			continue
		}

		seen[key] = true
		bySize[len(values)] = append(bySize[len(values)], values)
	}

	var combinations [][]string

	for _, bases := range bySize {
		for _, base := range bases {
			combinations = append(combinations, orderings(base)...)
		}
	}

	return combinations
}

// orderings enumerates the distinct permutations of base in lexicographic
// order. base must already be sorted.
func orderings(base []string) [][]string {
	current := slices.Clone(base)
	out := [][]string{slices.Clone(current)}

	for nextPermutation(current) {
		out = append(out, slices.Clone(current))
	}

	return out
}

// nextPermutation advances values to its lexicographic successor in place,
// returning false once values is already the final (descending) arrangement.
func nextPermutation(values []string) bool {
	pivot := len(values) - 2
	for pivot >= 0 && values[pivot] >= values[pivot+1] {
		pivot--
	}

	if pivot < 0 {
		return false
	}

	swap := len(values) - 1
	for values[swap] <= values[pivot] {
		swap--
	}

	values[pivot], values[swap] = values[swap], values[pivot]
	slices.Reverse(values[pivot+1:])

	return true
}
