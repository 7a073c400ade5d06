// Package merge folds parsed configuration fragments into a single mapping.
package merge

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Policy controls which side wins when two sources define the same
// non-mapping value.
type Policy int

const (
	// PreferLatest lets later (more specific) sources override earlier ones.
	PreferLatest Policy = iota
	// PreferEarliest keeps the first value seen and ignores later ones.
	PreferEarliest
)

// ErrUnknownPolicy is returned when a policy name cannot be parsed.
var ErrUnknownPolicy = errors.New("unknown merge policy")

// Valid reports whether p is one of the defined policies.
func (p Policy) Valid() bool {
	return p == PreferLatest || p == PreferEarliest
}

// String returns the lower-case name of the policy.
func (p Policy) String() string {
	switch p {
	case PreferLatest:
		return "latest"
	case PreferEarliest:
		return "earliest"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// ParsePolicy returns the Policy named by s. Names are matched
// case-insensitively.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(s) {
	case "latest":
		return PreferLatest, nil
	case "earliest":
		return PreferEarliest, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
	}
}

// Source is one labeled fragment in merge order.
type Source struct {
	// Label names the origin of the fragment, usually a file path.
	Label string
	// Defaults marks the fragment as part of the defaults layer consulted
	// by strict validation.
	Defaults bool
	// Data is the parsed mapping.
	Data map[string]any
}

// ValidationError reports a key introduced outside the defaults layer while
// strict validation is enabled.
type ValidationError struct {
	Key    string
	Source string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("key %q in %s is not declared in the defaults", e.Key, e.Source)
}

// Maps deep-merges over onto under and returns a new mapping. Nested
// mappings are merged key by key; every other value, slices included, is
// replaced wholesale or kept according to the policy. Neither argument is
// modified, but unmerged values are shared with the inputs.
func Maps(under, over map[string]any, policy Policy) map[string]any {
	out := make(map[string]any, len(under)+len(over))

	for key, value := range under {
		out[key] = value
	}

	for key, value := range over {
		existing, ok := out[key]
		if !ok {
			out[key] = value

			continue
		}

		existingMap, existingIsMap := existing.(map[string]any)
		valueMap, valueIsMap := value.(map[string]any)

		if existingIsMap && valueIsMap {
			out[key] = Maps(existingMap, valueMap, policy)

			continue
		}

		if policy == PreferEarliest {
			continue
		}

		out[key] = value
	}

	return out
}

// Fold merges sources in order, least specific first. With strict enabled,
// every top-level key of a non-defaults source must already exist in the
// defaults accumulated so far; a missing key aborts the fold with a
// ValidationError before the offending source is merged. When several keys
// are missing, the first in sort order is reported.
func Fold(sources []Source, policy Policy, strict bool) (map[string]any, error) {
	result := make(map[string]any)
	defaults := make(map[string]any)

	for _, source := range sources {
		if strict && !source.Defaults {
			if key, missing := missingKey(source.Data, defaults); missing {
				return nil, &ValidationError{Key: key, Source: source.Label}
			}
		}

		result = Maps(result, source.Data, policy)

		if source.Defaults {
			defaults = Maps(defaults, source.Data, policy)
		}
	}

	return result, nil
}

// missingKey returns the sort-order first top-level key of data that is not
// present in defaults.
func missingKey(data, defaults map[string]any) (string, bool) {
	keys := make([]string, 0, len(data))
	for key := range data {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	for _, key := range keys {
		if _, ok := defaults[key]; !ok {
			return key, true
		}
	}

	return "", false
}
