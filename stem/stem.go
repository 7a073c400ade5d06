// Package stem maps identity combinations to the extension-less file paths
// probed for configuration fragments.
package stem

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// ErrSeparator is returned when the separator is not exactly one character.
var ErrSeparator = errors.New("separator must be exactly one character")

// Role identifies how a stem participates in the merge order.
type Role int

const (
	// RoleDefault marks the stem loaded before all combination stems.
	RoleDefault Role = iota
	// RoleCombination marks a stem derived from an identity combination.
	RoleCombination
	// RoleOverride marks the stem loaded after all combination stems.
	RoleOverride
)

// Stem is one candidate configuration file path, without its extension.
type Stem struct {
	Path string
	Role Role
}

// Config holds the Builder construction parameters.
type Config struct {
	// Directory is the directory the stems are resolved against.
	Directory string
	// Separator joins combination values into a file name. It must be
	// exactly one character.
	Separator string
	// Prefix and Suffix decorate combination-derived file names. The
	// default and override stems are exempt.
	Prefix string
	Suffix string
	// DefaultStem names the stem loaded before everything else. Empty
	// disables it.
	DefaultStem string
	// OverrideStem names the stem loaded after everything else. Empty
	// disables it.
	OverrideStem string
}

// SetDefaults fills in the current directory and the "." separator.
func (c *Config) SetDefaults() {
	if c.Directory == "" {
		c.Directory = "."
	}

	if c.Separator == "" {
		c.Separator = "."
	}
}

// Validate checks that the separator is exactly one character.
func (c *Config) Validate() error {
	if utf8.RuneCountInString(c.Separator) != 1 {
		return fmt.Errorf("%w: %q", ErrSeparator, c.Separator)
	}

	return nil
}

// Builder produces probe paths from identity combinations.
type Builder struct {
	cfg Config
}

// NewBuilder validates cfg and returns a Builder. Separator violations are
// reported here, at construction, never during stem building.
func NewBuilder(cfg Config) (*Builder, error) {
	cfg.SetDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Builder{cfg: cfg}, nil
}

// Paths returns one stem per combination in merge order: the default stem
// first, combination stems in the given order, the override stem last.
// A combination that yields an empty file name has nothing to probe and is
// skipped.
func (b *Builder) Paths(combinations [][]string) []Stem {
	stems := make([]Stem, 0, len(combinations)+2)

	if b.cfg.DefaultStem != "" {
		stems = append(stems, Stem{
			Path: filepath.Join(b.cfg.Directory, b.cfg.DefaultStem),
			Role: RoleDefault,
		})
	}

	for _, combo := range combinations {
		name := b.cfg.Prefix + strings.Join(combo, b.cfg.Separator) + b.cfg.Suffix
		if name == "" {
			continue
		}

		stems = append(stems, Stem{
			Path: filepath.Join(b.cfg.Directory, name),
			Role: RoleCombination,
		})
	}

	if b.cfg.OverrideStem != "" {
		stems = append(stems, Stem{
			Path: filepath.Join(b.cfg.Directory, b.cfg.OverrideStem),
			Role: RoleOverride,
		})
	}

	return stems
}
