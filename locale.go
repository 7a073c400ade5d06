package localeconfig

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/go-viper/mapstructure/v2"

	"github.com/bluefeet/config-locale/combination"
	"github.com/bluefeet/config-locale/merge"
	"github.com/bluefeet/config-locale/stem"
)

// ErrInvalidAlgorithm is returned when the algorithm is not a defined enum value.
var ErrInvalidAlgorithm = errors.New("invalid combination algorithm")

// ErrInvalidPolicy is returned when the merge policy is not a defined enum value.
var ErrInvalidPolicy = errors.New("invalid merge policy")

// ErrNilLoader is returned when a nil loader is supplied.
var ErrNilLoader = errors.New("loader must not be nil")

// Fragment is one configuration file that was found and parsed for a stem.
type Fragment struct {
	// Path is the file the fragment was parsed from, extension included.
	Path string
	// Role records where the fragment sits in the merge order.
	Role stem.Role
	// Data is the parsed mapping.
	Data map[string]any
}

// Config resolves an identity against a directory of hierarchically-named
// configuration files.
//
// A Config is immutable after construction. Combinations and stems are
// computed eagerly; fragments and the merged mapping are computed on first
// access and cached, so repeated accessor calls return identical results
// without touching the filesystem again. The lazy computations are not
// synchronized: resolve the configuration before sharing a Config between
// goroutines.
type Config struct {
	identity []string
	options  Options

	combinations [][]string
	stems        []stem.Stem

	fragments     []Fragment
	fragmentsErr  error
	fragmentsDone bool

	merged     map[string]any
	mergedErr  error
	mergedDone bool
}

// New returns a Config for the identity. Invalid construction parameters —
// a separator that is not a single character, an unknown algorithm or merge
// policy, a nil loader — are reported here, never later in the pipeline.
func New(identity []string, opts ...Option) (*Config, error) {
	options := defaultOptions()
	for _, apply := range opts {
		apply(&options)
	}

	if !options.Algorithm.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidAlgorithm, int(options.Algorithm))
	}

	if !options.Policy.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPolicy, int(options.Policy))
	}

	if options.Loader == nil {
		return nil, ErrNilLoader
	}

	builder, err := stem.NewBuilder(stem.Config{
		Directory:    options.Directory,
		Separator:    options.Separator,
		Prefix:       options.Prefix,
		Suffix:       options.Suffix,
		DefaultStem:  options.DefaultStem,
		OverrideStem: options.OverrideStem,
	})
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		identity: slices.Clone(identity),
		options:  options,
	}
	cfg.combinations = combination.Generate(cfg.identity, options.Wildcard, options.Algorithm)
	cfg.stems = builder.Paths(cfg.combinations)

	return cfg, nil
}

// Identity returns a copy of the identity the Config was built with.
func (c *Config) Identity() []string {
	return slices.Clone(c.identity)
}

// Combinations returns the ordered identity combinations, least specific
// first. The result is shared with the Config and must not be modified.
func (c *Config) Combinations() [][]string {
	return c.combinations
}

// Stems returns the ordered file stems probed for configuration fragments:
// the default stem first, one stem per combination, the override stem last.
func (c *Config) Stems() []stem.Stem {
	return c.stems
}

// Fragments loads and returns the fragments for every stem whose file
// exists, in merge order. A stem without a file is skipped; read and parse
// failures abort the whole resolution. The result is cached.
func (c *Config) Fragments() ([]Fragment, error) {
	if c.fragmentsDone {
		return c.fragments, c.fragmentsErr
	}

	c.fragmentsDone = true

	for _, s := range c.stems {
		result, err := c.options.Loader.Load(s.Path)
		if err != nil {
			c.fragmentsErr = err

			return nil, c.fragmentsErr
		}

		if result == nil {
			slog.Debug("no configuration file for stem", slog.String("stem", s.Path))

			continue
		}

		slog.Debug("loaded configuration fragment", slog.String("path", result.Path))

		c.fragments = append(c.fragments, Fragment{
			Path: result.Path,
			Role: s.Role,
			Data: result.Data,
		})
	}

	return c.fragments, nil
}

// Merged folds the fragments into the final configuration mapping, most
// specific fragment winning under the default policy. The result is cached
// and must not be modified by the caller.
func (c *Config) Merged() (map[string]any, error) {
	if c.mergedDone {
		return c.merged, c.mergedErr
	}

	c.mergedDone = true

	fragments, err := c.Fragments()
	if err != nil {
		c.mergedErr = err

		return nil, c.mergedErr
	}

	if c.options.ReplaceOverride {
		if last := len(fragments) - 1; last >= 0 && fragments[last].Role == stem.RoleOverride {
			c.merged = fragments[last].Data

			return c.merged, nil
		}
	}

	sources := make([]merge.Source, 0, len(fragments))
	for _, fragment := range fragments {
		sources = append(sources, merge.Source{
			Label:    fragment.Path,
			Defaults: fragment.Role == stem.RoleDefault,
			Data:     fragment.Data,
		})
	}

	c.merged, c.mergedErr = merge.Fold(sources, c.options.Policy, c.options.Strict)

	return c.merged, c.mergedErr
}

// Decode unmarshals the merged configuration into target, which must be a
// pointer. Field names follow json tags, scalar types are converted
// weakly, and time.Duration values are parsed from strings.
func (c *Config) Decode(target any) error {
	merged, err := c.Merged()
	if err != nil {
		return err
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.TextUnmarshallerHookFunc(),
		),
		Result:           target,
		WeaklyTypedInput: true,
		TagName:          "json",
	})
	if err != nil {
		return fmt.Errorf("building decoder: %w", err)
	}

	if err := decoder.Decode(merged); err != nil {
		return fmt.Errorf("decoding merged configuration: %w", err)
	}

	return nil
}
