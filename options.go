package localeconfig

import (
	"github.com/bluefeet/config-locale/combination"
	"github.com/bluefeet/config-locale/loader"
	"github.com/bluefeet/config-locale/merge"
)

// Defaults for the construction parameters.
const (
	DefaultWildcard     = "all"
	DefaultSeparator    = "."
	DefaultDefaultStem  = "default"
	DefaultOverrideStem = "override"
)

// Options holds the construction parameters for a Config.
type Options struct {
	Directory       string
	Wildcard        string
	DefaultStem     string
	OverrideStem    string
	Separator       string
	Prefix          string
	Suffix          string
	Algorithm       combination.Algorithm
	Policy          merge.Policy
	Strict          bool
	ReplaceOverride bool
	Loader          loader.Loader
}

// Option defines a function type for applying construction parameters.
type Option func(*Options)

func defaultOptions() Options {
	return Options{
		Directory:    ".",
		Wildcard:     DefaultWildcard,
		DefaultStem:  DefaultDefaultStem,
		OverrideStem: DefaultOverrideStem,
		Separator:    DefaultSeparator,
		Algorithm:    combination.Nested,
		Policy:       merge.PreferLatest,
		Loader:       loader.NewFileLoader(),
	}
}

// WithDirectory sets the directory configuration files are resolved
// against. Defaults to the current directory.
func WithDirectory(dir string) Option {
	return func(opts *Options) {
		opts.Directory = dir
	}
}

// WithWildcard sets the token substituted for omitted identity values when
// building stems. An empty token is equivalent to WithoutWildcard.
func WithWildcard(token string) Option {
	return func(opts *Options) {
		opts.Wildcard = token
	}
}

// WithoutWildcard disables wildcard substitution: positions without a
// concrete value are dropped from the combination instead.
func WithoutWildcard() Option {
	return func(opts *Options) {
		opts.Wildcard = ""
	}
}

// WithDefaultStem sets the stem name loaded before all combination stems.
// An empty name disables the default stem.
func WithDefaultStem(name string) Option {
	return func(opts *Options) {
		opts.DefaultStem = name
	}
}

// WithOverrideStem sets the stem name loaded after all combination stems.
// An empty name disables the override stem.
func WithOverrideStem(name string) Option {
	return func(opts *Options) {
		opts.OverrideStem = name
	}
}

// WithSeparator sets the single character joining combination values into a
// file name.
func WithSeparator(separator string) Option {
	return func(opts *Options) {
		opts.Separator = separator
	}
}

// WithPrefix sets the string prepended to combination-derived file names.
func WithPrefix(prefix string) Option {
	return func(opts *Options) {
		opts.Prefix = prefix
	}
}

// WithSuffix sets the string appended to combination-derived file names,
// before the extension.
func WithSuffix(suffix string) Option {
	return func(opts *Options) {
		opts.Suffix = suffix
	}
}

// WithAlgorithm selects how combinations are generated from the identity.
func WithAlgorithm(algorithm combination.Algorithm) Option {
	return func(opts *Options) {
		opts.Algorithm = algorithm
	}
}

// WithMergePolicy sets the precedence rule applied when fragments define
// the same value.
func WithMergePolicy(policy merge.Policy) Option {
	return func(opts *Options) {
		opts.Policy = policy
	}
}

// WithStrictDefaults rejects any fragment key that is not declared in the
// default fragment.
func WithStrictDefaults() Option {
	return func(opts *Options) {
		opts.Strict = true
	}
}

// WithOverrideReplace makes an existing override fragment replace the
// merged result outright instead of merging atop it as the most specific
// fragment.
func WithOverrideReplace() Option {
	return func(opts *Options) {
		opts.ReplaceOverride = true
	}
}

// WithLoader substitutes the loader used to probe stems for files.
func WithLoader(l loader.Loader) Option {
	return func(opts *Options) {
		opts.Loader = l
	}
}
