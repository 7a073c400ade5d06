package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	localeconfig "github.com/bluefeet/config-locale"
	"github.com/bluefeet/config-locale/combination"
	"github.com/bluefeet/config-locale/merge"
)

var (
	flagDir             string
	flagWildcard        string
	flagNoWildcard      bool
	flagSeparator       string
	flagPrefix          string
	flagSuffix          string
	flagAlgorithm       string
	flagPolicy          string
	flagDefaultStem     string
	flagOverrideStem    string
	flagStrict          bool
	flagReplaceOverride bool
	flagFormat          string
)

// addLocaleFlags registers the construction-parameter flags shared by the
// resolve, stems and combinations commands.
func addLocaleFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&flagDir, "dir", ".", "directory containing the configuration files")
	flags.StringVar(&flagWildcard, "wildcard", localeconfig.DefaultWildcard, "wildcard token for omitted identity values")
	flags.BoolVar(&flagNoWildcard, "no-wildcard", false, "drop omitted identity values instead of substituting the wildcard")
	flags.StringVar(&flagSeparator, "separator", localeconfig.DefaultSeparator, "single character joining combination values")
	flags.StringVar(&flagPrefix, "prefix", "", "prefix for combination-derived file names")
	flags.StringVar(&flagSuffix, "suffix", "", "suffix for combination-derived file names")
	flags.StringVar(&flagAlgorithm, "algorithm", "nested", "combination algorithm: nested or permute")
	flags.StringVar(&flagPolicy, "policy", "latest", "merge precedence: latest or earliest")
	flags.StringVar(&flagDefaultStem, "default-stem", localeconfig.DefaultDefaultStem, "stem loaded before all others; empty disables")
	flags.StringVar(&flagOverrideStem, "override-stem", localeconfig.DefaultOverrideStem, "stem loaded after all others; empty disables")
	flags.BoolVar(&flagStrict, "strict", false, "reject keys not declared in the default fragment")
	flags.BoolVar(&flagReplaceOverride, "replace-override", false, "an existing override file replaces the result instead of merging")
	flags.StringVar(&flagFormat, "format", "yaml", "output format: yaml or json")
}

// newConfig builds a resolver from the shared flags, with the command
// arguments as the identity.
func newConfig(identity []string) (*localeconfig.Config, error) {
	algorithm, err := combination.Parse(flagAlgorithm)
	if err != nil {
		return nil, err
	}

	policy, err := merge.ParsePolicy(flagPolicy)
	if err != nil {
		return nil, err
	}

	opts := []localeconfig.Option{
		localeconfig.WithDirectory(flagDir),
		localeconfig.WithWildcard(flagWildcard),
		localeconfig.WithSeparator(flagSeparator),
		localeconfig.WithPrefix(flagPrefix),
		localeconfig.WithSuffix(flagSuffix),
		localeconfig.WithAlgorithm(algorithm),
		localeconfig.WithMergePolicy(policy),
		localeconfig.WithDefaultStem(flagDefaultStem),
		localeconfig.WithOverrideStem(flagOverrideStem),
	}

	if flagNoWildcard {
		opts = append(opts, localeconfig.WithoutWildcard())
	}

	if flagStrict {
		opts = append(opts, localeconfig.WithStrictDefaults())
	}

	if flagReplaceOverride {
		opts = append(opts, localeconfig.WithOverrideReplace())
	}

	return localeconfig.New(identity, opts...)
}

// printMapping writes the mapping to w in the selected output format.
func printMapping(w io.Writer, mapping map[string]any) error {
	switch flagFormat {
	case "yaml":
		data, err := yaml.Marshal(mapping)
		if err != nil {
			return fmt.Errorf("marshaling yaml: %w", err)
		}

		_, err = w.Write(data)

		return err
	case "json":
		data, err := json.MarshalIndent(mapping, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling json: %w", err)
		}

		_, err = fmt.Fprintln(w, string(data))

		return err
	default:
		return fmt.Errorf("unknown output format %q", flagFormat)
	}
}

var resolveCmd = &cobra.Command{
	Use:   "resolve [identity values...]",
	Short: "Print the merged configuration for an identity",
	Long: "Resolve loads every configuration file matching the identity and " +
		"prints the merged result, most specific fragment winning.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := newConfig(args)
		if err != nil {
			return err
		}

		merged, err := cfg.Merged()
		if err != nil {
			return err
		}

		return printMapping(cmd.OutOrStdout(), merged)
	},
}

func init() {
	addLocaleFlags(resolveCmd)
}
