package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var stemsCmd = &cobra.Command{
	Use:   "stems [identity values...]",
	Short: "Print the file stems probed for an identity",
	Long: "Stems prints every extension-less path that would be probed for " +
		"configuration files, in merge order: default first, override last.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := newConfig(args)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, s := range cfg.Stems() {
			fmt.Fprintln(out, s.Path)
		}

		return nil
	},
}

var combinationsCmd = &cobra.Command{
	Use:   "combinations [identity values...]",
	Short: "Print the identity combinations for an identity",
	Long: "Combinations prints the expanded identity combinations, least " +
		"specific first, one per line with values space-separated.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := newConfig(args)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, combo := range cfg.Combinations() {
			if len(combo) == 0 {
				fmt.Fprintln(out, "(empty)")

				continue
			}

			fmt.Fprintln(out, strings.Join(combo, " "))
		}

		return nil
	},
}

func init() {
	addLocaleFlags(stemsCmd)
	addLocaleFlags(combinationsCmd)
}
