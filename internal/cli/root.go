package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	localeconfig "github.com/bluefeet/config-locale"
	"github.com/bluefeet/config-locale/logging"
)

// Exit codes.
const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagLogLevel  string
	flagLogFormat string
)

var rootCmd = &cobra.Command{
	Use:   "localecfg",
	Short: "Resolve hierarchically-named configuration files",
	Long: "Localecfg expands an identity (role, instance, environment, ...) into " +
		"candidate configuration file stems, loads whichever files exist and " +
		"deep-merges them, most specific last.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger := logging.NewLogger(logging.LoggerConfig{
			Level:  flagLogLevel,
			Format: flagLogFormat,
		}, os.Stderr)
		slog.SetDefault(logger)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFormat, "log-format", "text", "log format: text or json")

	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(stemsCmd)
	rootCmd.AddCommand(combinationsCmd)
	rootCmd.AddCommand(versionCmd)
}

// Run executes the root command and returns an exit code.
func Run() int {
	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error
		return ExitError
	}

	return ExitSuccess
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print localecfg version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "localecfg version %s (built %s)\n",
			localeconfig.Version, localeconfig.CompiledAt)
	},
}
