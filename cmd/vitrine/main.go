// Vitrine is a terminal showcase page.
//
// It shows a slide carousel with autoplay, swipe and dot navigation, a
// details dialog and a contact form that validates input locally. Nothing
// typed into the page is stored or sent anywhere.
//
// Usage:
//
//	vitrine [command] [flags]
//
// Running without arguments opens the page.
// See 'vitrine --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/vitrine/internal/config"
	"github.com/muurk/vitrine/internal/logging"
	"github.com/muurk/vitrine/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// Global flags
var (
	configPath string
	logLevel   string
	logFile    string
)

var rootCmd = &cobra.Command{
	Use:   "vitrine",
	Short: "Terminal showcase page",
	Long: `A terminal showcase page: a slide carousel, a details dialog and a
contact form.

Slides advance on their own and can be driven with the arrow keys, the
nav controls, the dots, a mouse drag or a sideways trackpad swipe.

If no command is specified, the page opens full screen.`,
	Version:       version.Version,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runPage,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Sync()
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: $"+config.PathEnvVar+" or the user config dir)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); overrides $"+logging.LogLevelEnvVar)
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Log file for the page (default: vitrine.log in the config dir)")

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		info := version.Get()
		fmt.Fprintf(cmd.OutOrStdout(), "vitrine %s (commit: %s, %s, %s)\n",
			info.Version, info.Commit, info.GoVersion, info.Platform)
	},
}
