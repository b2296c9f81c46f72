// Package cli implements the optic command-line interface, a thin consumer
// of the keypath library used to inspect the capability table and run a
// small demonstration over generated sample data.
package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	verbose   bool
}

var flags rootFlags

// NewRootCmd creates the top-level "optic" command with global flags and all
// subcommands registered.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "optic",
		Short: "Explore composable keypaths from the command line",
		Long: "Optic inspects the keypath capability table and demonstrates\n" +
			"composition, container adapters, and type erasure over sample data.",
		// Do not print usage on errors returned by subcommands.
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flags.configDir, "config-dir", "", "configuration directory (default: .optic)")
	root.PersistentFlags().BoolVar(&flags.verbose, "verbose", false, "log each demonstration step to stderr")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newKindsCmd())
	root.AddCommand(newDemoCmd())

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "optic:", err)
		os.Exit(exitUserError)
	}
	os.Exit(exitSuccess)
}

// resolveConfigDir returns the config directory from flag, env, or default.
func resolveConfigDir() string {
	if flags.configDir != "" {
		return flags.configDir
	}
	if v := os.Getenv("OPTIC_CONFIG_DIR"); v != "" {
		return v
	}
	return ".optic"
}

// newLogger builds the diagnostic logger; silent unless --verbose is set.
func newLogger() zerolog.Logger {
	level := zerolog.Disabled
	if flags.verbose {
		level = zerolog.DebugLevel
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}
