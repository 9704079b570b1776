// Package cli implements the makery command-line interface: one subcommand
// per pattern demo plus version, with global flags for the config and data
// directories.
package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	dataDir   string
}

var flags rootFlags

// NewRootCmd creates the top-level "makery" command with global flags and
// all subcommands registered.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "makery",
		Short: "A sampler of creational design patterns",
		Long: "Makery demonstrates three creational patterns: an abstract factory\n" +
			"of drink families, a factory method assembling storage containers,\n" +
			"and a process-wide session holder.",
		// Do not print usage on errors returned by subcommands.
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flags.configDir, "config-dir", "", "configuration directory (default: .makery)")
	root.PersistentFlags().StringVar(&flags.dataDir, "data-dir", "", "data directory for on-disk stores (default: .makery-db)")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newDrinksCmd())
	root.AddCommand(newContainerCmd())
	root.AddCommand(newSessionCmd())

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		os.Exit(exitUserError)
	}
}

// resolveConfigDir returns the config directory from flag, env, or default.
func resolveConfigDir() string {
	if flags.configDir != "" {
		return flags.configDir
	}
	if v := os.Getenv("MAKERY_CONFIG_DIR"); v != "" {
		return v
	}
	return ".makery"
}

// resolveDataDir returns the data directory from flag or default. A value
// from config.yaml takes effect only when the flag is unset.
func resolveDataDir(cfgDataDir string) string {
	if flags.dataDir != "" {
		return flags.dataDir
	}
	if cfgDataDir != "" {
		return cfgDataDir
	}
	return ".makery-db"
}
