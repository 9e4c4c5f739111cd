/*
Copyright © 2026 The nomen authors
*/

// root.go defines the root command and CLI execution entry point.
//
// Separated from flags.go to isolate cobra setup from flag state.
// The command tree is built fresh by NewRootCmd so that binding the
// global flags re-establishes their defaults; PersistentPreRunE loads
// configuration once so every command sees the same settings. The
// audit logger is opened in Execute so a logging failure can only
// ever cost a warning, never the run.

package cmd

import (
	"fmt"
	"os"
	"slices"

	"github.com/mikrolab/nomen/internal/log"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root cobra command with all subcommands and
// global flags attached.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "nomen",
		Short: "Microscopy filename nomenclature checker",
		Long: `nomen validates microscopy image filenames against the lab's
eight-field naming convention, reconstructs the canonical name for
each file, and reports discrepancies. It never renames files.`,
		SilenceUsage: true,
		Run: func(cmd *cobra.Command, _ []string) {
			_ = cmd.Help()
		},
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if output != "" && !slices.Contains(validOutputFormats, output) {
				return fmt.Errorf("invalid output format: %s (valid: %v)", output, validOutputFormats)
			}
			return loadConfig()
		},
	}

	bindGlobalFlags(rootCmd)

	rootCmd.AddCommand(
		newCheckCmd(),
		newScanCmd(),
		newGuideCmd(),
		newHistoryCmd(),
		newServeCmd(),
		newVersionCmd(),
	)

	return rootCmd
}

// Execute runs the root command and handles process lifecycle.
// Opens audit logging, executes the command, and exits 1 on error.
func Execute() {
	// Initialise audit logger (warn if it fails, but continue)
	if err := log.Open(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: audit log unavailable: %v\n", err)
	}
	defer log.Close()

	if err := NewRootCmd().Execute(); err != nil {
		log.Close()
		os.Exit(1)
	}
}
