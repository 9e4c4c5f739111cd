/*
Copyright © 2026 The nomen authors
*/

// flags.go defines global CLI flags and accessors for shared state.
//
// Flags are package-level variables bound to the root command;
// commands read them through accessors rather than touching the
// variables, keeping command files free of cobra flag plumbing.

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mikrolab/nomen/internal/config"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var validOutputFormats = []string{"json"}

var (
	output  string
	cfgFile string
	noColor bool
	verbose bool
)

// cfg is the loaded configuration, populated by loadConfig before any
// command runs. Never nil afterwards.
var cfg = &config.Config{}

// out is the output writer for commands. Defaults to os.Stdout.
// Tests can replace this to capture output.
var out io.Writer = os.Stdout

// SetOut sets the output writer (for testing).
func SetOut(w io.Writer) { out = w }

// Out returns the output writer.
func Out() io.Writer { return out }

// JSON returns true if JSON output is requested.
func JSON() bool { return output == "json" }

// Verbose returns true when verbose reports were requested, by flag
// or by configuration.
func Verbose() bool { return verbose || cfg.Verbose() }

// Colour reports whether ANSI colour should be used on stdout.
func Colour() bool {
	if noColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := out.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// PrintJSON marshals v to JSON and writes it to the output writer.
// Returns nil if output format is not JSON.
func PrintJSON(v any) error {
	if output != "json" {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	fmt.Fprintln(out, string(b))
	return nil
}

// PrintJSONError prints an error in JSON format if output is JSON.
// Returns nil if the error was printed (suppressing cobra's duplicate
// printing), or the original error if not.
func PrintJSONError(err error) error {
	if output != "json" || err == nil {
		return err
	}
	_ = PrintJSON(map[string]string{"error": err.Error()})
	return nil
}

// loadConfig resolves the configuration for this run: --config wins,
// otherwise local config falls back to global, falling back to
// defaults when neither file exists.
func loadConfig() error {
	if cfgFile != "" {
		c, err := config.LoadFile(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c
		return nil
	}
	c, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg = c
	return nil
}

// bindGlobalFlags attaches the persistent flags to the root command.
// Binding resets each variable to its default, so a freshly built
// command tree always starts from a clean flag state.
func bindGlobalFlags(rootCmd *cobra.Command) {
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "", "Output format (json)")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default .nomen/config.yaml, then ~/.nomen/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable coloured output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Include the per-field breakdown in reports")
}
