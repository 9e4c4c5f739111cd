/*
Copyright © 2026 The nomen authors
*/

package cmd

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mikrolab/nomen/internal/log"
	"github.com/mikrolab/nomen/internal/logfile"
	"github.com/mikrolab/nomen/internal/nomen"
	"github.com/mikrolab/nomen/internal/progress"
	"github.com/mikrolab/nomen/internal/scan"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newScanCmd() *cobra.Command {
	var (
		force bool
		noLog bool
	)

	cmd := &cobra.Command{
		Use:   "scan [dir]",
		Short: "Find and validate image files under a directory",
		Long: `Walk a directory for microscopy image files (.czi, .tif, .tiff,
.lsm by default) and validate every filename against the nomenclature.
Reports are printed and, unless disabled, appended to a timestamped
log file. Files are never renamed. Exits 1 when any name does not fit.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			return runScan(dir, force, noLog)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip the confirmation prompt")
	cmd.Flags().BoolVar(&noLog, "no-log", false, "Do not write the report log file")

	return cmd
}

func runScan(dir string, force, noLog bool) error {
	files, err := scan.Discover(dir, cfg.Extensions())

	log.Event("cli:scan", "discover").Path(dir).Files(len(files)).Write(err)

	if err != nil {
		return PrintJSONError(fmt.Errorf("scan %s: %w", dir, err))
	}
	if len(files) == 0 {
		fmt.Fprintf(out, "no image files found under %s\n", dir)
		return nil
	}

	if !force && !JSON() && term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintf(out, "Found %d image files under %s. Validate their names? [y/N] ", len(files), dir)
		reader := bufio.NewReader(os.Stdin)
		response, err := reader.ReadString('\n')
		if err != nil {
			return PrintJSONError(fmt.Errorf("reading confirmation: %w", err))
		}
		response = strings.TrimSpace(strings.ToLower(response))
		if response != "y" && response != "yes" {
			fmt.Fprintln(out, "Cancelled")
			return nil
		}
	}

	var sink *logfile.Writer
	if !noLog && !cfg.LogDisabled() {
		sink, err = logfile.New(cfg.LogDir())
		if err != nil {
			// The scan is still worth running; the terminal output remains.
			fmt.Fprintf(os.Stderr, "warning: report log unavailable: %v\n", err)
		} else {
			defer sink.Close()
		}
	}

	var consistent, inconsistent, unparseable int
	prog := progress.New("validating", len(files))
	for _, f := range files {
		rep := nomen.Check(filepath.Base(f), nomen.Options{Verbose: Verbose()})
		switch {
		case rep.Split != nil:
			unparseable++
		case rep.Consistent:
			consistent++
		default:
			inconsistent++
		}
		printReport(rep)
		if sink != nil {
			if werr := sink.Report(rep.Lines()); werr != nil {
				fmt.Fprintf(os.Stderr, "warning: report log write failed: %v\n", werr)
				sink = nil
			}
		}
		prog.Step()
	}
	prog.Done()

	if sink != nil {
		_ = sink.Summary(len(files), consistent, inconsistent, unparseable)
		fmt.Fprintf(out, "report log: %s\n", sink.Path())
	}
	if !JSON() {
		fmt.Fprintf(out, "checked %d, consistent %d, inconsistent %d, unparseable %d\n",
			len(files), consistent, inconsistent, unparseable)
	}

	log.Event("cli:scan", "scan").
		Path(dir).
		Files(len(files)).
		Counts(consistent, inconsistent+unparseable).
		Detail("unparseable", unparseable).
		Write(nil)

	if inconsistent+unparseable > 0 {
		return PrintJSONError(fmt.Errorf("%d of %d names do not fit the nomenclature",
			inconsistent+unparseable, len(files)))
	}
	return nil
}
