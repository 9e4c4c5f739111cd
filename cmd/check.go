/*
Copyright © 2026 The nomen authors
*/

package cmd

import (
	"fmt"
	"strings"

	"github.com/mikrolab/nomen/internal/diff"
	"github.com/mikrolab/nomen/internal/log"
	"github.com/mikrolab/nomen/internal/nomen"
	"github.com/spf13/cobra"
)

// reportJSON is the machine-readable shape of a validation report.
type reportJSON struct {
	Input      string   `json:"input"`
	Current    string   `json:"current"`
	Updated    string   `json:"updated"`
	Consistent bool     `json:"consistent"`
	Problems   []string `json:"problems,omitempty"`
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <name>...",
		Short: "Validate filenames against the nomenclature",
		Long: `Validate one or more filenames against the eight-field naming
convention. Each name is checked independently; nothing on disk is
read or changed. Exits 1 when any name does not fit exactly.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			inconsistent := 0
			for _, name := range args {
				rep := nomen.Check(name, nomen.Options{Verbose: Verbose()})
				if !rep.Consistent {
					inconsistent++
				}
				printReport(rep)
			}

			log.Event("cli:check", "check").
				Files(len(args)).
				Counts(len(args)-inconsistent, inconsistent).
				Write(nil)

			if inconsistent > 0 {
				return PrintJSONError(fmt.Errorf("%d of %d names do not fit the nomenclature", inconsistent, len(args)))
			}
			return nil
		},
	}
}

// printReport writes one report to the output writer in the selected
// format.
func printReport(rep nomen.Report) {
	if JSON() {
		_ = PrintJSON(toReportJSON(rep))
		return
	}
	colour := Colour()
	for _, line := range rep.Lines() {
		if colour && strings.Contains(line, "changes: ") {
			line = diff.Colourise(line)
		}
		fmt.Fprintln(out, line)
	}
}

func toReportJSON(rep nomen.Report) reportJSON {
	j := reportJSON{
		Input:      rep.Input,
		Current:    rep.CurrentName(),
		Updated:    rep.UpdatedName(),
		Consistent: rep.Consistent,
	}
	for _, f := range rep.Findings {
		if f.Level == nomen.LevelProblem {
			j.Problems = append(j.Problems, f.Message)
		}
	}
	return j
}
