/*
Copyright © 2026 The nomen authors
*/

// guide.go implements the "nomen guide" command.
//
// Guides are embedded in the binary via the guide package, so the
// naming rules are always available at the bench without network or
// external files. Terminal output gets glamour rendering; pipes and
// redirects get raw markdown for machine consumption.

package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/mikrolab/nomen/guide"
	"github.com/mikrolab/nomen/internal/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newGuideCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "guide [page]",
		Short: "Show the nomen usage guide",
		Long: `Outputs the nomen guide.

  nomen guide                # usage guide
  nomen guide nomenclature   # the naming convention itself`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			page := ""
			if len(args) > 0 {
				page = args[0]
			}

			content, err := guide.Get(page)
			log.Event("cli:guide", "guide").Detail("page", page).Write(err)
			if err != nil {
				available, listErr := guide.List()
				if listErr != nil {
					return listErr
				}
				return PrintJSONError(fmt.Errorf("guide %q not found. Available: %s", page, strings.Join(available, ", ")))
			}

			if term.IsTerminal(int(os.Stdout.Fd())) {
				rendered, err := glamour.Render(content, "dark")
				if err == nil {
					fmt.Fprint(out, rendered)
					return nil
				}
			}

			fmt.Fprint(out, content)
			return nil
		},
	}
}
