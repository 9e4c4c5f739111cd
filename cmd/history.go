/*
Copyright © 2026 The nomen authors
*/

package cmd

import (
	"fmt"
	"time"

	"github.com/mikrolab/nomen/internal/log"
	"github.com/spf13/cobra"
)

func newHistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent validation runs from the audit log",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			entries, err := log.Recent(limit)
			if err != nil {
				return PrintJSONError(fmt.Errorf("read audit log: %w", err))
			}
			if JSON() {
				return PrintJSON(entries)
			}
			if len(entries) == 0 {
				fmt.Fprintln(out, "no validation runs recorded")
				return nil
			}
			for _, e := range entries {
				when := time.Unix(e.Start, 0).Format("2006-01-02 15:04")
				status := "ok"
				if !e.Success {
					status = "failed: " + e.Error
				}
				fmt.Fprintf(out, "%s  %-16s  %-30s  files %d (consistent %d, inconsistent %d)  %s\n",
					when, e.Source, e.Path, e.Files, e.Consistent, e.Inconsistent, status)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of entries to show")

	return cmd
}
