/*
Copyright © 2026 The nomen authors
*/

package cmd

import (
	"fmt"

	"github.com/mikrolab/nomen/internal/version"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show build version information",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			info := version.Get()
			if JSON() {
				return PrintJSON(info)
			}
			fmt.Fprint(out, info.String())
			return nil
		},
	}
}
