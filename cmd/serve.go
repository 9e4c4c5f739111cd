/*
Copyright © 2026 The nomen authors
*/

package cmd

import (
	"github.com/mikrolab/nomen/internal/mcp"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server (stdio)",
		Long: `Start a Model Context Protocol server over stdio, exposing the
nomenclature checker to LLM clients as nomen_check, nomen_scan and
nomen_guide tools.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return mcp.Serve()
		},
	}
}
