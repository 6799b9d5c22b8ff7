// Package main provides the entry point for the TruthCast CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for TruthCast.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "truthcast",
		Short: "Export text-risk analysis snapshots as shareable reports",
		Long: `TruthCast exports text-risk analysis snapshots as shareable reports.

A snapshot bundles the analyzed input text with detection results, claim
verdicts, evidence chains, public-opinion simulations, and response drafts.
TruthCast renders it as a lossless JSON mirror, a human-readable markdown
document, or a standalone HTML page, and keeps an archive of past exports.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewExportCmd())
	cmd.AddCommand(NewHistoryCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
