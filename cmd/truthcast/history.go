package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/truthcast/truthcast/internal/config"
	"github.com/truthcast/truthcast/internal/database"
	"github.com/truthcast/truthcast/internal/labels"
	"github.com/truthcast/truthcast/internal/report"
)

// NewHistoryCmd creates the history command.
// This command lists and re-renders exports recorded in the archive database.
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List and inspect archived exports",
		Long: `History lists reports recorded in the export archive.

Every export is archived together with the full analysis snapshot it was
rendered from, so past reports can be listed and re-rendered without the
original input files.

Examples:
  # List the most recent exports
  truthcast history

  # List the last 5 exports
  truthcast history --limit 5

  # Print a terminal summary of an archived snapshot
  truthcast history --show 3

  # Re-render an archived snapshot as markdown to stdout
  truthcast history --show 3 --markdown`,
		Args: cobra.NoArgs,
		RunE: runHistoryCmd,
	}

	// Listing flags
	cmd.Flags().IntP("limit", "n", 20,
		"Maximum number of exports to list (0 for all)")

	// Inspection flags
	cmd.Flags().Int64P("show", "s", 0,
		"Show the archived snapshot with this export ID (use the list to find IDs)")
	cmd.Flags().BoolP("json", "j", false,
		"Render the shown snapshot as pretty-printed JSON")
	cmd.Flags().BoolP("markdown", "m", false,
		"Render the shown snapshot as markdown")

	return cmd
}

// runHistoryCmd executes the history command.
func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	showID, err := cmd.Flags().GetInt64("show")
	if err != nil {
		return err
	}

	// Open the archive; the database must already exist, history makes no
	// sense before the first export.
	db, err := database.Open(config.XDGDataDir(), database.Options{
		CreateIfNotExists: false,
		EnableWAL:         true,
	})
	if err != nil {
		return fmt.Errorf("no export archive found (run 'truthcast export' first): %w", err)
	}
	defer db.Close()

	ctx := context.Background()

	if showID > 0 {
		return showArchivedSnapshot(ctx, cmd, db, showID)
	}

	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return err
	}
	return listExportHistory(ctx, cmd, db, limit)
}

// listExportHistory lists archived exports, most recent first.
func listExportHistory(ctx context.Context, cmd *cobra.Command, db *database.ExportDB, limit int) error {
	exports, err := db.ListExports(ctx, limit)
	if err != nil {
		return fmt.Errorf("failed to list exports: %w", err)
	}

	out := cmd.OutOrStdout()

	if len(exports) == 0 {
		fmt.Fprintln(out, "No exports found in the archive.")
		fmt.Fprintln(out, "\nUse 'truthcast export <snapshot.json>' to export a report.")
		return nil
	}

	tr := labels.NewChinese()

	fmt.Fprintf(out, "Export history (%d exports):\n\n", len(exports))
	fmt.Fprintf(out, "  %-6s  %-20s  %-10s  %-36s  %s\n", "ID", "Date", "Format", "Filename", "Risk")
	fmt.Fprintln(out, "  "+strings.Repeat("-", 90))

	for _, meta := range exports {
		risk := "N/A"
		if meta.RiskLabel != "" {
			risk = fmt.Sprintf("%s (%.1f)", tr.RiskLabel(meta.RiskLabel), meta.RiskScore)
		}
		fmt.Fprintf(out, "  %-6d  %-20s  %-10s  %-36s  %s\n",
			meta.ID,
			meta.ExportedAt.Format("2006-01-02 15:04:05"),
			meta.Format,
			meta.Filename,
			risk,
		)
	}

	fmt.Fprintln(out, "\nUse 'truthcast history --show <id>' to inspect an archived snapshot.")

	return nil
}

// showArchivedSnapshot re-renders an archived snapshot to stdout.
func showArchivedSnapshot(ctx context.Context, cmd *cobra.Command, db *database.ExportDB, id int64) error {
	snapshot, err := db.GetSnapshotByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load archived snapshot: %w", err)
	}
	if snapshot == nil {
		return fmt.Errorf("no export with ID %d in the archive (use 'truthcast history' to list IDs)", id)
	}

	jsonOutput, err := cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}
	markdownOutput, err := cmd.Flags().GetBool("markdown")
	if err != nil {
		return err
	}
	if jsonOutput && markdownOutput {
		return config.ErrConflictingFormats
	}

	out := cmd.OutOrStdout()

	if jsonOutput {
		writer := report.NewJSONWriter(out, report.WithPrettyPrint())
		if _, err := writer.Write(snapshot); err != nil {
			return err
		}
		// The writer emits the bare mirror; terminate the line for the terminal.
		fmt.Fprintln(out)
		return nil
	}

	if markdownOutput {
		writer := report.NewMarkdownWriter(out)
		_, err := writer.Write(snapshot)
		return err
	}

	// Terminal summary (default)
	writer := report.NewSimpleWriter(out)
	_, err = writer.Write(snapshot)
	return err
}
