package snaxlog

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/thelsien/Snaxlog-sub000/internal/service"
)

var exportCmd = &cobra.Command{
	Use:   "export <file.json>",
	Short: "Export diary entries and user goals to a JSON snapshot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			data, err := service.ExportSnapshot(sqldb)
			if err != nil {
				return err
			}
			raw, err := json.MarshalIndent(data, "", "  ")
			if err != nil {
				return fmt.Errorf("encode snapshot: %w", err)
			}
			if err := os.WriteFile(args[0], raw, 0o644); err != nil {
				return fmt.Errorf("write snapshot: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d entries and %d goals to %s\n", len(data.Entries), len(data.Goals), args[0])
			return nil
		})
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file.json>",
	Short: "Import a JSON snapshot; entry totals are recomputed from the catalog",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read snapshot: %w", err)
		}
		var data service.ExportData
		if err := json.Unmarshal(raw, &data); err != nil {
			return fmt.Errorf("decode snapshot: %w", err)
		}
		return withDB(func(sqldb *sql.DB) error {
			report, err := service.ImportSnapshot(sqldb, &data)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d entries and %d goals (%d skipped)\n",
				report.EntriesImported, report.GoalsImported, report.Skipped)
			for _, w := range report.Warnings {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", w)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(exportCmd, importCmd)
}
