package snaxlog

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thelsien/Snaxlog-sub000/internal/nutrition"
	"github.com/thelsien/Snaxlog-sub000/internal/service"
)

var weekDate string

var weekCmd = &cobra.Command{
	Use:   "week",
	Short: "Show a seven-day summary ending at a date",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			report, err := service.WeekSummary(sqldb, weekDate)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Week %s .. %s\n\n", report.FromDate, report.ToDate)
			fmt.Fprintln(out, "DATE\tKCAL\tP\tC\tF")
			for _, d := range report.Days {
				if !d.HasEntries {
					fmt.Fprintf(out, "%s\t-\t-\t-\t-\n", d.Date)
					continue
				}
				fmt.Fprintf(out, "%s\t%d\t%.1f\t%.1f\t%.1f\n", d.Date, d.Calories, d.ProteinG, d.CarbsG, d.FatG)
			}
			fmt.Fprintln(out)

			fmt.Fprintf(out, "Total: %d kcal (P %.1f, C %.1f, F %.1f)\n",
				report.TotalCalories, report.TotalProteinG, report.TotalCarbsG, report.TotalFatG)
			if report.DaysWithEntries > 0 {
				fmt.Fprintf(out, "Average over %d tracked day(s): %.0f kcal (P %.1f, C %.1f, F %.1f)\n",
					report.DaysWithEntries, report.AvgCalories, report.AvgProteinG, report.AvgCarbsG, report.AvgFatG)
			}
			if report.HighestDay != nil {
				fmt.Fprintf(out, "Highest: %s (%d kcal)\n", report.HighestDay.Date, report.HighestDay.Calories)
			}
			if report.LowestDay != nil {
				fmt.Fprintf(out, "Lowest: %s (%d kcal)\n", report.LowestDay.Date, report.LowestDay.Calories)
			}
			if report.AvgProgress.Level != nutrition.LevelNoGoal {
				fmt.Fprintf(out, "Daily average vs goal: %.0f%% (%s)\n", report.AvgProgress.Ratio*100, report.AvgProgress.Level)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(weekCmd)
	weekCmd.Flags().StringVar(&weekDate, "date", "", "Last day of the week to show (YYYY-MM-DD, default today)")
}
