package snaxlog

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/thelsien/Snaxlog-sub000/internal/nutrition"
	"github.com/thelsien/Snaxlog-sub000/internal/service"
)

var (
	dayDate   string
	dayOffset int
)

var dayCmd = &cobra.Command{
	Use:   "day",
	Short: "Show the diary and goal progress for one day",
	Long: `Show the diary for one day: entries grouped by meal, summed totals, and
progress against the active goal. --offset moves relative to --date (or
today) and is clamped between the earliest tracked day and today.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			day, err := resolveDay(sqldb, dayDate, dayOffset)
			if err != nil {
				return err
			}
			report, err := service.DaySummary(sqldb, day)
			if err != nil {
				return err
			}
			goal, err := service.ActiveGoal(sqldb)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Diary for %s\n", report.Date)
			if report.HasGoal {
				fmt.Fprintf(out, "Goal: %s\n", report.GoalName)
			} else {
				fmt.Fprintln(out, "Goal: none active")
			}
			fmt.Fprintln(out)

			if len(report.Entries) == 0 {
				fmt.Fprintln(out, "No entries")
			}
			var lastMeal nutrition.MealCategory
			first := true
			for _, e := range report.Entries {
				meal := nutrition.MealCategory(e.Meal)
				if first || meal != lastMeal {
					fmt.Fprintf(out, "%s:\n", meal.Display())
					lastMeal = meal
					first = false
				}
				fmt.Fprintf(out, "  [%d] %s x%.2g  %d kcal (P %.1f, C %.1f, F %.1f)\n",
					e.ID, e.FoodName, e.Servings, e.Calories, e.ProteinG, e.CarbsG, e.FatG)
			}
			fmt.Fprintln(out)

			targets := service.Targets(goal)
			fmt.Fprintln(out, formatProgress("Calories", fmt.Sprintf("%d", report.Totals.Calories), targetCalories(targets), report.Calories))
			var protT, carbT, fatT *float64
			if targets != nil {
				protT, carbT, fatT = targets.ProteinG, targets.CarbsG, targets.FatG
			}
			fmt.Fprintln(out, formatProgress("Protein", fmt.Sprintf("%.1fg", report.Totals.ProteinG), targetGrams(protT), report.Protein))
			fmt.Fprintln(out, formatProgress("Carbs", fmt.Sprintf("%.1fg", report.Totals.CarbsG), targetGrams(carbT), report.Carbs))
			fmt.Fprintln(out, formatProgress("Fat", fmt.Sprintf("%.1fg", report.Totals.FatG), targetGrams(fatT), report.Fat))
			return nil
		})
	},
}

// resolveDay turns --date/--offset into a concrete diary date. Navigation is
// clamped so the selected day never precedes the earliest entry (or today on
// an empty diary) and never passes today.
func resolveDay(sqldb *sql.DB, date string, offset int) (string, error) {
	today := nutrition.Day(time.Now())
	base := today
	if date != "" {
		parsed, err := time.ParseInLocation("2006-01-02", date, time.Local)
		if err != nil {
			return "", fmt.Errorf("invalid --date %q (expected YYYY-MM-DD)", date)
		}
		base = parsed
	}

	earliest := today
	if day, ok, err := service.EarliestEntryDay(sqldb); err != nil {
		return "", err
	} else if ok {
		parsed, err := time.ParseInLocation("2006-01-02", day, time.Local)
		if err == nil && parsed.Before(earliest) {
			earliest = parsed
		}
	}

	return nutrition.ShiftDay(base, offset, earliest, today).Format("2006-01-02"), nil
}

// The "-" placeholders never print: no-goal progress lines skip the target.
func targetCalories(t *nutrition.GoalTargets) string {
	if t == nil {
		return "-"
	}
	return fmt.Sprintf("%d", t.Calories)
}

func targetGrams(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.1fg", *v)
}

func init() {
	rootCmd.AddCommand(dayCmd)
	dayCmd.Flags().StringVar(&dayDate, "date", "", "Day to show (YYYY-MM-DD, default today)")
	dayCmd.Flags().IntVar(&dayOffset, "offset", 0, "Shift the shown day by this many days")
}
