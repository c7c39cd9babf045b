package snaxlog

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thelsien/Snaxlog-sub000/internal/nutrition"
	"github.com/thelsien/Snaxlog-sub000/internal/service"
)

var entryCmd = &cobra.Command{
	Use:   "entry",
	Short: "Manage diary entries",
}

var (
	entryFood     string
	entryServings float64
	entryDate     string
	entryTime     string
	entryMeal     string
	entryNotes    string
)

var entryAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a food; with no --date/--time it logs right now and picks a meal from the clock",
	RunE: func(cmd *cobra.Command, args []string) error {
		loggedAt, err := parseDateTimeOrNow(entryDate, entryTime)
		if err != nil {
			return err
		}
		meal, err := nutrition.ParseMealCategory(entryMeal)
		if err != nil {
			return err
		}
		in := service.LogEntryInput{
			FoodRef:  entryFood,
			Servings: entryServings,
			LoggedAt: loggedAt,
			EatenOn:  entryDate,
			Meal:     meal,
			MealSet:  cmd.Flags().Changed("meal"),
			Notes:    entryNotes,
		}
		return withDB(func(sqldb *sql.DB) error {
			id, err := service.LogEntry(sqldb, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added entry %d\n", id)
			return nil
		})
	},
}

var entryListDate string

var entryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List diary entries for a day",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			entries, err := service.EntriesForDay(sqldb, entryListDate)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tTIME\tMEAL\tFOOD\tSERVINGS\tKCAL\tP\tC\tF")
			for _, e := range entries {
				meal := nutrition.MealCategory(e.Meal).Display()
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\t%s\t%.2f\t%d\t%.1f\t%.1f\t%.1f\n", e.ID, e.LoggedAt.Local().Format("15:04"), meal, e.FoodName, e.Servings, e.Calories, e.ProteinG, e.CarbsG, e.FatG)
			}
			return nil
		})
	},
}

var entryShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a single diary entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseInt64Arg("entry id", args[0])
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			e, err := service.EntryByID(sqldb, id)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ID: %d\n", e.ID)
			fmt.Fprintf(cmd.OutOrStdout(), "Food: %s\n", e.FoodName)
			fmt.Fprintf(cmd.OutOrStdout(), "Servings: %.2f\n", e.Servings)
			fmt.Fprintf(cmd.OutOrStdout(), "Day: %s\n", e.EatenOn)
			fmt.Fprintf(cmd.OutOrStdout(), "Logged: %s\n", e.LoggedAt.Local().Format("2006-01-02 15:04"))
			fmt.Fprintf(cmd.OutOrStdout(), "Meal: %s\n", nutrition.MealCategory(e.Meal).Display())
			fmt.Fprintf(cmd.OutOrStdout(), "Calories: %d\n", e.Calories)
			fmt.Fprintf(cmd.OutOrStdout(), "Protein: %.1f\nCarbs: %.1f\nFat: %.1f\n", e.ProteinG, e.CarbsG, e.FatG)
			fmt.Fprintf(cmd.OutOrStdout(), "Notes: %s\n", e.Notes)
			return nil
		})
	},
}

var (
	updateFood     string
	updateServings float64
	updateDate     string
	updateTime     string
	updateMeal     string
	updateNotes    string
)

var entryUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a diary entry (totals recompute from the food)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseInt64Arg("entry id", args[0])
		if err != nil {
			return err
		}
		loggedAt, err := parseDateTime(updateDate, updateTime)
		if err != nil {
			return err
		}
		meal, err := nutrition.ParseMealCategory(updateMeal)
		if err != nil {
			return err
		}

		in := service.UpdateEntryInput{
			ID:       id,
			FoodRef:  updateFood,
			Servings: updateServings,
			LoggedAt: loggedAt,
			EatenOn:  updateDate,
			Meal:     meal,
			MealSet:  cmd.Flags().Changed("meal"),
			Notes:    updateNotes,
		}
		return withDB(func(sqldb *sql.DB) error {
			if err := service.UpdateEntry(sqldb, in); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated entry %d\n", id)
			return nil
		})
	},
}

var entryMealSet string

var entryMealCmd = &cobra.Command{
	Use:   "meal <id>",
	Short: "Override or clear an entry's meal category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseInt64Arg("entry id", args[0])
		if err != nil {
			return err
		}
		meal, err := nutrition.ParseMealCategory(entryMealSet)
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			if err := service.SetEntryMeal(sqldb, id, meal); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Set meal for entry %d to %s\n", id, meal.Display())
			return nil
		})
	},
}

var entryDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a diary entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseInt64Arg("entry id", args[0])
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			if err := service.DeleteEntry(sqldb, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted entry %d\n", id)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(entryCmd)
	entryCmd.AddCommand(entryAddCmd, entryListCmd, entryShowCmd, entryUpdateCmd, entryMealCmd, entryDeleteCmd)

	entryAddCmd.Flags().StringVar(&entryFood, "food", "", "Catalog food id or name")
	entryAddCmd.Flags().Float64Var(&entryServings, "servings", 1, "Serving multiplier")
	entryAddCmd.Flags().StringVar(&entryDate, "date", "", "Date in YYYY-MM-DD (default today)")
	entryAddCmd.Flags().StringVar(&entryTime, "time", "", "Time in HH:MM")
	entryAddCmd.Flags().StringVar(&entryMeal, "meal", "", "Meal category: breakfast, lunch, dinner, snacking, or none")
	entryAddCmd.Flags().StringVar(&entryNotes, "notes", "", "Optional notes")
	_ = entryAddCmd.MarkFlagRequired("food")

	entryListCmd.Flags().StringVar(&entryListDate, "date", "", "Date YYYY-MM-DD (default today)")

	entryUpdateCmd.Flags().StringVar(&updateFood, "food", "", "Catalog food id or name")
	entryUpdateCmd.Flags().Float64Var(&updateServings, "servings", 1, "Serving multiplier")
	entryUpdateCmd.Flags().StringVar(&updateDate, "date", "", "Date in YYYY-MM-DD")
	entryUpdateCmd.Flags().StringVar(&updateTime, "time", "", "Time in HH:MM")
	entryUpdateCmd.Flags().StringVar(&updateMeal, "meal", "", "Meal category: breakfast, lunch, dinner, snacking, or none")
	entryUpdateCmd.Flags().StringVar(&updateNotes, "notes", "", "Optional notes")
	_ = entryUpdateCmd.MarkFlagRequired("food")
	_ = entryUpdateCmd.MarkFlagRequired("servings")
	_ = entryUpdateCmd.MarkFlagRequired("date")
	_ = entryUpdateCmd.MarkFlagRequired("time")

	entryMealCmd.Flags().StringVar(&entryMealSet, "meal", "", "Meal category or none to clear")
	_ = entryMealCmd.MarkFlagRequired("meal")
}
