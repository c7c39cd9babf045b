package snaxlog

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thelsien/Snaxlog-sub000/internal/model"
	"github.com/thelsien/Snaxlog-sub000/internal/service"
)

var goalCmd = &cobra.Command{
	Use:   "goal",
	Short: "Manage calorie and macro goals",
}

var (
	goalName     string
	goalCalories int
	goalProtein  float64
	goalCarbs    float64
	goalFat      float64
	goalActivate bool
)

// optionalTarget maps an unset or zero flag to "no target for this macro".
func optionalTarget(cmd *cobra.Command, flag string, value float64) *float64 {
	if !cmd.Flags().Changed(flag) || value <= 0 {
		return nil
	}
	return &value
}

var goalAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a goal; macro targets are optional",
	RunE: func(cmd *cobra.Command, args []string) error {
		in := service.CreateGoalInput{
			Name:     goalName,
			Calories: goalCalories,
			ProteinG: optionalTarget(cmd, "protein", goalProtein),
			CarbsG:   optionalTarget(cmd, "carbs", goalCarbs),
			FatG:     optionalTarget(cmd, "fat", goalFat),
			Activate: goalActivate,
		}
		return withDB(func(sqldb *sql.DB) error {
			id, err := service.CreateGoal(sqldb, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added goal %d\n", id)
			return nil
		})
	},
}

var goalUpdateCmd = &cobra.Command{
	Use:   "update <id or name>",
	Short: "Update a user goal (predefined goals cannot be changed)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in := service.UpdateGoalInput{
			Ref:      args[0],
			Name:     goalName,
			Calories: goalCalories,
			ProteinG: optionalTarget(cmd, "protein", goalProtein),
			CarbsG:   optionalTarget(cmd, "carbs", goalCarbs),
			FatG:     optionalTarget(cmd, "fat", goalFat),
		}
		return withDB(func(sqldb *sql.DB) error {
			if err := service.UpdateGoal(sqldb, in); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated goal %s\n", args[0])
			return nil
		})
	},
}

var goalListCmd = &cobra.Command{
	Use:   "list",
	Short: "List goals",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			goals, err := service.ListGoals(sqldb)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tNAME\tKCAL\tP\tC\tF\tKIND\tACTIVE")
			for _, g := range goals {
				kind := "user"
				if g.IsPredefined {
					kind = "predefined"
				}
				active := ""
				if g.IsActive {
					active = "yes"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%d\t%s\t%s\t%s\t%s\t%s\n", g.ID, g.Name, g.Calories, formatTarget(g.ProteinG), formatTarget(g.CarbsG), formatTarget(g.FatG), kind, active)
			}
			return nil
		})
	},
}

var goalShowCmd = &cobra.Command{
	Use:   "show <id or name>",
	Short: "Show a single goal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			g, err := service.GoalByRef(sqldb, args[0])
			if err != nil {
				return err
			}
			printGoal(cmd, g)
			return nil
		})
	},
}

var goalCurrentCmd = &cobra.Command{
	Use:   "current",
	Short: "Show the active goal",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			g, err := service.ActiveGoal(sqldb)
			if err != nil {
				return err
			}
			if g == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "No active goal")
				return nil
			}
			printGoal(cmd, g)
			return nil
		})
	},
}

var goalActivateCmd = &cobra.Command{
	Use:   "activate <id or name>",
	Short: "Activate a goal, deactivating every other goal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			if err := service.ActivateGoal(sqldb, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Activated goal %s\n", args[0])
			return nil
		})
	},
}

var goalDeactivateCmd = &cobra.Command{
	Use:   "deactivate",
	Short: "Deactivate the active goal",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			if err := service.DeactivateGoals(sqldb); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Deactivated goals")
			return nil
		})
	},
}

var goalDeleteCmd = &cobra.Command{
	Use:   "delete <id or name>",
	Short: "Delete a user goal (predefined goals cannot be deleted)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			if err := service.DeleteGoal(sqldb, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted goal %s\n", args[0])
			return nil
		})
	},
}

func formatTarget(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.1f", *v)
}

func printGoal(cmd *cobra.Command, g *model.Goal) {
	fmt.Fprintf(cmd.OutOrStdout(), "ID: %d\n", g.ID)
	fmt.Fprintf(cmd.OutOrStdout(), "Name: %s\n", g.Name)
	fmt.Fprintf(cmd.OutOrStdout(), "Calories: %d\n", g.Calories)
	fmt.Fprintf(cmd.OutOrStdout(), "Protein: %s\nCarbs: %s\nFat: %s\n", formatTarget(g.ProteinG), formatTarget(g.CarbsG), formatTarget(g.FatG))
	fmt.Fprintf(cmd.OutOrStdout(), "Predefined: %v\nActive: %v\n", g.IsPredefined, g.IsActive)
}

func init() {
	rootCmd.AddCommand(goalCmd)
	goalCmd.AddCommand(goalAddCmd, goalUpdateCmd, goalListCmd, goalShowCmd, goalCurrentCmd, goalActivateCmd, goalDeactivateCmd, goalDeleteCmd)

	goalAddCmd.Flags().StringVar(&goalName, "name", "", "Goal name")
	goalAddCmd.Flags().IntVar(&goalCalories, "calories", 0, "Daily calorie target")
	goalAddCmd.Flags().Float64Var(&goalProtein, "protein", 0, "Daily protein target grams (optional)")
	goalAddCmd.Flags().Float64Var(&goalCarbs, "carbs", 0, "Daily carbs target grams (optional)")
	goalAddCmd.Flags().Float64Var(&goalFat, "fat", 0, "Daily fat target grams (optional)")
	goalAddCmd.Flags().BoolVar(&goalActivate, "activate", false, "Activate this goal after creating it")
	_ = goalAddCmd.MarkFlagRequired("name")
	_ = goalAddCmd.MarkFlagRequired("calories")

	goalUpdateCmd.Flags().StringVar(&goalName, "name", "", "Goal name")
	goalUpdateCmd.Flags().IntVar(&goalCalories, "calories", 0, "Daily calorie target")
	goalUpdateCmd.Flags().Float64Var(&goalProtein, "protein", 0, "Daily protein target grams (optional)")
	goalUpdateCmd.Flags().Float64Var(&goalCarbs, "carbs", 0, "Daily carbs target grams (optional)")
	goalUpdateCmd.Flags().Float64Var(&goalFat, "fat", 0, "Daily fat target grams (optional)")
	_ = goalUpdateCmd.MarkFlagRequired("name")
	_ = goalUpdateCmd.MarkFlagRequired("calories")
}
