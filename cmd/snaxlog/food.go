package snaxlog

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thelsien/Snaxlog-sub000/internal/service"
)

var foodCmd = &cobra.Command{
	Use:   "food",
	Short: "Browse the seeded food catalog",
}

var (
	foodGroup string
	foodQuery string
	foodLimit int
)

var foodListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog foods",
	RunE: func(cmd *cobra.Command, args []string) error {
		filter := service.ListFoodsFilter{
			Group: foodGroup,
			Query: foodQuery,
			Limit: foodLimit,
		}
		return withDB(func(sqldb *sql.DB) error {
			foods, err := service.ListFoods(sqldb, filter)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tNAME\tGROUP\tSERVING\tKCAL\tP\tC\tF")
			for _, f := range foods {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\t%s\t%d\t%.1f\t%.1f\t%.1f\n", f.ID, f.Name, f.FoodGroup, f.ServingDesc, f.Calories, f.ProteinG, f.CarbsG, f.FatG)
			}
			return nil
		})
	},
}

var foodShowCmd = &cobra.Command{
	Use:   "show <id or name>",
	Short: "Show a single catalog food",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			f, err := service.FoodByRef(sqldb, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ID: %d\n", f.ID)
			fmt.Fprintf(cmd.OutOrStdout(), "Name: %s\n", f.Name)
			fmt.Fprintf(cmd.OutOrStdout(), "Group: %s\n", f.FoodGroup)
			fmt.Fprintf(cmd.OutOrStdout(), "Serving: %s (%.0f g)\n", f.ServingDesc, f.ServingG)
			fmt.Fprintf(cmd.OutOrStdout(), "Calories: %d\n", f.Calories)
			fmt.Fprintf(cmd.OutOrStdout(), "Protein: %.1f\nCarbs: %.1f\nFat: %.1f\n", f.ProteinG, f.CarbsG, f.FatG)
			return nil
		})
	},
}

var foodSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search catalog foods by name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			foods, err := service.ListFoods(sqldb, service.ListFoodsFilter{Query: args[0]})
			if err != nil {
				return err
			}
			if len(foods) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No foods match")
				return nil
			}
			for _, f := range foods {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%d kcal\n", f.ID, f.Name, f.Calories)
			}
			return nil
		})
	},
}

var foodGroupsCmd = &cobra.Command{
	Use:   "groups",
	Short: "List food groups",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			groups, err := service.FoodGroups(sqldb)
			if err != nil {
				return err
			}
			for _, g := range groups {
				fmt.Fprintln(cmd.OutOrStdout(), g)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(foodCmd)
	foodCmd.AddCommand(foodListCmd, foodShowCmd, foodSearchCmd, foodGroupsCmd)

	foodListCmd.Flags().StringVar(&foodGroup, "group", "", "Filter by food group")
	foodListCmd.Flags().StringVar(&foodQuery, "search", "", "Filter by name substring")
	foodListCmd.Flags().IntVar(&foodLimit, "limit", 100, "Result limit")
}
