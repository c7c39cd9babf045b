package snaxlog

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var dbPath string

var rootCmd = &cobra.Command{
	Use:   "snaxlog",
	Short: "snaxlog tracks your food diary against calorie and macro goals",
	Long:  "snaxlog is a local-first food diary: log servings of catalog foods, set calorie/macro goals, and review daily and weekly progress.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to SQLite database")
}
