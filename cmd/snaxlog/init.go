package snaxlog

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thelsien/Snaxlog-sub000/internal/app"
	"github.com/thelsien/Snaxlog-sub000/internal/db"
	"github.com/thelsien/Snaxlog-sub000/internal/service"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the local snaxlog database and seed the food catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveDBPath()
		if err != nil {
			return err
		}
		if err := app.EnsureDBDir(path); err != nil {
			return err
		}

		sqldb, err := db.Open(path)
		if err != nil {
			return err
		}
		defer sqldb.Close()

		if err := db.ApplyMigrations(sqldb); err != nil {
			return err
		}
		if err := service.SeedCatalog(sqldb); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Initialized snaxlog database at %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func resolveDBPath() (string, error) {
	if dbPath != "" {
		return dbPath, nil
	}
	return app.DefaultDBPath()
}
