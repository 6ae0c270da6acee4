package cli

import (
	"fmt"

	"dailyreview/config"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the Formdata table",
	RunE: func(cmd *cobra.Command, args []string) error {
		conf, err := config.LoadConfig(configPath)
		if err != nil {
			return err
		}
		conf.DBAutoMigrate = false

		db, err := config.OpenDB(conf)
		if err != nil {
			return err
		}
		defer config.CloseDB(db)

		if err := config.MigrateDB(db); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "✓ Formdata table is up to date")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
