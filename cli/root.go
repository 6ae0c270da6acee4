package cli

import (
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "dailyreview",
	Short: "Daily self-review form service",
	Long: `dailyreview collects a short daily self-review (name, rating, achievements,
challenges, goals, feedback, dream team, improvement) and stores each
submission as one row in the Formdata table.

  $ dailyreview serve                          # start the HTTP API
  $ dailyreview migrate                        # create or update the table
  $ dailyreview submit --server http://host    # fill in a review in the terminal

Configuration is read from .env in --config and from the environment.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", ".", "directory containing the .env file")
}

// Execute 执行根命令
func Execute() error {
	return rootCmd.Execute()
}
