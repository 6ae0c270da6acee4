package cli

import (
	"context"
	"fmt"

	"dailyreview/config"
	"dailyreview/form"

	"github.com/spf13/cobra"
)

var (
	submitServer   string
	submitRequired []string
)

var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Fill in and submit today's review from the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		required, err := resolveRequired(cmd)
		if err != nil {
			return err
		}

		f := form.New(
			form.NewHTTPSubmitter(submitServer, nil),
			form.WithRequired(required...),
			form.WithNotifier(form.ToastPrinter{W: cmd.OutOrStdout()}),
		)
		return form.RunPrompt(ctx, f, cmd.OutOrStdout())
	},
}

// resolveRequired 命令行优先，其次 FORM_REQUIRED_FIELDS
func resolveRequired(cmd *cobra.Command) ([]form.Field, error) {
	names := submitRequired
	if !cmd.Flags().Changed("required") {
		conf, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		names = conf.GetFormRequiredFields()
	}
	if len(names) == 0 {
		return form.DefaultRequired, nil
	}
	fields, err := form.ParseFields(names)
	if err != nil {
		return nil, fmt.Errorf("invalid required fields: %w", err)
	}
	return fields, nil
}

func init() {
	submitCmd.Flags().StringVar(&submitServer, "server", "http://localhost:8080", "base URL of the dailyreview API")
	submitCmd.Flags().StringSliceVar(&submitRequired, "required", nil, "fields that must be non-empty (default from FORM_REQUIRED_FIELDS)")
	rootCmd.AddCommand(submitCmd)
}
