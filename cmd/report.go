package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"jacov.dev/pkg/jacov/internal/domain"
)

var endpointFlag string
var timeoutFlag int64
var dryRunFlag bool

// reportCmd represents the report command.
var reportCmd = newReportCmd()

func newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Upload the coverage report to Coveralls",
		Long:  reportLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			args, err := sourceArgs(ctx)
			if err != nil {
				return err
			}

			return workflow.Report(ctx, domain.ReportArgs{
				SourceArgs: args,
				Endpoint:   viper.GetString(endpointKey),
				DryRun:     dryRunFlag,
			})
		},
	}

	configureReportFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(reportCmd)
}

func configureReportFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&endpointFlag, endpointFlagName, viper.GetString(endpointKey), "Coveralls jobs API endpoint")
	bindFlagToConfig(cmd.Flags().Lookup(endpointFlagName), endpointKey)

	cmd.Flags().Int64Var(&timeoutFlag, timeoutFlagName, viper.GetInt64(timeoutKey), "upload timeout in seconds")
	bindFlagToConfig(cmd.Flags().Lookup(timeoutFlagName), timeoutKey)

	cmd.Flags().BoolVar(&dryRunFlag, dryRunFlagName, false, "print the payload instead of uploading it")
}
