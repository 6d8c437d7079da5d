package cmd

import (
	"github.com/spf13/cobra"

	"jacov.dev/pkg/jacov/internal/domain"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List resolved source files and their coverage",
		Long:  listLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			args, err := sourceArgs(ctx)
			if err != nil {
				return err
			}

			return workflow.List(ctx, domain.ListArgs{SourceArgs: args})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
