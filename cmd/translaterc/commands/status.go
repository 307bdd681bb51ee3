package commands

import (
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/docsmith/translaterc/cmd/translaterc/opts"
	"github.com/docsmith/translaterc/pkg/operation"
)

// NewStatusCmd creates the status command
func NewStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Report whether the destination is up to date",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			configFile, err := cmd.Flags().GetString("config")
			if err != nil {
				return errors.Errorf("reading config flag: %w", err)
			}

			ro, err := opts.Build(ctx, configFile)
			if err != nil {
				return err
			}

			op, err := operation.NewStatusOperation(ro.Options())
			if err != nil {
				return errors.Errorf("creating status operation: %w", err)
			}

			if err := op.Execute(ctx); err != nil {
				return errors.Errorf("checking status: %w", err)
			}

			return nil
		},
	}

	return cmd
}
