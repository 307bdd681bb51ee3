package commands

import (
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/docsmith/translaterc/cmd/translaterc/opts"
	"github.com/docsmith/translaterc/pkg/operation"
)

// NewCleanCmd creates the clean command
func NewCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove translated files and the lock file from the destination",
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

			op, err := operation.NewCleanOperation(ro.Options())
			if err != nil {
				return errors.Errorf("creating clean operation: %w", err)
			}

			if err := ro.Runner.Run(ctx, op); err != nil {
				return errors.Errorf("cleaning destination: %w", err)
			}

			ro.UserLogger.Success("destination cleaned")
			return nil
		},
	}

	return cmd
}
