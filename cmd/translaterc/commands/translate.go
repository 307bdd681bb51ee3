package commands

import (
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/docsmith/translaterc/cmd/translaterc/opts"
	"github.com/docsmith/translaterc/pkg/operation"
)

// NewTranslateCmd creates the translate command
func NewTranslateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "translate",
		Short: "Translate the manifest files into the destination directory",
		Long: `Translate copies every manifest file that exists in the source into the
destination directory, prepending the translation marker and passing sibling
links through the link rewriter. Missing sources are reported and skipped.`,
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

			ro.UserLogger.Header(ro.Config.String())

			if ro.Config.Clean {
				// Clean must finish before translate, so it runs on its own
				// even when async is configured.
				cleanOp, err := operation.NewCleanOperation(ro.Options())
				if err != nil {
					return errors.Errorf("creating clean operation: %w", err)
				}
				if err := cleanOp.Execute(ctx); err != nil {
					return errors.Errorf("cleaning destination: %w", err)
				}
			}

			op, err := operation.NewTranslateOperation(ro.Options())
			if err != nil {
				return errors.Errorf("creating translate operation: %w", err)
			}

			if err := ro.Runner.Run(ctx, op); err != nil {
				return errors.Errorf("translating files: %w", err)
			}

			ro.UserLogger.Success("all files processed")
			return nil
		},
	}

	return cmd
}
