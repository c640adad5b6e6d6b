package commands

import (
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/yl-teng/PhotoRename/cmd/ptrn/opts"
	"github.com/yl-teng/PhotoRename/pkg/metadata"
	"github.com/yl-teng/PhotoRename/pkg/operation"
	"github.com/yl-teng/PhotoRename/pkg/rename"
)

// NewScanCmd creates a new scan command
func NewScanCmd(o *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan [directory]",
		Short: "Show what a rename run would do",
		Long: `Scan runs the full rename pipeline without touching any file.
It will:
1. Match live photo pairs and remaining stills
2. Compute every file's canonical name, collision suffixes included
3. Report the planned renames and a final summary`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if len(args) == 1 {
				o.Config.Directory = args[0]
			}
			o.Config.DryRun = true
			if err := o.Config.Validate(); err != nil {
				return errors.Errorf("validating config: %w", err)
			}

			resolver, err := rename.New(metadata.NewReader(), true)
			if err != nil {
				return errors.Errorf("creating resolver: %w", err)
			}

			op, err := operation.New(operation.Options{
				Config:   o.Config,
				Resolver: resolver,
				Console:  o.Console,
			})
			if err != nil {
				return errors.Errorf("creating operator: %w", err)
			}

			o.Console.Header("planning photo renames")
			op.Rename(ctx)

			return nil
		},
	}

	return cmd
}
