package commands

import (
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/yl-teng/PhotoRename/cmd/ptrn/opts"
	"github.com/yl-teng/PhotoRename/pkg/metadata"
	"github.com/yl-teng/PhotoRename/pkg/operation"
	"github.com/yl-teng/PhotoRename/pkg/rename"
)

// NewRenameCmd creates a new rename command
func NewRenameCmd(o *opts.RootOpts) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "rename [directory]",
		Short: "Rename photos and live photo pairs by capture time",
		Long: `Rename gives every photo under the directory its canonical timestamp name.
It will:
1. Match live photo pairs (an image and a clip with a shared base name)
2. Rename each pair, the image first, the clip following it
3. Rename the remaining stills from their Exif capture time
4. Report every file and a final summary`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if len(args) == 1 {
				o.Config.Directory = args[0]
			}
			if cmd.Flags().Changed("dry-run") {
				o.Config.DryRun = dryRun
			}
			if err := o.Config.Validate(); err != nil {
				return errors.Errorf("validating config: %w", err)
			}

			resolver, err := rename.New(metadata.NewReader(), o.Config.DryRun)
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

			o.Console.Header("renaming photos by capture time")
			op.Rename(ctx)

			return nil
		},
	}

	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "report what would be renamed without touching files")

	return cmd
}
