package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/yl-teng/PhotoRename/cmd/ptrn/commands"
	"github.com/yl-teng/PhotoRename/cmd/ptrn/opts"
)

func main() {
	rootOpts := &opts.RootOpts{}

	rootCmd := &cobra.Command{
		Use:   "ptrn",
		Short: "Rename photos by the datetime they were taken",
		Long: `ptrn renames the photos under a directory by the datetime recorded in
their Exif metadata, producing names like IMG_20230406_175047.jpg.
Live photo pairs (an image and a clip sharing a base name) are renamed
together so the pair stays connected.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(setupLogging(cmd.Context()))
			return newRootOpts(cmd, rootOpts)
		},
	}

	// Add shared flags
	addRootFlags(rootCmd)

	// Add commands
	rootCmd.AddCommand(
		commands.NewRenameCmd(rootOpts),
		commands.NewScanCmd(rootOpts),
		newVersionCmd(),
	)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
