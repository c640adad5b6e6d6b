package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/yl-teng/PhotoRename/cmd/ptrn/opts"
	"github.com/yl-teng/PhotoRename/pkg/config"
	"github.com/yl-teng/PhotoRename/pkg/log"
)

var (
	// Flags
	configFile string
	debug      bool
)

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&configFile, "config", "c", ".ptrnrc", "config file path")
	cmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")
}

// setupLogging attaches the structured context logger, leveled by the
// debug flag. The human-facing console is separate; this stream carries
// the per-step detail.
func setupLogging(ctx context.Context) context.Context {
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
	return logger.WithContext(ctx)
}

// newRootOpts fills the shared options once flags are parsed. The config
// file is optional unless the user pointed at one explicitly: a missing
// default file just means the built-in defaults apply.
func newRootOpts(cmd *cobra.Command, o *opts.RootOpts) error {
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}
	o.Console = log.New(os.Stdout, level)

	explicit := cmd.Flags().Changed("config")
	if _, err := os.Stat(configFile); err != nil {
		if os.IsNotExist(err) && !explicit {
			o.Config = config.DefaultConfig()
			return nil
		}
		return errors.Errorf("reading config %q: %w", configFile, err)
	}

	cfg, err := config.Load(cmd.Context(), configFile)
	if err != nil {
		return errors.Errorf("loading config: %w", err)
	}
	o.Config = cfg
	return nil
}
