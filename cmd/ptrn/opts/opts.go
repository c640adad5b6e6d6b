package opts

import (
	"github.com/yl-teng/PhotoRename/pkg/config"
	"github.com/yl-teng/PhotoRename/pkg/log"
)

// RootOpts contains shared options used by all commands
type RootOpts struct {
	Config  *config.Config
	Console *log.Console
}
