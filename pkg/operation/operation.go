// Copyright 2025 yl-teng
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package operation

import (
	"context"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/yl-teng/PhotoRename/pkg/config"
	"github.com/yl-teng/PhotoRename/pkg/log"
	"github.com/yl-teng/PhotoRename/pkg/metadata"
	"github.com/yl-teng/PhotoRename/pkg/pair"
	"github.com/yl-teng/PhotoRename/pkg/rename"
	"github.com/yl-teng/PhotoRename/pkg/scan"
)

// 🔧 Options contains the collaborators for a rename run
type Options struct {
	// Config is the run configuration
	Config *config.Config
	// Resolver computes collision-free names and performs the renames
	Resolver *rename.Resolver
	// Console renders progress, outcomes and the summary
	Console *log.Console
}

// 🏭 New creates a new operator with the given options
func New(opts Options) (*Operator, error) {
	if opts.Config == nil {
		return nil, errors.Errorf("config is required")
	}
	if opts.Resolver == nil {
		return nil, errors.Errorf("resolver is required")
	}
	if opts.Console == nil {
		return nil, errors.Errorf("console is required")
	}
	return &Operator{
		cfg:      opts.Config,
		resolver: opts.Resolver,
		console:  opts.Console,
	}, nil
}

// 🎮 Operator runs the two-phase rename pass
type Operator struct {
	cfg      *config.Config
	resolver *rename.Resolver
	console  *log.Console
}

// 📊 Stats summarizes a rename run
type Stats struct {
	// Pairs is the number of live photo pairs matched in the first phase
	Pairs int
	// Stills is the number of plain stills attempted in the second phase
	Stills int
	// Renamed counts files moved on disk, clips included
	Renamed int
	// Planned counts renames that were only simulated in a dry run
	Planned int
	// StillsRenamed counts second phase successes and drives the terminal message
	StillsRenamed int
	// Skipped counts attempts abandoned for missing capture metadata
	Skipped int
	// Failed counts attempts abandoned by access or rename errors
	Failed int
}

// Rename walks the configured directory twice: live photo pairs first, then
// the remaining plain stills. Every failure is contained at the file level,
// so the pass always runs to completion.
func (o *Operator) Rename(ctx context.Context) Stats {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("directory", o.cfg.Directory).Bool("dry_run", o.resolver.DryRun()).Msg("starting rename pass")

	stats := Stats{}

	// Sources consumed in the first phase. A real run never revisits them
	// because the re-scan sees the new names, but a dry run leaves the old
	// names on disk and needs the bookkeeping.
	done := map[string]struct{}{}

	o.console.Phase("live photo pairs")
	o.renamePairs(ctx, &stats, done)

	o.console.Phase("remaining stills")
	o.renameStills(ctx, &stats, done)

	o.console.LogNewline()
	if stats.StillsRenamed > 0 {
		o.console.Success("Done.")
	} else {
		o.console.Info("No file was further renamed.")
	}
	o.console.Summary(stats.Renamed, stats.Planned, stats.Skipped, stats.Failed)

	return stats
}

// renamePairs matches live photo clips to their still images by shared base
// name and renames each pair, image first. The clip follows only when the
// image rename succeeded, so a half-renamed pair keeps its clip findable
// under the original name.
func (o *Operator) renamePairs(ctx context.Context, stats *Stats, done map[string]struct{}) {
	logger := zerolog.Ctx(ctx)

	images, err := scan.ListByExtension(ctx, o.cfg.Directory, []string{o.cfg.LiveImageExtension}, o.cfg.IgnorePatterns)
	if err != nil {
		o.console.Errorf("%v", err)
	}
	images = scan.FilterUnnamed(images, o.cfg.Prefixes)

	clips, err := scan.ListByExtension(ctx, o.cfg.Directory, []string{o.cfg.ClipExtension}, o.cfg.IgnorePatterns)
	if err != nil {
		o.console.Errorf("%v", err)
	}
	clips = scan.FilterUnnamed(clips, o.cfg.Prefixes)

	if len(clips) == 0 {
		o.console.Info("No live photo is found.")
		return
	}

	pairs := pair.Match(images, clips, o.cfg.LiveImageExtension, o.cfg.ClipExtension)
	stats.Pairs = len(pairs)
	logger.Debug().Int("images", len(images)).Int("clips", len(clips)).Int("pairs", len(pairs)).Msg("matched live photo pairs")

	for _, p := range pairs {
		o.console.Infof("Renaming live photo files: %s and %s", p.Image, p.Clip)

		newImage, err := o.resolver.ByTimestamp(ctx, p.Image, o.cfg.CanonicalPrefix)
		if err != nil {
			o.recordFailure(stats, p.Image, err)
			continue
		}
		done[p.Image] = struct{}{}
		o.recordSuccess(stats, p.Image, newImage)

		newClip, err := o.resolver.PairedClip(ctx, p.Clip, newImage)
		if err != nil {
			o.recordFailure(stats, p.Clip, err)
			continue
		}
		done[p.Clip] = struct{}{}
		o.recordSuccess(stats, p.Clip, newClip)
	}
}

// renameStills re-scans for still images and renames whatever the first
// phase left unnamed. The re-filter is what makes a second pass over an
// already renamed directory a no-op.
func (o *Operator) renameStills(ctx context.Context, stats *Stats, done map[string]struct{}) {
	logger := zerolog.Ctx(ctx)

	paths, err := scan.ListByExtension(ctx, o.cfg.Directory, o.cfg.ImageExtensions, o.cfg.IgnorePatterns)
	if err != nil {
		o.console.Errorf("%v", err)
	}
	paths = scan.FilterUnnamed(paths, o.cfg.Prefixes)
	logger.Debug().Int("candidates", len(paths)).Msg("second phase candidates")

	for _, path := range paths {
		if _, consumed := done[path]; consumed {
			continue
		}
		stats.Stills++
		o.console.Infof("Renaming: %s", path)

		newPath, err := o.resolver.ByTimestamp(ctx, path, o.cfg.CanonicalPrefix)
		if err != nil {
			o.recordFailure(stats, path, err)
			continue
		}
		o.recordSuccess(stats, path, newPath)
		stats.StillsRenamed++
	}
}

// recordSuccess prints the outcome ledger line and bumps the run counters.
func (o *Operator) recordSuccess(stats *Stats, from, to string) {
	if o.resolver.DryRun() {
		o.console.Rename(log.RenameOperation{From: from, To: to, Outcome: log.OutcomePlanned})
		stats.Planned++
		return
	}
	o.console.Rename(log.RenameOperation{From: from, To: to, Outcome: log.OutcomeRenamed})
	stats.Renamed++
}

// recordFailure separates the two per-file outcomes: a missing capture
// timestamp is a skip, anything else is a failure with the error as reason.
func (o *Operator) recordFailure(stats *Stats, path string, err error) {
	if errors.Is(err, metadata.ErrNoCaptureTime) {
		o.console.Rename(log.RenameOperation{From: path, Outcome: log.OutcomeSkipped, Reason: "insufficient metadata to rename"})
		stats.Skipped++
		return
	}
	o.console.Rename(log.RenameOperation{From: path, Outcome: log.OutcomeFailed, Reason: err.Error()})
	stats.Failed++
}
