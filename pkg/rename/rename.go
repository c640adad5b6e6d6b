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

// Package rename turns capture timestamps into canonical file names and
// performs the actual renames, resolving collisions deterministically.
package rename

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/yl-teng/PhotoRename/pkg/naming"
)

// MetadataReader supplies capture timestamps for image files.
type MetadataReader interface {
	CaptureTime(ctx context.Context, path string) (time.Time, error)
}

// Resolver renames files to their canonical timestamp names. In dry-run mode
// nothing touches the disk; names that would have been taken are tracked in
// the claimed set so collision suffixes come out exactly as a real run would
// produce them.
type Resolver struct {
	meta    MetadataReader
	dryRun  bool
	claimed map[string]struct{}
}

// New creates a Resolver backed by the given metadata reader.
func New(meta MetadataReader, dryRun bool) (*Resolver, error) {
	if meta == nil {
		return nil, errors.Errorf("metadata reader is required")
	}
	return &Resolver{
		meta:    meta,
		dryRun:  dryRun,
		claimed: make(map[string]struct{}),
	}, nil
}

// ByTimestamp renames the file at path to prefix + capture timestamp,
// keeping the original extension. When the bare candidate name is taken, a
// "-N" suffix is appended with N starting at 1 and increasing until a free
// name is found; existence is re-checked on every iteration because earlier
// renames in the same run may have taken the previous candidate. Returns the
// new path. The file is left untouched on any error, including a missing
// capture timestamp.
func (r *Resolver) ByTimestamp(ctx context.Context, path, prefix string) (string, error) {
	logger := zerolog.Ctx(ctx)

	taken, err := r.meta.CaptureTime(ctx, path)
	if err != nil {
		return "", errors.Errorf("reading capture time: %w", err)
	}

	dir := filepath.Dir(path)
	ext := filepath.Ext(path)
	ts := naming.Timestamp(taken)

	newPath := filepath.Join(dir, naming.Candidate(prefix, ts, 0, ext))
	for n := 1; r.exists(newPath); n++ {
		newPath = filepath.Join(dir, naming.Candidate(prefix, ts, n, ext))
	}

	if err := r.rename(path, newPath); err != nil {
		return "", errors.Errorf("renaming %q to %q: %w", path, newPath, err)
	}

	logger.Debug().Str("from", path).Str("to", newPath).Bool("dry_run", r.dryRun).Msg("renamed by capture time")
	return newPath, nil
}

// PairedClip renames a live photo's clip to follow its already renamed
// image: the image's new base plus the clip's original extension, case
// preserved. No collision loop runs here; the image rename fixed the base.
// Returns the clip's new path.
func (r *Resolver) PairedClip(ctx context.Context, clipPath, renamedImage string) (string, error) {
	newPath := strings.TrimSuffix(renamedImage, filepath.Ext(renamedImage)) + filepath.Ext(clipPath)

	if err := r.rename(clipPath, newPath); err != nil {
		return "", errors.Errorf("renaming %q to %q: %w", clipPath, newPath, err)
	}

	zerolog.Ctx(ctx).Debug().Str("from", clipPath).Str("to", newPath).Bool("dry_run", r.dryRun).Msg("renamed paired clip")
	return newPath, nil
}

// DryRun reports whether the resolver only simulates renames.
func (r *Resolver) DryRun() bool {
	return r.dryRun
}

// exists reports whether target is taken, on disk or by a dry-run claim.
func (r *Resolver) exists(target string) bool {
	if _, ok := r.claimed[target]; ok {
		return true
	}
	_, err := os.Stat(target)
	return err == nil
}

func (r *Resolver) rename(from, to string) error {
	if r.dryRun {
		r.claimed[to] = struct{}{}
		return nil
	}
	return os.Rename(from, to)
}
