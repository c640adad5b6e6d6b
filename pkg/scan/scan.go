// Package scan selects the files eligible for renaming: list a directory by
// accepted extensions, then drop the names that already follow the canonical
// convention.
package scan

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/yl-teng/PhotoRename/pkg/naming"
)

// ListByExtension returns the paths of regular files directly under dir whose
// name ends with one of exts. Extension comparison is case-insensitive; the
// configured extensions keep their case only for display. Entries come back
// in os.ReadDir name order, so rename order is stable across runs. Names
// matching an ignore glob are dropped. On a read failure the returned list
// is empty and the error is reported to the caller, which treats it as a
// per-directory condition rather than a run-ending one.
func ListByExtension(ctx context.Context, dir string, exts []string, ignore []string) ([]string, error) {
	logger := zerolog.Ctx(ctx)

	lowered := make([]string, len(exts))
	for i, ext := range exts {
		lowered[i] = strings.ToLower(ext)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Errorf("reading directory %q: %w", dir, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !hasAnySuffix(strings.ToLower(name), lowered) {
			continue
		}
		if shouldIgnore(logger, name, ignore) {
			continue
		}
		paths = append(paths, filepath.Join(dir, name))
	}

	logger.Debug().Str("dir", dir).Strs("exts", lowered).Int("matched", len(paths)).Msg("listed files by extension")
	return paths, nil
}

// FilterUnnamed drops the paths whose base name (extension stripped) already
// carries a recognized prefix plus timestamp, leaving only the files that
// still need a rename.
func FilterUnnamed(paths []string, prefixes []string) []string {
	var remaining []string
	for _, path := range paths {
		base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		if naming.HasCanonicalName(base, prefixes) {
			continue
		}
		remaining = append(remaining, path)
	}
	return remaining
}

func hasAnySuffix(name string, exts []string) bool {
	for _, ext := range exts {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// shouldIgnore checks if a file name matches one of the ignore globs.
func shouldIgnore(logger *zerolog.Logger, name string, patterns []string) bool {
	for _, pattern := range patterns {
		matched, err := doublestar.Match(pattern, name)
		if err != nil {
			logger.Debug().Str("pattern", pattern).Str("file", name).Err(err).Msg("error matching ignore pattern")
			continue
		}
		if matched {
			logger.Debug().Str("file", name).Str("pattern", pattern).Msg("file ignored by pattern")
			return true
		}
	}
	return false
}
