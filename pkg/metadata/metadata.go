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

// Package metadata reads capture timestamps out of image files via their
// EXIF block.
package metadata

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rwcarlsen/goexif/exif"
	"gitlab.com/tozd/go/errors"
)

// ErrNoCaptureTime marks a readable file with no usable capture timestamp:
// no EXIF block, no DateTimeOriginal tag, or a tag value that does not parse
// as a datetime.
var ErrNoCaptureTime = errors.New("no capture time in metadata")

// exifTimeLayout is the EXIF Ascii datetime form.
const exifTimeLayout = "2006:01:02 15:04:05"

// Reader extracts capture times from EXIF metadata. Only DateTimeOriginal is
// consulted; digitized and file-modified times are not fallbacks.
type Reader struct{}

// NewReader creates a new Reader
func NewReader() *Reader {
	return &Reader{}
}

// CaptureTime returns the moment the photo at path was taken, as wall-clock
// digits with no timezone interpretation. A file that cannot be opened yields
// the underlying access error; a readable file without a usable timestamp
// yields an error wrapping ErrNoCaptureTime.
func (r *Reader) CaptureTime(ctx context.Context, path string) (time.Time, error) {
	logger := zerolog.Ctx(ctx)

	f, err := os.Open(path)
	if err != nil {
		return time.Time{}, errors.Errorf("opening image %q: %w", path, err)
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		logger.Debug().Str("file", path).Err(err).Msg("no EXIF block")
		return time.Time{}, errors.Errorf("decoding EXIF of %q: %w", path, ErrNoCaptureTime)
	}

	tag, err := x.Get(exif.DateTimeOriginal)
	if err != nil {
		logger.Debug().Str("file", path).Err(err).Msg("no DateTimeOriginal tag")
		return time.Time{}, errors.Errorf("reading DateTimeOriginal of %q: %w", path, ErrNoCaptureTime)
	}

	value, err := tag.StringVal()
	if err != nil {
		logger.Debug().Str("file", path).Err(err).Msg("DateTimeOriginal is not a string value")
		return time.Time{}, errors.Errorf("reading DateTimeOriginal of %q: %w", path, ErrNoCaptureTime)
	}

	taken, err := time.Parse(exifTimeLayout, value)
	if err != nil {
		logger.Debug().Str("file", path).Str("value", value).Msg("unparsable DateTimeOriginal value")
		return time.Time{}, errors.Errorf("parsing DateTimeOriginal %q of %q: %w", value, path, ErrNoCaptureTime)
	}

	return taken, nil
}
