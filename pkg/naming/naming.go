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

// Package naming defines the canonical photo naming convention: a recognized
// prefix followed by a YYYYMMDD_HHMMSS capture timestamp, with an optional
// "-N" collision suffix before the extension (e.g. IMG_20230406_175047-1.jpg).
package naming

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// TimestampLayout is the Go time layout for the timestamp part of a name.
const TimestampLayout = "20060102_150405"

// TimestampLen is the rendered length of TimestampLayout: 8 date digits,
// one underscore, 6 time digits.
const TimestampLen = 15

// timestampPattern accepts years 1970-2099 plus the literal 9999. Day
// validation is per-digit only, so a string like 20230231_120000 still
// classifies as a timestamp.
var timestampPattern = regexp.MustCompile(
	`^(19[7-9][0-9]|20[0-9]{2}|9999)` + // year
		`(0[1-9]|1[0-2])` + // month
		`(0[1-9]|[12][0-9]|3[01])` + // day
		`_` +
		`(0[0-9]|1[0-9]|2[0-3])` + // hour
		`([0-5][0-9])` + // minute
		`([0-5][0-9])$`, // second
)

// IsTimestamp reports whether s is exactly a YYYYMMDD_HHMMSS timestamp.
func IsTimestamp(s string) bool {
	if len(s) != TimestampLen {
		return false
	}
	return timestampPattern.MatchString(s)
}

// Timestamp renders t in the canonical YYYYMMDD_HHMMSS form.
func Timestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

// Candidate builds the nth candidate file name for a rename. n == 0 yields
// the bare name, n >= 1 appends the "-n" collision suffix before ext.
func Candidate(prefix, ts string, n int, ext string) string {
	if n == 0 {
		return prefix + ts + ext
	}
	return fmt.Sprintf("%s%s-%d%s", prefix, ts, n, ext)
}

// HasCanonicalName reports whether base (a file name stripped of its
// extension) starts with one of the recognized prefixes immediately followed
// by a timestamp. Characters past the timestamp are not inspected, so
// collision-suffixed names like IMG_20230406_175047-1 count as named. A
// prefix match whose following characters do not classify as a timestamp
// does not end the scan; the remaining prefixes are still tried.
func HasCanonicalName(base string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if !strings.HasPrefix(base, prefix) {
			continue
		}
		rest := base[len(prefix):]
		if len(rest) < TimestampLen {
			continue
		}
		if IsTimestamp(rest[:TimestampLen]) {
			return true
		}
	}
	return false
}
