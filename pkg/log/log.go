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

package log

import (
	"fmt"
	"io"
	"path/filepath"
	"sync"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

// 🎨 Display configuration
const (
	fileIndent = 4  // spaces to indent file entries
	nameWidth  = 35 // base width for the old file name column
)

// 🎯 Outcome is what happened to a single file during a run.
type Outcome int

const (
	// OutcomeRenamed means the file now carries its canonical name.
	OutcomeRenamed Outcome = iota
	// OutcomePlanned means a dry run decided the name without touching disk.
	OutcomePlanned
	// OutcomeSkipped means the file was left alone (no usable metadata).
	OutcomeSkipped
	// OutcomeFailed means the rename was attempted and failed.
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeRenamed:
		return "renamed"
	case OutcomePlanned:
		return "planned"
	case OutcomeSkipped:
		return "skipped"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// 🎯 RenameOperation represents one file's result for the console ledger
type RenameOperation struct {
	From    string  // original path
	To      string  // new path, empty unless renamed or planned
	Outcome Outcome // what happened
	Reason  string  // short reason for skipped/failed entries
}

// 🎯 Console handles user-facing run output with a structured mirror
type Console struct {
	zlog zerolog.Logger
	out  io.Writer
	mu   sync.Mutex
}

// 🏭 New creates a new console writing human output to out. The structured
// mirror goes through zerolog's console writer at the given level, so a run
// with --debug shows both streams.
func New(out io.Writer, level zerolog.Level) *Console {
	zlog := zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Logger().Level(level)
	return &Console{
		zlog: zlog,
		out:  out,
	}
}

// 📝 formatRename formats one ledger line: indent, outcome symbol, the old
// name padded to a stable column, then the new name or the reason.
func (c *Console) formatRename(op RenameOperation) string {
	var symbol rune
	var symbolColor color.Attribute
	switch op.Outcome {
	case OutcomeRenamed:
		symbol = '✓'
		symbolColor = color.FgGreen
	case OutcomePlanned:
		symbol = '~'
		symbolColor = color.FgBlue
	case OutcomeFailed:
		symbol = '✗'
		symbolColor = color.FgRed
	default:
		symbol = '-'
		symbolColor = color.FgYellow
	}

	from := filepath.Base(op.From)
	tail := ""
	switch {
	case op.To != "":
		tail = fmt.Sprintf("%s %s",
			color.New(color.Faint).Sprint("→"),
			filepath.Base(op.To))
	case op.Reason != "":
		tail = color.New(color.Faint).Sprint(op.Reason)
	}

	return fmt.Sprintf("%s%s %s %s",
		fmt.Sprintf("%*s", fileIndent, ""),
		color.New(symbolColor).Sprint(string(symbol)),
		fmt.Sprintf("%-*s", nameWidth, from),
		tail)
}

// 📝 Rename logs one file's outcome to the ledger
func (c *Console) Rename(op RenameOperation) {
	c.mu.Lock()
	defer c.mu.Unlock()

	fmt.Fprintln(c.out, c.formatRename(op))

	event := c.zlog.Info()
	if op.Outcome == OutcomeFailed {
		event = c.zlog.Error()
	}
	event.
		Str("from", op.From).
		Str("to", op.To).
		Str("outcome", op.Outcome.String()).
		Str("reason", op.Reason).
		Msg("file rename")
}

// 📝 Phase prints a phase header
func (c *Console) Phase(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	pterm.DefaultSection.WithWriter(c.out).Println(name)
	c.zlog.Debug().Str("phase", name).Msg("phase started")
}

// 📝 Summary prints the end-of-run counters
func (c *Console) Summary(renamed, planned, skipped, failed int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	printer := pterm.Info.WithWriter(c.out)
	if failed > 0 {
		printer = pterm.Warning.WithWriter(c.out)
	}
	printer.Printfln("renamed %d, planned %d, skipped %d, failed %d",
		renamed, planned, skipped, failed)

	c.zlog.Info().
		Int("renamed", renamed).
		Int("planned", planned).
		Int("skipped", skipped).
		Int("failed", failed).
		Msg("run complete")
}

// 📝 LogNewline logs a newline
func (c *Console) LogNewline() {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintln(c.out)
}

// 📝 Header logs the run header
func (c *Console) Header(msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	brand := color.New(color.Bold, color.FgCyan).Sprint("ptrn")
	fmt.Fprintf(c.out, "\n%s %s\n\n", brand, color.New(color.Faint).Sprint("• "+msg))
	c.zlog.Info().Msg(msg)
}

// 📝 Success logs a success message
func (c *Console) Success(msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintf(c.out, "✅ %s\n", color.New(color.FgGreen).Sprint(msg))
	c.zlog.Info().Msg(msg)
}

// 📝 Warning logs a warning message
func (c *Console) Warning(msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintf(c.out, "⚠️  %s\n", color.New(color.FgYellow).Sprint(msg))
	c.zlog.Warn().Msg(msg)
}

// 📝 Error logs an error message
func (c *Console) Error(msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintf(c.out, "❌ %s\n", color.New(color.FgRed).Sprint(msg))
	c.zlog.Error().Msg(msg)
}

// 📝 Info logs an info message
func (c *Console) Info(msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintf(c.out, "ℹ️  %s\n", color.New(color.FgCyan).Sprint(msg))
	c.zlog.Info().Msg(msg)
}

// 📝 Infof logs a formatted info message
func (c *Console) Infof(format string, args ...interface{}) {
	c.Info(fmt.Sprintf(format, args...))
}

// 📝 Warningf logs a formatted warning message
func (c *Console) Warningf(format string, args ...interface{}) {
	c.Warning(fmt.Sprintf(format, args...))
}

// 📝 Errorf logs a formatted error message
func (c *Console) Errorf(format string, args ...interface{}) {
	c.Error(fmt.Sprintf(format, args...))
}

// 📝 Successf logs a formatted success message
func (c *Console) Successf(format string, args ...interface{}) {
	c.Success(fmt.Sprintf(format, args...))
}
