// Package cli implements the panelize command-line interface.
//
// The root command reads one SVG, lays copies of its content out on a grid
// and writes the enlarged document. Grid settings come from flags or from a
// panelize.toml file; flags always win. Rendered artifacts are cached under
// the XDG cache directory and managed with the cache subcommand.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The logger
// lives on [CLI] and is handed to the pipeline runner.
package cli

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg at debug level with the elapsed time, rounded to the
// millisecond, appended to keyvals.
func (p *progress) done(msg string, keyvals ...any) {
	p.logger.Debug(msg, append(keyvals, "elapsed", time.Since(p.start).Round(time.Millisecond))...)
}
