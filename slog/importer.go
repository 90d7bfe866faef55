package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pagekit"
)

// Ensure LoggingImporter implements pagekit.Importer at compile time.
var _ pagekit.Importer = (*LoggingImporter)(nil)

// LoggingImporter wraps an Importer with logging. Imports never fail, so
// degraded results are logged at warn level instead.
type LoggingImporter struct {
	next   pagekit.Importer
	logger *slog.Logger
}

// NewLoggingImporter creates a new LoggingImporter.
func NewLoggingImporter(next pagekit.Importer, logger *slog.Logger) *LoggingImporter {
	return &LoggingImporter{next: next, logger: logger}
}

// Import delegates to the wrapped importer and logs the outcome.
func (i *LoggingImporter) Import(ctx context.Context, url string) (page *pagekit.Page) {
	defer func(begin time.Time) {
		if page == nil {
			return
		}
		level := slog.LevelInfo
		if page.Meta.Confidence == pagekit.ConfidenceLow {
			level = slog.LevelWarn
		}
		i.logger.Log(ctx, level, "import",
			"url", url,
			"id", page.ID,
			"sections", len(page.Sections),
			"confidence", page.Meta.Confidence,
			"notes", len(page.Meta.Notes),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return i.next.Import(ctx, url)
}
