package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/pagekit"
)

// Ensure LoggingExtractor implements pagekit.PageExtractor at compile time.
var _ pagekit.PageExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps a PageExtractor with logging.
type LoggingExtractor struct {
	next   pagekit.PageExtractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next pagekit.PageExtractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract logs the detected sections and confidence of each extraction.
func (e *LoggingExtractor) Extract(rawHTML string, sourceURL string) (page *pagekit.Page, err error) {
	defer func(begin time.Time) {
		var sections int
		var confidence pagekit.Confidence
		if page != nil {
			sections = len(page.Sections)
			confidence = page.Meta.Confidence
		}
		e.logger.Info("extract",
			"url", sourceURL,
			"sections", sections,
			"confidence", confidence,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(rawHTML, sourceURL)
}
