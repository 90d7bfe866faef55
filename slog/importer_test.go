package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/pagekit"
	"github.com/fwojciec/pagekit/mock"
	pkslog "github.com/fwojciec/pagekit/slog"
	"github.com/stretchr/testify/assert"
)

func TestLoggingImporter_Import(t *testing.T) {
	t.Parallel()

	t.Run("logs successful import at info level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Importer{
			ImportFn: func(ctx context.Context, url string) *pagekit.Page {
				return &pagekit.Page{
					ID:   "p1",
					Meta: pagekit.Meta{SourceURL: url, Confidence: pagekit.ConfidenceHigh, Notes: []string{}},
				}
			},
		}

		importer := pkslog.NewLoggingImporter(inner, logger)
		page := importer.Import(context.Background(), "https://example.com/lp")

		assert.Equal(t, "p1", page.ID)
		output := buf.String()
		assert.Contains(t, output, "level=INFO")
		assert.Contains(t, output, "msg=import")
		assert.Contains(t, output, "url=https://example.com/lp")
		assert.Contains(t, output, "id=p1")
		assert.Contains(t, output, "confidence=high")
	})

	t.Run("logs low confidence import at warn level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Importer{
			ImportFn: func(ctx context.Context, url string) *pagekit.Page {
				return &pagekit.Page{
					ID:   "p2",
					Meta: pagekit.Meta{Confidence: pagekit.ConfidenceLow, Notes: []string{"a", "b", "c"}},
				}
			},
		}

		importer := pkslog.NewLoggingImporter(inner, logger)
		importer.Import(context.Background(), "https://example.com/broken")

		output := buf.String()
		assert.Contains(t, output, "level=WARN")
		assert.Contains(t, output, "confidence=low")
		assert.Contains(t, output, "notes=3")
	})
}
