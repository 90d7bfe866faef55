package slog_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/fwojciec/pagekit"
	"github.com/fwojciec/pagekit/mock"
	pkslog "github.com/fwojciec/pagekit/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("logs sections and confidence", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.PageExtractor{
			ExtractFn: func(rawHTML, sourceURL string) (*pagekit.Page, error) {
				return &pagekit.Page{
					ID:   "p1",
					Meta: pagekit.Meta{Confidence: pagekit.ConfidenceMedium},
					Sections: []pagekit.Section{
						pagekit.NewSection("hero-1", &pagekit.HeroData{Heading: "Hi"}),
						pagekit.NewSection("faq-1", &pagekit.FAQData{}),
					},
				}, nil
			},
		}

		extractor := pkslog.NewLoggingExtractor(inner, logger)
		page, err := extractor.Extract("<h1>Hi</h1>", "https://example.com/lp")

		require.NoError(t, err)
		assert.Equal(t, "p1", page.ID)
		output := buf.String()
		assert.Contains(t, output, "msg=extract")
		assert.Contains(t, output, "url=https://example.com/lp")
		assert.Contains(t, output, "sections=2")
		assert.Contains(t, output, "confidence=medium")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.PageExtractor{
			ExtractFn: func(rawHTML, sourceURL string) (*pagekit.Page, error) {
				return nil, pagekit.Errorf(pagekit.EINVALID, "empty HTML input")
			},
		}

		extractor := pkslog.NewLoggingExtractor(inner, logger)
		_, err := extractor.Extract("", "https://example.com/lp")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "sections=0")
		assert.Contains(t, output, "err=")
		assert.Contains(t, output, "empty HTML input")
	})
}
