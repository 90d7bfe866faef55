// Package lingua detects the language of page text with lingua-go.
package lingua

import (
	"strings"

	"github.com/fwojciec/pagekit"
	"github.com/pemistahl/lingua-go"
)

// DefaultLanguages are the languages the detector distinguishes when none
// are configured. Restricting the set keeps model loading cheap.
var DefaultLanguages = []lingua.Language{
	lingua.Japanese,
	lingua.English,
	lingua.Chinese,
	lingua.Korean,
}

// MinTextLen is the shortest text, in runes, worth classifying.
const MinTextLen = 3

// Ensure Detector implements pagekit.LanguageDetector at compile time.
var _ pagekit.LanguageDetector = (*Detector)(nil)

// Detector guesses the language of visible page text.
// It is safe for concurrent use.
type Detector struct {
	detector lingua.LanguageDetector
}

// NewDetector creates a Detector for the given languages, or
// DefaultLanguages when none are given.
func NewDetector(languages ...lingua.Language) *Detector {
	if len(languages) < 2 {
		languages = DefaultLanguages
	}
	return &Detector{
		detector: lingua.NewLanguageDetectorBuilder().
			FromLanguages(languages...).
			WithMinimumRelativeDistance(0.1).
			Build(),
	}
}

// DetectLanguage returns the lowercase ISO 639-1 code of text's language.
func (d *Detector) DetectLanguage(text string) (string, bool) {
	text = pagekit.Clean(text)
	if pagekit.RuneLen(text) < MinTextLen {
		return "", false
	}

	language, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return "", false
	}
	return strings.ToLower(language.IsoCode639_1().String()), true
}
