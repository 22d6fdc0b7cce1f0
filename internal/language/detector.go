// Package language implements lexical language detection over call
// transcripts. Detection is pure text scoring: no I/O, no shared mutable
// state, safe under unlimited concurrent calls.
package language

import (
	"strings"
	"unicode"

	"salescall/internal/config"
	"salescall/internal/model"
)

// Detector scores transcripts against per-language marker sets. Built once
// from config at startup; immutable afterwards.
type Detector struct {
	languages []model.LanguageCode
	markers   map[model.LanguageCode]map[string]struct{}
	places    map[model.LanguageCode]map[string]struct{}
}

// NewDetector builds a detector for the configured canonical language set.
// Languages without marker tables simply never score.
func NewDetector(cfg *config.LanguageConfig) *Detector {
	d := &Detector{
		languages: append([]model.LanguageCode(nil), cfg.Canonical...),
		markers:   make(map[model.LanguageCode]map[string]struct{}),
		places:    make(map[model.LanguageCode]map[string]struct{}),
	}
	for _, lang := range d.languages {
		d.markers[lang] = toSet(markerWords[lang])
		d.places[lang] = toSet(placeNames[lang])
	}
	return d
}

// Detect classifies a transcript. Empty or whitespace-only input returns
// the unknown sentinel with zero confidence and all-zero scores; otherwise
// every canonical language is scored independently and the maximum wins,
// ties broken by canonical order (lowest index wins).
func (d *Detector) Detect(text string) model.DetectionResult {
	scores := make(map[model.LanguageCode]int, len(d.languages))
	for _, lang := range d.languages {
		scores[lang] = 0
	}

	tokens := tokenize(text)
	if len(tokens) == 0 {
		return model.DetectionResult{Language: model.LanguageUnknown, Confidence: 0, Scores: scores}
	}

	for _, lang := range d.languages {
		words := d.markers[lang]
		places := d.places[lang]
		for _, tok := range tokens {
			if _, ok := words[tok]; ok {
				scores[lang]++
			}
			if _, ok := places[tok]; ok {
				scores[lang]++
			}
		}
	}

	best := model.LanguageUnknown
	bestScore := 0
	for _, lang := range d.languages {
		// Strict > keeps the first canonical language on ties.
		if scores[lang] > bestScore {
			best = lang
			bestScore = scores[lang]
		}
	}

	confidence := 0.0
	if bestScore > 0 {
		confidence = float64(bestScore) / (float64(len(tokens)) * 2)
		if confidence > 1.0 {
			confidence = 1.0
		}
	}

	return model.DetectionResult{Language: best, Confidence: confidence, Scores: scores}
}

// tokenize case-folds the transcript, splits on whitespace and strips
// leading/trailing punctuation from each token. Tokens that are pure
// punctuation are dropped; the result length is the word count used for
// confidence normalization.
func tokenize(text string) []string {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(text)))
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		tok := strings.TrimFunc(f, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsNumber(r)
		})
		if tok != "" {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
