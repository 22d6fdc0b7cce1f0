package config

import (
	"strconv"
	"strings"

	"salescall/internal/model"
)

// LanguageConfig holds the language-engine settings. All of them are
// deployment knobs: the canonical ordering decides detection tie-breaks,
// DefaultLanguage fills in for customers without a stored preference, and
// FallbackLanguage is the universal safety net for agent coverage.
type LanguageConfig struct {
	// Canonical is the ordered set of supported language codes.
	Canonical []model.LanguageCode

	// ConfidenceThreshold is the minimum detection confidence for the
	// advisor to propose confirming a language switch.
	ConfidenceThreshold float64

	// DefaultLanguage is assumed when a customer has no stored preference.
	DefaultLanguage model.LanguageCode

	// FallbackLanguage is the second agent-coverage tier when no agent
	// speaks the customer's stored language.
	FallbackLanguage model.LanguageCode
}

// LoadLanguageConfig reads the language settings from the environment
func LoadLanguageConfig() *LanguageConfig {
	cfg := &LanguageConfig{
		ConfidenceThreshold: 0.7,
		DefaultLanguage:     model.LanguageCode(getEnv("DEFAULT_LANGUAGE", "fr")),
		FallbackLanguage:    model.LanguageCode(getEnv("FALLBACK_LANGUAGE", "en")),
	}

	for _, code := range strings.Split(getEnv("LANGUAGES", "en,fr,nl,de,es,it"), ",") {
		code = strings.TrimSpace(code)
		if code != "" {
			cfg.Canonical = append(cfg.Canonical, model.LanguageCode(code))
		}
	}

	if raw := getEnv("LANGUAGE_CONFIDENCE_THRESHOLD", ""); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil && v >= 0 && v <= 1 {
			cfg.ConfidenceThreshold = v
		}
	}

	return cfg
}

// IsKnown reports whether code is part of the canonical set.
func (c *LanguageConfig) IsKnown(code model.LanguageCode) bool {
	for _, l := range c.Canonical {
		if l == code {
			return true
		}
	}
	return false
}
