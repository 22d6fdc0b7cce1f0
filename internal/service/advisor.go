package service

import (
	"fmt"

	"salescall/internal/config"
	"salescall/internal/model"
)

// Advisor maps a detection and a verification decision to the one
// recommended next action for the voice session. Pure and deterministic: the
// session itself only changes state when the orchestrator later calls
// ConfirmPreference.
type Advisor struct {
	threshold float64
	canonical []model.LanguageCode
}

// NewAdvisor creates a new advisor
func NewAdvisor(cfg *config.LanguageConfig) *Advisor {
	return &Advisor{
		threshold: cfg.ConfidenceThreshold,
		canonical: append([]model.LanguageCode(nil), cfg.Canonical...),
	}
}

// Advise evaluates the decision table in order, first match wins:
//
//  1. no customer context            → detect_language with a summary
//  2. needs verification, detection matches the suggestion at or above the
//     threshold                      → confirm_language
//  3. needs verification, detection unknown or below the threshold
//     → ask_language_preference
//  4. otherwise                      → continue with the first available agent
func (a *Advisor) Advise(det model.DetectionResult, decision *model.VerificationDecision) model.RecommendedAction {
	if decision == nil {
		return model.RecommendedAction{
			Type:    model.ActionDetectLanguage,
			Message: a.confidenceSummary(det),
		}
	}

	if decision.NeedsVerification {
		if det.Language == decision.SuggestedLanguage && det.Confidence >= a.threshold {
			return model.RecommendedAction{
				Type:           model.ActionConfirmLanguage,
				TargetLanguage: decision.SuggestedLanguage,
				TargetAgents:   decision.SuggestedAgents,
			}
		}
		if det.Language == model.LanguageUnknown || det.Confidence < a.threshold {
			return model.RecommendedAction{
				Type:               model.ActionAskLanguagePreference,
				CandidateLanguages: a.candidateLanguages(decision.AvailableAgents),
			}
		}
	}

	var current *model.AgentProfile
	if len(decision.AvailableAgents) > 0 {
		current = &decision.AvailableAgents[0]
	}
	return model.RecommendedAction{
		Type:         model.ActionContinue,
		CurrentAgent: current,
	}
}

// candidateLanguages collects the languages covered by the available agents,
// deduplicated in canonical order.
func (a *Advisor) candidateLanguages(agents []model.AgentProfile) []model.LanguageCode {
	covered := make(map[model.LanguageCode]bool, len(agents))
	for _, agent := range agents {
		covered[agent.SupportedLanguage] = true
	}

	var candidates []model.LanguageCode
	for _, lang := range a.canonical {
		if covered[lang] {
			candidates = append(candidates, lang)
		}
	}
	return candidates
}

func (a *Advisor) confidenceSummary(det model.DetectionResult) string {
	if det.Language == model.LanguageUnknown {
		return "could not determine language from transcript"
	}
	return fmt.Sprintf("detected %s with %.0f%% confidence", det.Language, det.Confidence*100)
}
