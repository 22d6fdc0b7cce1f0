package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salescall/internal/config"
	"salescall/internal/model"
)

func advisorConfig() *config.LanguageConfig {
	return &config.LanguageConfig{
		Canonical:           []model.LanguageCode{"en", "fr", "nl", "de", "es", "it"},
		ConfidenceThreshold: 0.7,
		DefaultLanguage:     "fr",
		FallbackLanguage:    "en",
	}
}

func frenchAgent() model.AgentProfile {
	return model.AgentProfile{ID: "a_1", Name: "Sophie", SupportedLanguage: "fr", Active: true}
}

func dutchAgent() model.AgentProfile {
	return model.AgentProfile{ID: "a_2", Name: "Jan", SupportedLanguage: "nl", Active: true}
}

func TestAdviseWithoutDecision(t *testing.T) {
	advisor := NewAdvisor(advisorConfig())

	action := advisor.Advise(model.DetectionResult{Language: "fr", Confidence: 0.5}, nil)
	assert.Equal(t, model.ActionDetectLanguage, action.Type)
	assert.Contains(t, action.Message, "fr")

	action = advisor.Advise(model.DetectionResult{Language: model.LanguageUnknown}, nil)
	assert.Equal(t, model.ActionDetectLanguage, action.Type)
	assert.Contains(t, action.Message, "could not determine")
}

func TestAdviseConfidenceBoundary(t *testing.T) {
	advisor := NewAdvisor(advisorConfig())
	decision := &model.VerificationDecision{
		CustomerID:        "c_1",
		StoredLanguage:    "nl",
		SuggestedLanguage: "fr",
		NeedsVerification: true,
		AvailableAgents:   []model.AgentProfile{dutchAgent()},
		SuggestedAgents:   []model.AgentProfile{frenchAgent()},
	}

	// At the threshold the switch is confirmed.
	action := advisor.Advise(model.DetectionResult{Language: "fr", Confidence: 0.70}, decision)
	require.Equal(t, model.ActionConfirmLanguage, action.Type)
	assert.Equal(t, model.LanguageCode("fr"), action.TargetLanguage)
	assert.Equal(t, []model.AgentProfile{frenchAgent()}, action.TargetAgents)

	// Just below it the caller is asked instead.
	action = advisor.Advise(model.DetectionResult{Language: "fr", Confidence: 0.69}, decision)
	assert.Equal(t, model.ActionAskLanguagePreference, action.Type)
}

func TestAdviseUnknownDetectionAsksPreference(t *testing.T) {
	advisor := NewAdvisor(advisorConfig())
	decision := &model.VerificationDecision{
		StoredLanguage:    "nl",
		SuggestedLanguage: "nl",
		NeedsVerification: true,
		AvailableAgents:   []model.AgentProfile{dutchAgent(), frenchAgent()},
		SuggestedAgents:   []model.AgentProfile{dutchAgent()},
	}

	action := advisor.Advise(model.DetectionResult{Language: model.LanguageUnknown}, decision)
	require.Equal(t, model.ActionAskLanguagePreference, action.Type)
	// Candidates come from available agents, deduplicated in canonical order.
	assert.Equal(t, []model.LanguageCode{"fr", "nl"}, action.CandidateLanguages)
}

func TestAdviseConfirmedCustomerContinues(t *testing.T) {
	advisor := NewAdvisor(advisorConfig())
	decision := &model.VerificationDecision{
		StoredLanguage:    "nl",
		SuggestedLanguage: "nl",
		Confirmed:         true,
		NeedsVerification: false,
		AvailableAgents:   []model.AgentProfile{dutchAgent(), frenchAgent()},
		SuggestedAgents:   []model.AgentProfile{dutchAgent()},
	}

	action := advisor.Advise(model.DetectionResult{Language: "nl", Confidence: 0.9}, decision)
	require.Equal(t, model.ActionContinue, action.Type)
	require.NotNil(t, action.CurrentAgent)
	assert.Equal(t, "Jan", action.CurrentAgent.Name)
}

func TestAdviseHighConfidenceMismatchContinues(t *testing.T) {
	advisor := NewAdvisor(advisorConfig())

	// Detection contradicts the suggestion but confidence clears the
	// threshold: neither confirm nor ask matches, so the call continues.
	decision := &model.VerificationDecision{
		StoredLanguage:    "nl",
		SuggestedLanguage: "nl",
		NeedsVerification: true,
		AvailableAgents:   []model.AgentProfile{dutchAgent()},
		SuggestedAgents:   []model.AgentProfile{dutchAgent()},
	}

	action := advisor.Advise(model.DetectionResult{Language: "es", Confidence: 0.9}, decision)
	assert.Equal(t, model.ActionContinue, action.Type)
}
