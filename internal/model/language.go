package model

// LanguageCode is a short language code from the configured canonical set.
// The canonical ordering of codes is significant: it decides ties during
// detection, lowest index wins.
type LanguageCode string

// LanguageUnknown is the sentinel returned when no language scored.
const LanguageUnknown LanguageCode = "unknown"

// DetectionResult is the outcome of classifying one transcript.
// Ephemeral, produced per call, never persisted.
type DetectionResult struct {
	Language   LanguageCode         `json:"language"`
	Confidence float64              `json:"confidence"`
	Scores     map[LanguageCode]int `json:"scores"`
}

// VerificationDecision reconciles a detection against the customer's stored
// preference and current agent coverage. Derived on each call.
type VerificationDecision struct {
	CustomerID        string         `json:"customerId"`
	StoredLanguage    LanguageCode   `json:"storedLanguage"`
	DetectedLanguage  LanguageCode   `json:"detectedLanguage,omitempty"`
	SuggestedLanguage LanguageCode   `json:"suggestedLanguage"`
	Confirmed         bool           `json:"confirmed"`
	NeedsVerification bool           `json:"needsVerification"`
	AvailableAgents   []AgentProfile `json:"availableAgents"`
	SuggestedAgents   []AgentProfile `json:"suggestedAgents"`
}

type ActionType string

const (
	ActionConfirmLanguage       ActionType = "confirm_language"
	ActionAskLanguagePreference ActionType = "ask_language_preference"
	ActionContinue              ActionType = "continue"
	ActionDetectLanguage        ActionType = "detect_language"
)

// RecommendedAction is the advisor's verdict for the session: a tagged
// variant with only the fields for its Type populated.
type RecommendedAction struct {
	Type               ActionType     `json:"type"`
	TargetLanguage     LanguageCode   `json:"targetLanguage,omitempty"`
	TargetAgents       []AgentProfile `json:"targetAgents,omitempty"`
	CandidateLanguages []LanguageCode `json:"candidateLanguages,omitempty"`
	CurrentAgent       *AgentProfile  `json:"currentAgent,omitempty"`
	Message            string         `json:"message,omitempty"`
}

// LanguageAssessment bundles the full detect → verify → advise pipeline
// result for one transcript.
type LanguageAssessment struct {
	Detection DetectionResult       `json:"detection"`
	Decision  *VerificationDecision `json:"decision,omitempty"`
	Action    RecommendedAction     `json:"action"`
}
