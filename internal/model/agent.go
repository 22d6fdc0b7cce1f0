package model

import "time"

// AgentProfile is a conversational agent able to handle calls in one
// language. Owned and mutated by the external platform; this service only
// reads and selects among them.
type AgentProfile struct {
	ID                string       `json:"id" bson:"_id,omitempty"`
	Name              string       `json:"name" bson:"name"`
	SupportedLanguage LanguageCode `json:"supportedLanguage" bson:"supportedLanguage"`
	Active            bool         `json:"active" bson:"active"`
	CreatedAt         time.Time    `json:"createdAt" bson:"createdAt"`
}
