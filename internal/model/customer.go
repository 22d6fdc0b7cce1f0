package model

import "time"

// Customer is the persisted customer record. The language engine only reads
// and writes LanguageCode and LanguageConfirmed; the rest belongs to the
// surrounding CRM.
type Customer struct {
	ID                string       `json:"id" bson:"_id,omitempty"`
	Name              string       `json:"name" bson:"name"`
	Phone             string       `json:"phone" bson:"phone"`
	BusinessName      string       `json:"businessName" bson:"businessName"`
	LanguageCode      LanguageCode `json:"languageCode" bson:"languageCode"`
	LanguageConfirmed bool         `json:"languageConfirmed" bson:"languageConfirmed"`
	CreatedAt         time.Time    `json:"createdAt" bson:"createdAt"`
	UpdatedAt         time.Time    `json:"updatedAt" bson:"updatedAt"`
}

// CustomerLanguagePreference is the slice of the customer record the
// verification engine depends on.
type CustomerLanguagePreference struct {
	CustomerID   string       `json:"customerId"`
	LanguageCode LanguageCode `json:"languageCode"`
	Confirmed    bool         `json:"confirmed"`
}
