package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salescall/internal/config"
	"salescall/internal/language"
	"salescall/internal/model"
	"salescall/internal/service"
)

// newDetectOnlyHandler builds a handler whose service has no stores wired.
// The detect path never touches them, so nil repositories are fine here.
func newDetectOnlyHandler() *LanguageHandler {
	cfg := &config.LanguageConfig{
		Canonical:           []model.LanguageCode{"en", "fr", "nl", "de", "es", "it"},
		ConfidenceThreshold: 0.7,
		DefaultLanguage:     "fr",
		FallbackLanguage:    "en",
	}
	svc := service.NewVerificationService(nil, nil, nil, nil,
		language.NewDetector(cfg), service.NewAdvisor(cfg), cfg)
	return NewLanguageHandler(svc)
}

func TestDetectEndpoint(t *testing.T) {
	h := newDetectOnlyHandler()

	req := httptest.NewRequest("POST", "/v1/language/detect",
		strings.NewReader(`{"text":"Bonjour, je voudrais des rouleaux"}`))
	rec := httptest.NewRecorder()

	h.Detect(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var assessment model.LanguageAssessment
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&assessment))
	assert.Equal(t, model.LanguageCode("fr"), assessment.Detection.Language)
	assert.Greater(t, assessment.Detection.Confidence, 0.0)
	assert.Nil(t, assessment.Decision)
	assert.Equal(t, model.ActionDetectLanguage, assessment.Action.Type)
}

func TestDetectEndpointEmptyTranscript(t *testing.T) {
	h := newDetectOnlyHandler()

	req := httptest.NewRequest("POST", "/v1/language/detect", strings.NewReader(`{"text":"   "}`))
	rec := httptest.NewRecorder()

	h.Detect(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var assessment model.LanguageAssessment
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&assessment))
	assert.Equal(t, model.LanguageUnknown, assessment.Detection.Language)
	assert.Zero(t, assessment.Detection.Confidence)
}

func TestDetectEndpointInvalidBody(t *testing.T) {
	h := newDetectOnlyHandler()

	req := httptest.NewRequest("POST", "/v1/language/detect", strings.NewReader(`{not json`))
	rec := httptest.NewRecorder()

	h.Detect(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestVerifyEndpointRequiresTranscript(t *testing.T) {
	h := newDetectOnlyHandler()

	req := httptest.NewRequest("POST", "/v1/customers/c_1/language/verify", strings.NewReader(`{}`))
	req = mux.SetURLVars(req, map[string]string{"customerId": "c_1"})
	rec := httptest.NewRecorder()

	h.Verify(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
