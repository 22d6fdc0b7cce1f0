package service

import (
	"context"
	"fmt"

	"salescall/internal/cache"
	"salescall/internal/config"
	"salescall/internal/language"
	"salescall/internal/model"
	"salescall/internal/repository"
)

// VerificationService reconciles detected languages against stored customer
// preferences and agent coverage. It holds no state of its own: preferences
// live in Mongo, listings are cached in Redis best-effort, and transient
// store failures propagate to the caller unchanged.
type VerificationService struct {
	customers  repository.CustomerRepo
	agents     repository.AgentRepo
	agentCache cache.AgentCache
	prefCache  cache.PreferenceCache
	detector   *language.Detector
	advisor    *Advisor
	cfg        *config.LanguageConfig
}

// NewVerificationService creates a new verification service
func NewVerificationService(
	customers repository.CustomerRepo,
	agents repository.AgentRepo,
	agentCache cache.AgentCache,
	prefCache cache.PreferenceCache,
	detector *language.Detector,
	advisor *Advisor,
	cfg *config.LanguageConfig,
) *VerificationService {
	return &VerificationService{
		customers:  customers,
		agents:     agents,
		agentCache: agentCache,
		prefCache:  prefCache,
		detector:   detector,
		advisor:    advisor,
		cfg:        cfg,
	}
}

// Verify builds the verification decision for a customer. detected may be
// empty (no detection ran) or the unknown sentinel; both leave the stored
// preference as the suggestion. Returns repository.ErrNotFound for an
// unknown customer and ErrNoAgentAvailable when neither the stored-language
// tier nor the fallback tier has an active agent.
func (s *VerificationService) Verify(ctx context.Context, customerID string, detected model.LanguageCode) (*model.VerificationDecision, error) {
	if customerID == "" {
		return nil, fmt.Errorf("customer id is required: %w", ErrInvalidInput)
	}

	pref, err := s.loadPreference(ctx, customerID)
	if err != nil {
		return nil, err
	}

	stored := pref.LanguageCode
	if stored == "" {
		stored = s.cfg.DefaultLanguage
	}

	decision := &model.VerificationDecision{
		CustomerID:        customerID,
		StoredLanguage:    stored,
		DetectedLanguage:  detected,
		SuggestedLanguage: stored,
		Confirmed:         pref.Confirmed,
		NeedsVerification: !pref.Confirmed,
	}

	// A detection that contradicts the stored preference only overrides the
	// suggestion when an active agent can actually take the call.
	if detected != "" && detected != model.LanguageUnknown && detected != stored {
		detectedAgents, err := s.ListAgents(ctx, detected)
		if err != nil {
			return nil, fmt.Errorf("list agents for %s: %w", detected, err)
		}
		if len(detectedAgents) > 0 {
			decision.NeedsVerification = true
			decision.SuggestedLanguage = detected
		}
	}

	available, err := s.ListAgents(ctx, stored)
	if err != nil {
		return nil, fmt.Errorf("list agents for %s: %w", stored, err)
	}
	if len(available) == 0 {
		available, err = s.ListAgents(ctx, s.cfg.FallbackLanguage)
		if err != nil {
			return nil, fmt.Errorf("list agents for fallback %s: %w", s.cfg.FallbackLanguage, err)
		}
	}
	if len(available) == 0 {
		return nil, fmt.Errorf("no coverage for %s or fallback %s: %w", stored, s.cfg.FallbackLanguage, ErrNoAgentAvailable)
	}
	decision.AvailableAgents = available

	suggested, err := s.ListAgents(ctx, decision.SuggestedLanguage)
	if err != nil {
		return nil, fmt.Errorf("list agents for %s: %w", decision.SuggestedLanguage, err)
	}
	decision.SuggestedAgents = suggested

	return decision, nil
}

// ConfirmPreference persists the customer's confirmed language. Idempotent:
// repeating the call with the same code is a no-op after the first.
func (s *VerificationService) ConfirmPreference(ctx context.Context, customerID string, code model.LanguageCode) error {
	if customerID == "" {
		return fmt.Errorf("customer id is required: %w", ErrInvalidInput)
	}
	if !s.cfg.IsKnown(code) {
		return fmt.Errorf("language %q is not in the canonical set: %w", code, ErrInvalidInput)
	}

	if err := s.customers.ConfirmLanguage(ctx, customerID, code); err != nil {
		return err
	}

	// Write through so cached reads see the confirmation immediately.
	if s.prefCache != nil {
		s.prefCache.Set(ctx, &model.CustomerLanguagePreference{
			CustomerID:   customerID,
			LanguageCode: code,
			Confirmed:    true,
		})
	}
	return nil
}

// Analyze runs the full pipeline for one transcript: detect, then verify
// against the customer when one is given, then advise. Without a customer
// the decision is omitted and the advisor answers from the detection alone.
func (s *VerificationService) Analyze(ctx context.Context, customerID, transcript string) (*model.LanguageAssessment, error) {
	detection := s.detector.Detect(transcript)

	if customerID == "" {
		return &model.LanguageAssessment{
			Detection: detection,
			Action:    s.advisor.Advise(detection, nil),
		}, nil
	}

	decision, err := s.Verify(ctx, customerID, detection.Language)
	if err != nil {
		return nil, err
	}

	return &model.LanguageAssessment{
		Detection: detection,
		Decision:  decision,
		Action:    s.advisor.Advise(detection, decision),
	}, nil
}

// ListAgents returns active agents for a language (all active agents when
// empty), read through the cache. Cache errors are swallowed: a failed cache
// never fails the call, it just falls through to Mongo.
func (s *VerificationService) ListAgents(ctx context.Context, lang model.LanguageCode) ([]model.AgentProfile, error) {
	if s.agentCache != nil {
		if agents, err := s.agentCache.GetByLanguage(ctx, lang); err == nil && agents != nil {
			return agents, nil
		}
	}

	agents, err := s.agents.ListActive(ctx, lang)
	if err != nil {
		return nil, err
	}

	if s.agentCache != nil && len(agents) > 0 {
		s.agentCache.SetByLanguage(ctx, lang, agents)
	}
	return agents, nil
}

func (s *VerificationService) loadPreference(ctx context.Context, customerID string) (*model.CustomerLanguagePreference, error) {
	if s.prefCache != nil {
		if pref, err := s.prefCache.Get(ctx, customerID); err == nil && pref != nil {
			return pref, nil
		}
	}

	pref, err := s.customers.GetPreference(ctx, customerID)
	if err != nil {
		return nil, err
	}

	if s.prefCache != nil {
		s.prefCache.Set(ctx, pref)
	}
	return pref, nil
}
