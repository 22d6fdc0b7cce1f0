package service

import "errors"

var (
	// ErrNoAgentAvailable means neither the customer's language tier nor
	// the configured fallback tier has an active agent. Distinct from a
	// missing customer: it signals a coverage gap in agent configuration.
	ErrNoAgentAvailable = errors.New("no agent available")

	// ErrInvalidInput means a required argument was missing or outside the
	// canonical language set.
	ErrInvalidInput = errors.New("invalid input")
)
