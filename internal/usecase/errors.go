package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
	ErrNoData                = errors.New("no data available")
)

// FallbackStrategy is the advice surfaced when a briefing cannot be built at
// all: the team should fall back to standard play.
const FallbackStrategy = "Play default setups and gather intel"

// FetchError wraps a failed provider call with enough context for the caller
// to decide on fallback behavior.
type FetchError struct {
	Provider   string
	PlayerID   string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("fetch from %s for player %s: status %d: %v", e.Provider, e.PlayerID, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("fetch from %s for player %s: %v", e.Provider, e.PlayerID, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ParseError marks a provider payload the client could not decode.
type ParseError struct {
	Provider string
	PlayerID string
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s payload for player %s: %v", e.Provider, e.PlayerID, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// BriefingError is returned when briefing orchestration fails entirely. It
// carries a human-readable fallback strategy instead of leaving the caller
// with nothing actionable.
type BriefingError struct {
	Message          string
	FallbackStrategy string
}

func (e *BriefingError) Error() string { return e.Message }
