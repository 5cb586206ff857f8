package core

import (
	"errors"
	"fmt"
)

var (
	// ErrBudgetExceeded signals that a round, retry or call ceiling was hit.
	// It is a normal termination condition, never surfaced to the caller.
	ErrBudgetExceeded = errors.New("budget exceeded")

	// ErrSynthesisIncomplete signals that no usable artifact existed at
	// termination; the orchestrator answers with best-effort text instead.
	ErrSynthesisIncomplete = errors.New("no usable artifact at termination")
)

// AgentError is the typed failure of a single agent invocation. Retryable
// errors (timeouts, rate limits) are re-enqueued by the round controller up
// to the retry budget; non-retryable ones degrade the role immediately.
// AgentError is always handled inside the controller and never crosses the
// orchestrator's Run boundary.
type AgentError struct {
	Role      Role
	Reason    string
	Retryable bool
	Err       error // optional underlying cause
}

// Error implements the error interface.
func (e *AgentError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("agent %s: %s: %v", e.Role, e.Reason, e.Err)
	}

	return fmt.Sprintf("agent %s: %s", e.Role, e.Reason)
}

// Unwrap exposes the underlying cause for errors.Is / errors.As.
func (e *AgentError) Unwrap() error { return e.Err }

// NewAgentError constructs a typed agent failure.
func NewAgentError(role Role, reason string, retryable bool, err error) *AgentError {
	return &AgentError{Role: role, Reason: reason, Retryable: retryable, Err: err}
}

// IsRetryable reports whether err is (or wraps) a retryable AgentError.
func IsRetryable(err error) bool {
	var ae *AgentError
	if errors.As(err, &ae) {
		return ae.Retryable
	}

	return false
}
