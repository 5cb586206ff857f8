package core

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAgentError_Error(t *testing.T) {
	e := NewAgentError(RoleResearcher, "call timed out", true, nil)
	assert.Contains(t, e.Error(), "researcher")
	assert.Contains(t, e.Error(), "call timed out")

	cause := errors.New("boom")
	e = NewAgentError(RoleCritic, "model call failed", false, cause)
	assert.Contains(t, e.Error(), "boom")
	assert.ErrorIs(t, e, cause)
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, IsRetryable(NewAgentError(RoleSummarizer, "rate limited", true, nil)))
	assert.False(t, IsRetryable(NewAgentError(RoleSummarizer, "bad payload", false, nil)))

	// wrapped AgentError is still recognized
	wrapped := fmt.Errorf("dispatch: %w", NewAgentError(RoleResearcher, "timeout", true, nil))
	assert.True(t, IsRetryable(wrapped))

	assert.False(t, IsRetryable(errors.New("plain")))
	assert.False(t, IsRetryable(nil))
}

func TestCallLimiter(t *testing.T) {
	cl := NewCallLimiter(2)
	assert.NoError(t, cl.Increment())
	assert.NoError(t, cl.Increment())

	err := cl.Increment()
	assert.ErrorIs(t, err, ErrBudgetExceeded)
	assert.Equal(t, 3, cl.Count())
	assert.Equal(t, -1, NewCallLimiter(0).Remaining())
}

func TestArtifact_Usable(t *testing.T) {
	a := NewArtifact(RoleSummarizer, 0, "draft")
	assert.True(t, a.Usable())

	a.Status = StatusDegraded
	assert.True(t, a.Usable())

	a.Status = StatusFailed
	assert.False(t, a.Usable())
}
