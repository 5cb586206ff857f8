package agent

import (
	"context"
	"errors"
	"testing"

	"github.com/hupe1980/agentswarm/core"
	"github.com/hupe1980/agentswarm/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Interface compliance (compile-time assertions)
var (
	_ core.Agent = (*Researcher)(nil)
	_ core.Agent = (*Summarizer)(nil)
	_ core.Agent = (*Critic)(nil)
	_ core.Agent = (*Reflector)(nil)
)

func TestResearcher_Invoke(t *testing.T) {
	m := model.NewMockModel("test")
	m.AddResponse("battery chemistry", "R1: solid-state electrolytes are advancing")

	r := NewResearcher(m)
	assert.Equal(t, "researcher", r.Name())
	assert.Equal(t, core.RoleResearcher, r.Role())

	art, err := r.Invoke(context.Background(), core.NewTask(core.RoleResearcher, 0, "battery chemistry"))
	require.NoError(t, err)
	assert.Equal(t, core.RoleResearcher, art.Role)
	assert.Equal(t, 0, art.Round)
	assert.Equal(t, core.StatusOK, art.Status)
	assert.Equal(t, "R1: solid-state electrolytes are advancing", art.Content)
}

func TestAgent_Options(t *testing.T) {
	m := model.NewMockModel("test")
	s := NewSummarizer(m, func(o *Options) {
		o.Name = "tldr-bot"
		o.Instructions = "be brief"
	})

	assert.Equal(t, "tldr-bot", s.Name())
	assert.Equal(t, "be brief", s.instructions)
}

func TestAgent_Invoke_ModelFailure(t *testing.T) {
	m := model.NewMockModel("test")
	m.FailOn("q", errors.New("429 rate limit exceeded"))

	r := NewResearcher(m)
	_, err := r.Invoke(context.Background(), core.NewTask(core.RoleResearcher, 0, "q"))
	require.Error(t, err)

	var ae *core.AgentError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, core.RoleResearcher, ae.Role)
	assert.True(t, ae.Retryable)

	m.FailOn("q2", errors.New("invalid api key"))
	_, err = r.Invoke(context.Background(), core.NewTask(core.RoleResearcher, 0, "q2"))
	require.ErrorAs(t, err, &ae)
	assert.False(t, ae.Retryable)
}

func TestAgent_Invoke_EmptyResponseIsRetryable(t *testing.T) {
	m := model.NewMockModel("test")
	m.AddResponse("q", "   ")

	s := NewSummarizer(m)
	_, err := s.Invoke(context.Background(), core.NewTask(core.RoleSummarizer, 0, "q"))
	require.Error(t, err)
	assert.True(t, core.IsRetryable(err))
}

func TestAgent_Invoke_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := NewReflector(model.NewMockModel("test"))
	_, err := r.Invoke(ctx, core.NewTask(core.RoleReflector, 0, "critique"))
	require.Error(t, err)
	assert.False(t, core.IsRetryable(err), "parent cancellation is not worth a retry")
}

func TestCritic_Invoke_SetsVerdict(t *testing.T) {
	m := model.NewMockModel("test")
	m.AddResponse("draft", "VERDICT: REWORK SUMMARY\nThe draft buries the conclusion.")

	c := NewCritic(m)
	art, err := c.Invoke(context.Background(), core.NewTask(core.RoleCritic, 0, "draft"))
	require.NoError(t, err)
	assert.Equal(t, core.VerdictReworkSummary, art.Verdict)
	assert.Contains(t, art.Content, "buries the conclusion")
}

func TestParseVerdict(t *testing.T) {
	tests := []struct {
		name     string
		critique string
		want     core.Verdict
	}{
		{"approve", "VERDICT: APPROVE\nLooks solid.", core.VerdictApprove},
		{"rework research", "VERDICT: REWORK RESEARCH\nSources are thin.", core.VerdictReworkResearch},
		{"rework summary", "verdict: rework summary\ntoo long", core.VerdictReworkSummary},
		{"marker later in text", "Overall fine.\nVERDICT: REWORK RESEARCH", core.VerdictReworkResearch},
		{"no marker defaults to approve", "Great summary, ship it.", core.VerdictApprove},
		{"unrecognized value defaults to approve", "VERDICT: SHRUG", core.VerdictApprove},
		{"empty", "", core.VerdictApprove},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseVerdict(tt.critique))
		})
	}
}

func TestRetryableClassification(t *testing.T) {
	assert.True(t, retryable(context.DeadlineExceeded))
	assert.False(t, retryable(context.Canceled))
	assert.True(t, retryable(errors.New("upstream timed out")))
	assert.True(t, retryable(errors.New("model overloaded, try later")))
	assert.True(t, retryable(errors.New("HTTP 503 service unavailable")))
	assert.False(t, retryable(errors.New("invalid request payload")))
}
