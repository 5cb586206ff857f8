package agentswarm

import (
	"context"
	"testing"

	"github.com/hupe1980/agentswarm/config"
	"github.com/hupe1980/agentswarm/model"
	"github.com/stretchr/testify/assert"
)

func TestNew_DefaultPipeline(t *testing.T) {
	m := model.NewMockModel("test")
	m.AddResponse("q", "R1")
	m.AddResponse("R1", "S1")
	m.AddResponse("S1", "VERDICT: APPROVE\nFine.")

	s := New(m, func(o *Options) { o.DisableReflector = true })
	out := s.Run(context.Background(), "q")

	assert.Equal(t, "S1", out)
	assert.NotNil(t, s.Orchestrator())
	assert.Equal(t, config.Default(), s.Orchestrator().Config())
}

func TestNew_WithReflector(t *testing.T) {
	m := model.NewMockModel("test")
	m.AddResponse("q", "R1")
	m.AddResponse("R1", "S1")
	m.AddResponse("S1", "VERDICT: APPROVE\nFine.")
	m.AddResponse("VERDICT: APPROVE\nFine.\n\nDraft summary:\nS1", "Ref1")

	out := New(m).Run(context.Background(), "q")
	assert.Equal(t, "S1\n\nReflection:\nRef1", out)
}
