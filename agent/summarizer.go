package agent

import (
	"context"

	"github.com/hupe1980/agentswarm/core"
	"github.com/hupe1980/agentswarm/model"
)

const summarizerInstructions = `You are a summarization agent. Condense the given research text ` +
	`into a clear, well-structured answer. Preserve the substance, drop the noise. If the text ` +
	`includes critique of an earlier draft, rewrite the draft to resolve it.`

// Summarizer condenses research output into a draft answer. Its payload is
// the raw research text, or the prior draft plus critique on rework rounds.
type Summarizer struct {
	BaseAgent
}

// NewSummarizer constructs a Summarizer over the given model.
func NewSummarizer(m model.Model, optFns ...func(o *Options)) *Summarizer {
	return &Summarizer{BaseAgent: newBaseAgent(core.RoleSummarizer, m, summarizerInstructions, optFns...)}
}

// Invoke implements core.Agent.
func (s *Summarizer) Invoke(ctx context.Context, task core.Task) (core.Artifact, error) {
	return s.generate(ctx, task)
}
