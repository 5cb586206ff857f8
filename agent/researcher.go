package agent

import (
	"context"

	"github.com/hupe1980/agentswarm/core"
	"github.com/hupe1980/agentswarm/model"
)

const researcherInstructions = `You are a research agent. Investigate the given query thoroughly ` +
	`and return the relevant facts, findings and context as plain text. If the query includes ` +
	`critique of earlier research, address every point raised.`

// Researcher gathers raw material for the request. Its payload is the user
// query for round 0, or the query plus the Critic's feedback on rework
// rounds.
type Researcher struct {
	BaseAgent
}

// NewResearcher constructs a Researcher over the given model.
func NewResearcher(m model.Model, optFns ...func(o *Options)) *Researcher {
	return &Researcher{BaseAgent: newBaseAgent(core.RoleResearcher, m, researcherInstructions, optFns...)}
}

// Invoke implements core.Agent.
func (r *Researcher) Invoke(ctx context.Context, task core.Task) (core.Artifact, error) {
	return r.generate(ctx, task)
}
