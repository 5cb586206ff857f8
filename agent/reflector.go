package agent

import (
	"context"

	"github.com/hupe1980/agentswarm/core"
	"github.com/hupe1980/agentswarm/model"
)

const reflectorInstructions = `You are a reflection agent. Given a critique and the artifacts that ` +
	`led to it, write a short closing reflection: remaining uncertainties, confidence in the ` +
	`answer, and what a further round of research would look at.`

// Reflector produces a closing reflection over the critique and prior
// artifacts. It is optional: pipelines without a Reflector terminate after
// the Critic approves.
type Reflector struct {
	BaseAgent
}

// NewReflector constructs a Reflector over the given model.
func NewReflector(m model.Model, optFns ...func(o *Options)) *Reflector {
	return &Reflector{BaseAgent: newBaseAgent(core.RoleReflector, m, reflectorInstructions, optFns...)}
}

// Invoke implements core.Agent.
func (r *Reflector) Invoke(ctx context.Context, task core.Task) (core.Artifact, error) {
	return r.generate(ctx, task)
}
