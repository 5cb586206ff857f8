package core

import "context"

// Agent is a single-role worker: it accepts a task payload and produces one
// artifact, or fails with an AgentError.
//
// Implementations must:
//   - Respect context cancellation; the controller bounds every invocation
//     with a per-call timeout derived from the run context.
//   - Produce an artifact for the task's role and round, nothing else; an
//     agent touches no shared mutable state.
//   - Classify failures via AgentError so the controller can decide between
//     retry and degradation.
type Agent interface {
	// Name returns the human-readable agent name.
	Name() string

	// Role returns the pipeline role this agent fills.
	Role() Role

	// Invoke executes the task and returns the produced artifact.
	Invoke(ctx context.Context, task Task) (Artifact, error)
}

// AgentInfo carries identifying details about an agent used in logs.
type AgentInfo struct {
	Name string
	Role Role
}
