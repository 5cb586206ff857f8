package agent

import (
	"context"
	"errors"
	"strings"

	"github.com/hupe1980/agentswarm/core"
	"github.com/hupe1980/agentswarm/model"
)

// Options configure a role adapter. Defaults come from the concrete
// constructor (role name, role instructions).
type Options struct {
	// Name overrides the human-readable agent name.
	Name string
	// Instructions overrides the role instructions sent to the model.
	Instructions string
}

// BaseAgent bundles the identity and model plumbing shared by the four role
// adapters. Embed it and supply Invoke to satisfy core.Agent.
type BaseAgent struct {
	name         string
	role         core.Role
	model        model.Model
	instructions string
}

func newBaseAgent(role core.Role, m model.Model, defaultInstructions string, optFns ...func(o *Options)) BaseAgent {
	opts := Options{
		Name:         role.Label(),
		Instructions: defaultInstructions,
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return BaseAgent{
		name:         opts.Name,
		role:         role,
		model:        m,
		instructions: opts.Instructions,
	}
}

// Name returns the human-readable name for this agent.
func (b *BaseAgent) Name() string { return b.name }

// Role returns the pipeline role this agent fills.
func (b *BaseAgent) Role() core.Role { return b.role }

// generate runs the model over the task payload and wraps the output in an
// artifact for the task's round. Failures come back as *core.AgentError
// with the retryable flag derived from the failure class.
func (b *BaseAgent) generate(ctx context.Context, task core.Task) (core.Artifact, error) {
	resp, err := b.model.Generate(ctx, model.Request{
		Instructions: b.instructions,
		Input:        task.Payload,
	})
	if err != nil {
		return core.Artifact{}, core.NewAgentError(b.role, "model call failed", retryable(err), err)
	}

	if strings.TrimSpace(resp.Text) == "" {
		return core.Artifact{}, core.NewAgentError(b.role, "empty model response", true, nil)
	}

	art := core.NewArtifact(b.role, task.Round, resp.Text)
	art.Attempt = task.Attempts

	return art, nil
}

// retryable classifies transient model failures: timeouts and rate limits
// are worth another attempt, everything else degrades immediately.
func retryable(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	if errors.Is(err, context.Canceled) {
		return false
	}

	msg := strings.ToLower(err.Error())
	for _, marker := range []string{"rate limit", "429", "timeout", "timed out", "overloaded", "503", "unavailable"} {
		if strings.Contains(msg, marker) {
			return true
		}
	}

	return false
}
