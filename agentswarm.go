// Package agentswarm provides a high-level façade over the swarm
// orchestration core, enabling rapid construction of a research pipeline
// (research → summarize → critique → reflect) from a single model. Most
// applications interact with this package by:
//  1. Creating a Swarm via New() around a model.Model (optionally tuning
//     budgets or supplying a structured logger)
//  2. Calling Run with the user's request text
//
// The façade delegates orchestration to swarm.Orchestrator while keeping
// setup ergonomics concise. All defaults are safe for local development and
// testing; production deployments typically supply tuned budgets and a
// structured logger.
package agentswarm

import (
	"context"

	"github.com/hupe1980/agentswarm/agent"
	"github.com/hupe1980/agentswarm/config"
	"github.com/hupe1980/agentswarm/core"
	"github.com/hupe1980/agentswarm/logging"
	"github.com/hupe1980/agentswarm/model"
	"github.com/hupe1980/agentswarm/swarm"
)

// Options configures the Swarm instance.
type Options struct {
	// Config carries the orchestration budgets (rounds, retries, timeouts).
	Config config.Config

	// Logger (defaults to NoOp logger if nil)
	Logger logging.Logger

	// DisableReflector builds the pipeline without a reflection pass; the
	// final answer is then the approved summary alone.
	DisableReflector bool
}

// Swarm is the high-level façade aggregating the default agent pipeline and
// the underlying orchestrator.
type Swarm struct {
	opts Options
	orch *swarm.Orchestrator
}

// New creates a Swarm whose four role agents all run on the given model.
// For per-role models or custom agents, construct swarm.New directly.
func New(m model.Model, optFns ...func(o *Options)) *Swarm {
	opts := Options{
		Config: config.Default(),
		Logger: logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	agents := []core.Agent{
		agent.NewResearcher(m),
		agent.NewSummarizer(m),
		agent.NewCritic(m),
	}
	if !opts.DisableReflector {
		agents = append(agents, agent.NewReflector(m))
	}

	orch := swarm.New(agents, func(o *swarm.Options) {
		o.Config = opts.Config
		o.Logger = opts.Logger
	})

	return &Swarm{opts: opts, orch: orch}
}

// Run processes one request and returns the synthesized answer. It never
// returns an error: failures degrade into a best-effort textual answer.
func (s *Swarm) Run(ctx context.Context, input string) string {
	return s.orch.Run(ctx, input)
}

// Orchestrator exposes the underlying orchestrator for advanced use.
func (s *Swarm) Orchestrator() *swarm.Orchestrator { return s.orch }
