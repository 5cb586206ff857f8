package swarm

import (
	"context"

	"github.com/hupe1980/agentswarm/artifact"
	"github.com/hupe1980/agentswarm/config"
	"github.com/hupe1980/agentswarm/core"
	"github.com/hupe1980/agentswarm/logging"
	"github.com/hupe1980/agentswarm/queue"
)

// Options holds dependency + configuration overrides passed to New().
type Options struct {
	// Config carries the round/retry/timeout budgets. Defaults to
	// config.Default().
	Config config.Config
	// Logger receives structured run diagnostics. Defaults to NoOpLogger.
	Logger logging.Logger
	// Pool is the bounded worker pool shared across requests. When nil a
	// fresh pool of Config.PoolSize is created; supply one explicitly to
	// share capacity between multiple orchestrators.
	Pool *WorkerPool
}

// Orchestrator owns the agent set and the shared worker pool and exposes
// Run. All per-request state (queue, store, round state) is constructed
// fresh inside Run, so concurrent Run calls are isolated by design.
type Orchestrator struct {
	agents map[core.Role]core.Agent
	cfg    config.Config
	logger logging.Logger
	pool   *WorkerPool
}

// New constructs an Orchestrator over the given agents with optional
// overrides. At most one agent per role is kept; a later agent for an
// already-filled role replaces the earlier one.
func New(agents []core.Agent, optFns ...func(o *Options)) *Orchestrator {
	opts := Options{
		Config: config.Default(),
		Logger: logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.Pool == nil {
		opts.Pool = NewWorkerPool(opts.Config.PoolSize)
	}

	byRole := make(map[core.Role]core.Agent, len(agents))
	for _, ag := range agents {
		byRole[ag.Role()] = ag
	}

	return &Orchestrator{
		agents: byRole,
		cfg:    opts.Config,
		logger: opts.Logger,
		pool:   opts.Pool,
	}
}

// Config returns the budgets this orchestrator runs under.
func (o *Orchestrator) Config() config.Config { return o.cfg }

// Run turns one user request into a finished answer. The input is treated
// as untrusted free text; structural validation belongs to the caller.
//
// Run never fails outward: agent failures degrade inside the controller,
// and even a catastrophic internal fault is converted into a best-effort
// textual explanation, because the caller has no recovery path of its own.
func (o *Orchestrator) Run(ctx context.Context, input string) (out string) {
	defer func() {
		if r := recover(); r != nil {
			o.logger.Error("orchestrator panic recovered: %v", r)
			out = synthesisFallback
		}
	}()

	request := core.NewRequest(input)
	logger := o.logger

	runCtx, cancel := context.WithTimeout(ctx, o.cfg.Deadline)
	defer cancel()

	// fresh per-request state
	q := queue.New()
	store := artifact.NewInMemoryStore()
	controller := newRoundController(request, o.agents, q, store, o.pool, o.cfg, logger)

	controller.Run(runCtx)

	answer, err := synthesize(store)
	if err != nil {
		logger.Warn("synthesis incomplete request_id=%s err=%v", request.ID, err)
		return synthesisFallback
	}

	logger.Info("run completed request_id=%s rounds=%d artifacts=%d",
		request.ID, controller.Round()+1, len(store.List()))

	return answer
}
