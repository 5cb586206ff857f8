package swarm

import (
	"context"
	"time"

	"github.com/hupe1980/agentswarm/core"
)

// WorkerPool bounds concurrent agent invocations across all requests
// sharing it. Excess invocations queue on the semaphore instead of spawning
// unbounded concurrent work, which is the backpressure mechanism for
// concurrent Run calls.
type WorkerPool struct {
	sem chan struct{}
}

// NewWorkerPool creates a pool allowing up to size concurrent invocations.
func NewWorkerPool(size int) *WorkerPool {
	if size < 1 {
		size = 1
	}

	return &WorkerPool{sem: make(chan struct{}, size)}
}

// Capacity returns the maximum number of concurrent invocations.
func (p *WorkerPool) Capacity() int { return cap(p.sem) }

// Invoke executes one agent invocation through the pool, bounded by the
// per-call timeout. A timed-out call comes back as a retryable AgentError;
// expiry of the surrounding run deadline is non-retryable since the run is
// finalizing anyway.
func (p *WorkerPool) Invoke(ctx context.Context, ag core.Agent, task core.Task, timeout time.Duration) (core.Artifact, error) {
	select {
	case p.sem <- struct{}{}:
	case <-ctx.Done():
		return core.Artifact{}, core.NewAgentError(ag.Role(), "run ended before dispatch", false, ctx.Err())
	}
	defer func() { <-p.sem }()

	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type result struct {
		art core.Artifact
		err error
	}

	done := make(chan result, 1)
	go func() {
		art, err := ag.Invoke(callCtx, task)
		done <- result{art: art, err: err}
	}()

	select {
	case res := <-done:
		return res.art, res.err
	case <-callCtx.Done():
		if ctx.Err() != nil {
			return core.Artifact{}, core.NewAgentError(ag.Role(), "run deadline expired", false, ctx.Err())
		}

		return core.Artifact{}, core.NewAgentError(ag.Role(), "call timed out", true, callCtx.Err())
	}
}
