package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/hupe1980/agentswarm/core"
)

// StubResult scripts the outcome of one StubAgent invocation. Err wins over
// Content; Verdict only matters for critic stubs.
type StubResult struct {
	Content string
	Verdict core.Verdict
	Err     error
}

// Ok scripts a successful invocation producing the given content.
func Ok(content string) StubResult { return StubResult{Content: content} }

// Verdict scripts a critic invocation producing content plus a verdict.
func Verdict(content string, v core.Verdict) StubResult {
	return StubResult{Content: content, Verdict: v}
}

// Fail scripts a failing invocation.
func Fail(err error) StubResult { return StubResult{Err: err} }

// StubAgent replays a scripted sequence of results, repeating the last
// result once the script is exhausted. It records every task it saw, so
// tests can assert on rounds, payloads and attempt counts.
type StubAgent struct {
	mu      sync.Mutex
	role    core.Role
	results []StubResult
	calls   int
	tasks   []core.Task
	delay   time.Duration
}

// NewStubAgent constructs a scripted agent for the role.
func NewStubAgent(role core.Role, results ...StubResult) *StubAgent {
	return &StubAgent{role: role, results: results}
}

// WithDelay makes every invocation sleep first, ignoring the context, to
// simulate a slow external computation.
func (a *StubAgent) WithDelay(d time.Duration) *StubAgent {
	a.delay = d
	return a
}

// Name implements core.Agent.
func (a *StubAgent) Name() string { return "stub-" + a.role.Label() }

// Role implements core.Agent.
func (a *StubAgent) Role() core.Role { return a.role }

// Invoke implements core.Agent.
func (a *StubAgent) Invoke(_ context.Context, task core.Task) (core.Artifact, error) {
	if a.delay > 0 {
		time.Sleep(a.delay)
	}

	a.mu.Lock()
	idx := a.calls
	a.calls++
	a.tasks = append(a.tasks, task)
	a.mu.Unlock()

	if len(a.results) == 0 {
		return core.Artifact{}, core.NewAgentError(a.role, "no scripted result", false, nil)
	}
	if idx >= len(a.results) {
		idx = len(a.results) - 1
	}

	res := a.results[idx]
	if res.Err != nil {
		return core.Artifact{}, res.Err
	}

	art := core.NewArtifact(a.role, task.Round, res.Content)
	art.Attempt = task.Attempts
	art.Verdict = res.Verdict

	return art, nil
}

// Calls returns how many times the agent was invoked.
func (a *StubAgent) Calls() int {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.calls
}

// Tasks returns a snapshot of every task the agent received.
func (a *StubAgent) Tasks() []core.Task {
	a.mu.Lock()
	defer a.mu.Unlock()

	out := make([]core.Task, len(a.tasks))
	copy(out, a.tasks)

	return out
}
