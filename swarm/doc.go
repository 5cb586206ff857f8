// Package swarm contains the orchestration core: the Orchestrator that
// turns one user request into a finished research answer, the
// RoundController state machine driving the research → summarize →
// critique → reflect loop, and the bounded WorkerPool shared by concurrent
// runs.
//
// Every run owns fresh per-request state (task queue, artifact store,
// round state); the worker pool is the only resource shared across runs.
// Agent failures never cross the Run boundary: the controller retries or
// degrades, and the orchestrator always returns an answer, best-effort if
// necessary.
package swarm
