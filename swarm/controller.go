package swarm

import (
	"context"
	"fmt"
	"time"

	"github.com/hupe1980/agentswarm/config"
	"github.com/hupe1980/agentswarm/core"
	"github.com/hupe1980/agentswarm/logging"
	"github.com/hupe1980/agentswarm/queue"
)

// State is the round controller's position in the pipeline.
type State int

const (
	// StateSeed is the initial state before the first task is enqueued.
	StateSeed State = iota
	// StateResearchPending waits for the round's researcher artifact.
	StateResearchPending
	// StateSummarizePending waits for the round's summarizer artifact.
	StateSummarizePending
	// StateCritiquePending waits for the round's critic artifact.
	StateCritiquePending
	// StateReflectPending waits for the reflector artifact.
	StateReflectPending
	// StateRoundComplete marks a finished pass through the pipeline.
	StateRoundComplete
	// StateTerminated is terminal; the orchestrator synthesizes from here.
	StateTerminated
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case StateSeed:
		return "seed"
	case StateResearchPending:
		return "research-pending"
	case StateSummarizePending:
		return "summarize-pending"
	case StateCritiquePending:
		return "critique-pending"
	case StateReflectPending:
		return "reflect-pending"
	case StateRoundComplete:
		return "round-complete"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// RoundState tracks which roles have produced an artifact for the current
// round. One instance per request, reset when the round number advances.
type RoundState struct {
	Round     int
	Completed map[core.Role]bool
}

func newRoundState(round int) *RoundState {
	return &RoundState{Round: round, Completed: make(map[core.Role]bool, 4)}
}

// Complete reports whether the researcher, summarizer and critic artifacts
// all exist for this round, the condition for invoking the reflector or
// terminating the loop.
func (rs *RoundState) Complete() bool {
	return rs.Completed[core.RoleResearcher] && rs.Completed[core.RoleSummarizer] && rs.Completed[core.RoleCritic]
}

// RoundController drives the refinement loop for a single request: it
// drains the task queue, writes every completed result to the artifact
// store, decides whether another round is warranted and enforces the round,
// retry and call budgets. Termination is guaranteed: every transition
// either resolves a pending role or advances the round toward the ceiling,
// and the retry and call budgets are finite.
type RoundController struct {
	request core.Request
	agents  map[core.Role]core.Agent
	queue   *queue.Queue
	store   core.ArtifactStore
	pool    *WorkerPool
	cfg     config.Config
	limiter *core.CallLimiter
	logger  logging.Logger

	state State
	round *RoundState
}

func newRoundController(
	request core.Request,
	agents map[core.Role]core.Agent,
	q *queue.Queue,
	store core.ArtifactStore,
	pool *WorkerPool,
	cfg config.Config,
	logger logging.Logger,
) *RoundController {
	return &RoundController{
		request: request,
		agents:  agents,
		queue:   q,
		store:   store,
		pool:    pool,
		cfg:     cfg,
		limiter: core.NewCallLimiter(cfg.MaxAgentCalls),
		logger:  logger,
		state:   StateSeed,
		round:   newRoundState(0),
	}
}

// State returns the controller's current state.
func (rc *RoundController) State() State { return rc.state }

// Round returns the current round number.
func (rc *RoundController) Round() int { return rc.round.Round }

// Run drives the state machine to termination. It never returns an error:
// every failure mode inside the loop resolves to a degraded artifact or an
// early, finalizable termination.
func (rc *RoundController) Run(ctx context.Context) {
	rc.enqueue(core.NewTask(core.RoleResearcher, 0, rc.request.Input))
	rc.setState(StateResearchPending)

	for rc.state != StateTerminated {
		if ctx.Err() != nil {
			rc.terminate("run deadline expired")
			return
		}

		task, ok := rc.queue.Dequeue()
		if !ok {
			rc.terminate("task queue drained")
			return
		}

		if err := rc.limiter.Increment(); err != nil {
			rc.logger.Warn("call budget exhausted request_id=%s calls=%d", rc.request.ID, rc.limiter.Count())
			rc.terminate("call budget exhausted")
			return
		}

		art, err := rc.dispatch(ctx, task)
		if err != nil {
			rc.handleFailure(task, err)
			continue
		}

		rc.record(art)
	}
}

// dispatch resolves the agent for the task's role and runs it through the
// shared pool under the per-call timeout.
func (rc *RoundController) dispatch(ctx context.Context, task core.Task) (core.Artifact, error) {
	ag, ok := rc.agents[task.Role]
	if !ok {
		return core.Artifact{}, core.NewAgentError(task.Role, "no agent configured", false, nil)
	}

	start := time.Now()
	art, err := rc.pool.Invoke(ctx, ag, task, rc.cfg.CallTimeout)
	if err != nil {
		rc.logger.Warn("agent call failed request_id=%s role=%s round=%d attempt=%d duration=%s err=%v",
			rc.request.ID, task.Role, task.Round, task.Attempts, time.Since(start), err)
		return core.Artifact{}, err
	}

	rc.logger.Debug("agent call completed request_id=%s role=%s round=%d attempt=%d duration=%s",
		rc.request.ID, task.Role, task.Round, task.Attempts, time.Since(start))

	return art, nil
}

// handleFailure applies the retry/degrade policy: retryable failures
// re-enqueue the same task with an incremented attempt count up to the
// retry budget; everything else writes a degraded (or, after exhausted
// retries, failed) pass-through artifact so the pipeline keeps moving.
func (rc *RoundController) handleFailure(task core.Task, err error) {
	if core.IsRetryable(err) && task.Attempts < rc.cfg.MaxRetries {
		task.Attempts++
		rc.queue.Requeue(task)
		rc.logger.Info("retrying agent request_id=%s role=%s round=%d attempt=%d",
			rc.request.ID, task.Role, task.Round, task.Attempts)
		return
	}

	status := core.StatusDegraded
	if core.IsRetryable(err) {
		// retry budget exhausted
		status = core.StatusFailed
	}

	rc.record(rc.passThroughArtifact(task, status, err))
}

// passThroughArtifact builds the forward-progress placeholder for a role
// that produced nothing: the prior round's artifact content when one
// exists, an explicit placeholder otherwise.
func (rc *RoundController) passThroughArtifact(task core.Task, status core.ArtifactStatus, cause error) core.Artifact {
	content := fmt.Sprintf("[%s unavailable: %v]", task.Role, cause)
	if prior, ok := rc.store.Latest(task.Role); ok {
		content = prior.Content
	}

	art := core.NewArtifact(task.Role, task.Round, content)
	art.Status = status
	art.Attempt = task.Attempts

	return art
}

// record writes the artifact and advances the state machine. A duplicate
// (role, round) write would violate the store's put-once invariant; the
// state machine never produces one, so a rejection is logged and the run
// finalizes rather than guessing.
func (rc *RoundController) record(art core.Artifact) {
	if err := rc.store.Put(art); err != nil {
		rc.logger.Error("artifact write rejected request_id=%s role=%s round=%d err=%v",
			rc.request.ID, art.Role, art.Round, err)
		rc.terminate("artifact store rejected write")
		return
	}

	if art.Round == rc.round.Round {
		rc.round.Completed[art.Role] = true
	}

	rc.advance(art)
}

// advance applies the role transition table to the completed artifact.
func (rc *RoundController) advance(art core.Artifact) {
	switch art.Role {
	case core.RoleResearcher:
		rc.setState(StateSummarizePending)
		rc.enqueue(core.NewTask(core.RoleSummarizer, art.Round, art.Content))

	case core.RoleSummarizer:
		rc.setState(StateCritiquePending)
		rc.enqueue(core.NewTask(core.RoleCritic, art.Round, art.Content))

	case core.RoleCritic:
		rc.advanceFromCritic(art)

	case core.RoleReflector:
		rc.setState(StateRoundComplete)
		rc.terminate("reflection complete")
	}
}

// advanceFromCritic decides between the refinement loop, the reflector and
// termination. Only an ok-status critic verdict can trigger rework; a
// degraded critic proceeds as a pass-through approval.
func (rc *RoundController) advanceFromCritic(art core.Artifact) {
	target, rework := art.Verdict.TargetRole()
	if rework && art.Status == core.StatusOK {
		if rc.round.Round+1 >= rc.cfg.MaxRounds {
			rc.logger.Info("round budget reached request_id=%s round=%d", rc.request.ID, rc.round.Round)
			rc.terminate("round budget reached")
			return
		}

		rc.round = newRoundState(rc.round.Round + 1)
		rc.enqueue(core.NewTask(target, rc.round.Round, rc.reworkPayload(target, art)))

		if target == core.RoleResearcher {
			rc.setState(StateResearchPending)
		} else {
			rc.setState(StateSummarizePending)
		}

		return
	}

	if _, ok := rc.agents[core.RoleReflector]; ok {
		rc.setState(StateReflectPending)
		rc.enqueue(core.NewTask(core.RoleReflector, art.Round, rc.reflectPayload(art)))
		return
	}

	rc.setState(StateRoundComplete)
	rc.terminate("critique approved, no reflector configured")
}

// reworkPayload assembles the input for a refinement-round task: the
// material the target role originally worked from, plus the critique it
// must address.
func (rc *RoundController) reworkPayload(target core.Role, critique core.Artifact) string {
	source := rc.request.Input
	if target == core.RoleSummarizer {
		if research, ok := rc.store.Latest(core.RoleResearcher); ok {
			source = research.Content
		}
	}

	return fmt.Sprintf("%s\n\nCritique of the previous round:\n%s", source, critique.Content)
}

// reflectPayload assembles the reflector input: the critique plus the draft
// it reviewed.
func (rc *RoundController) reflectPayload(critique core.Artifact) string {
	payload := critique.Content
	if summary, ok := rc.store.Latest(core.RoleSummarizer); ok {
		payload = fmt.Sprintf("%s\n\nDraft summary:\n%s", critique.Content, summary.Content)
	}

	return payload
}

// enqueue admits a task, logging a suppressed duplicate instead of failing
// the run; the drained queue then terminates the loop normally.
func (rc *RoundController) enqueue(task core.Task) {
	if err := rc.queue.Enqueue(task); err != nil {
		rc.logger.Warn("task suppressed request_id=%s role=%s round=%d err=%v",
			rc.request.ID, task.Role, task.Round, err)
	}
}

func (rc *RoundController) setState(s State) {
	rc.state = s
	rc.logger.Debug("round transition request_id=%s round=%d state=%s", rc.request.ID, rc.round.Round, s)
}

func (rc *RoundController) terminate(reason string) {
	rc.state = StateTerminated
	rc.logger.Info("run terminated request_id=%s round=%d reason=%s calls=%d",
		rc.request.ID, rc.round.Round, reason, rc.limiter.Count())
}
