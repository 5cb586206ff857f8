package core

import "time"

// ArtifactStatus classifies the quality of a produced artifact.
type ArtifactStatus int

const (
	// StatusOK marks a regular successful result.
	StatusOK ArtifactStatus = iota
	// StatusDegraded marks a lower-quality pass-through result produced to
	// preserve forward progress after a non-retryable failure.
	StatusDegraded
	// StatusFailed marks the placeholder written after the retry budget for
	// a role was exhausted. Failed artifacts are excluded from Latest.
	StatusFailed
)

// String implements fmt.Stringer.
func (s ArtifactStatus) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusDegraded:
		return "degraded"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Verdict is the content-level signal carried by a Critic artifact. It is
// not an error: a rework verdict steers the round controller into the
// refinement loop instead of advancing to the Reflector.
type Verdict int

const (
	// VerdictApprove accepts the draft; the pipeline advances.
	VerdictApprove Verdict = iota
	// VerdictReworkResearch requests a fresh research pass in the next round.
	VerdictReworkResearch
	// VerdictReworkSummary requests a rewritten summary in the next round.
	VerdictReworkSummary
)

// String implements fmt.Stringer.
func (v Verdict) String() string {
	switch v {
	case VerdictApprove:
		return "approve"
	case VerdictReworkResearch:
		return "rework-research"
	case VerdictReworkSummary:
		return "rework-summary"
	default:
		return "unknown"
	}
}

// TargetRole returns the role a rework verdict is aimed at, or ok=false for
// an approval.
func (v Verdict) TargetRole() (Role, bool) {
	switch v {
	case VerdictReworkResearch:
		return RoleResearcher, true
	case VerdictReworkSummary:
		return RoleSummarizer, true
	default:
		return 0, false
	}
}

// Artifact is the immutable output of one agent invocation for one round.
// Once written to a store it is never overwritten; a retried role produces
// a new artifact under the same (role, round) key only after the prior
// attempt failed to produce one at all.
type Artifact struct {
	ID         string
	Role       Role
	Round      int
	Content    string
	Status     ArtifactStatus
	Verdict    Verdict // meaningful only on Critic artifacts
	Attempt    int     // attempt count of the producing task
	ProducedAt time.Time
}

// NewArtifact constructs an ok-status artifact for the given role and round.
func NewArtifact(role Role, round int, content string) Artifact {
	return Artifact{
		ID:         NewID(),
		Role:       role,
		Round:      round,
		Content:    content,
		Status:     StatusOK,
		ProducedAt: time.Now().UTC(),
	}
}

// Usable reports whether the artifact may feed later rounds or synthesis.
func (a Artifact) Usable() bool {
	return a.Status == StatusOK || a.Status == StatusDegraded
}

// ArtifactStore accumulates artifacts for a single request, keyed by
// (role, round). Put rejects an occupied key; insertion order is preserved
// so synthesis is deterministic. Implementations must be safe for
// concurrent use even though the base pipeline is sequential per request.
type ArtifactStore interface {
	// Put stores the artifact or fails if (role, round) is already occupied.
	Put(a Artifact) error

	// Get returns the artifact for the exact (role, round) key.
	Get(role Role, round int) (Artifact, bool)

	// Latest returns the usable artifact with the highest round for the role.
	Latest(role Role) (Artifact, bool)

	// List returns all artifacts in insertion order.
	List() []Artifact
}
