package core

import "fmt"

// Role identifies the function an agent performs within the swarm pipeline.
//
// The set is closed: the round controller switches exhaustively over these
// four variants instead of matching on free-form role strings, so adding a
// role is a compile-visible change.
type Role int

const (
	// RoleResearcher gathers raw material for the request.
	RoleResearcher Role = iota
	// RoleSummarizer condenses research output into a draft answer.
	RoleSummarizer
	// RoleCritic reviews a draft and may request rework.
	RoleCritic
	// RoleReflector produces a closing reflection over the critique and
	// prior artifacts.
	RoleReflector
)

// roleCount is the number of defined roles. Kept adjacent to the const
// block so the two cannot drift apart silently.
const roleCount = 4

// Roles returns all defined roles in pipeline order.
func Roles() []Role {
	return []Role{RoleResearcher, RoleSummarizer, RoleCritic, RoleReflector}
}

// Label returns the lowercase identifier used in logs and payload markers.
func (r Role) Label() string {
	switch r {
	case RoleResearcher:
		return "researcher"
	case RoleSummarizer:
		return "summarizer"
	case RoleCritic:
		return "critic"
	case RoleReflector:
		return "reflector"
	default:
		return "unknown"
	}
}

// String implements fmt.Stringer.
func (r Role) String() string { return r.Label() }

// Valid reports whether r is one of the defined role variants.
func (r Role) Valid() bool { return r >= RoleResearcher && r < roleCount }

// Next returns the role that consumes this role's artifact in the base
// pipeline, or ok=false when the role is terminal (Reflector).
//
// This is the explicit transition table of the pipeline: the refinement
// branch (Critic requesting rework) is decided by the round controller from
// the Critic artifact's verdict, not encoded here.
func (r Role) Next() (Role, bool) {
	switch r {
	case RoleResearcher:
		return RoleSummarizer, true
	case RoleSummarizer:
		return RoleCritic, true
	case RoleCritic:
		return RoleReflector, true
	default:
		return 0, false
	}
}

// Priority returns the dispatch priority of the role within a round.
// Lower values dispatch first; the ordering is total, so ties between
// pending tasks are broken by enqueue time alone.
func (r Role) Priority() int { return int(r) }

// ParseRole converts a label back into a Role.
func ParseRole(s string) (Role, error) {
	for _, r := range Roles() {
		if r.Label() == s {
			return r, nil
		}
	}

	return 0, fmt.Errorf("unknown role %q", s)
}
