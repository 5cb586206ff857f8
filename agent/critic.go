package agent

import (
	"bufio"
	"context"
	"strings"

	"github.com/hupe1980/agentswarm/core"
	"github.com/hupe1980/agentswarm/model"
)

const criticInstructions = `You are a critique agent. Review the given draft summary for accuracy, ` +
	`completeness and clarity. Start your reply with exactly one line of the form ` +
	`"VERDICT: APPROVE", "VERDICT: REWORK RESEARCH" or "VERDICT: REWORK SUMMARY", then explain ` +
	`your reasoning.`

// verdictMarker is the line prefix the critic model is instructed to emit.
const verdictMarker = "VERDICT:"

// Critic reviews a draft summary and renders a verdict. The verdict is a
// content-level signal on the artifact, not an error: a rework verdict
// sends the round controller into the refinement loop.
type Critic struct {
	BaseAgent
}

// NewCritic constructs a Critic over the given model.
func NewCritic(m model.Model, optFns ...func(o *Options)) *Critic {
	return &Critic{BaseAgent: newBaseAgent(core.RoleCritic, m, criticInstructions, optFns...)}
}

// Invoke implements core.Agent. The produced artifact carries the parsed
// verdict alongside the full critique text.
func (c *Critic) Invoke(ctx context.Context, task core.Task) (core.Artifact, error) {
	art, err := c.generate(ctx, task)
	if err != nil {
		return core.Artifact{}, err
	}

	art.Verdict = ParseVerdict(art.Content)

	return art, nil
}

// ParseVerdict extracts the verdict from critique text. The first line
// starting with the VERDICT: marker wins; a missing or unrecognized marker
// means approval, so a model that ignores the format cannot wedge the
// pipeline into endless rework.
func ParseVerdict(critique string) core.Verdict {
	scanner := bufio.NewScanner(strings.NewReader(critique))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(strings.ToUpper(line), verdictMarker) {
			continue
		}

		value := strings.ToLower(strings.TrimSpace(line[len(verdictMarker):]))
		switch {
		case strings.Contains(value, "research"):
			return core.VerdictReworkResearch
		case strings.Contains(value, "summar"):
			return core.VerdictReworkSummary
		default:
			return core.VerdictApprove
		}
	}

	return core.VerdictApprove
}
