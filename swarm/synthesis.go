package swarm

import (
	"fmt"
	"strings"

	"github.com/hupe1980/agentswarm/core"
)

// synthesisFallback is the best-effort answer when no usable artifact
// exists at termination. It is the only output path that carries no agent
// content at all.
const synthesisFallback = "The request could not be processed: no usable result " +
	"was produced before the run ended. Please try again or rephrase the request."

// synthesize assembles the final answer from the latest accepted artifacts:
// the newest usable summary, extended with the newest reflection when one
// exists. When no summary was ever produced it falls back to raw research
// findings, and with nothing usable at all it reports ErrSynthesisIncomplete.
func synthesize(store core.ArtifactStore) (string, error) {
	summary, ok := store.Latest(core.RoleSummarizer)
	if !ok {
		research, ok := store.Latest(core.RoleResearcher)
		if !ok {
			return "", core.ErrSynthesisIncomplete
		}

		return fmt.Sprintf("The request could not be fully processed before termination. "+
			"Partial research findings:\n\n%s", strings.TrimSpace(research.Content)), nil
	}

	reflection, ok := store.Latest(core.RoleReflector)
	if !ok {
		return strings.TrimSpace(summary.Content), nil
	}

	return fmt.Sprintf("%s\n\nReflection:\n%s",
		strings.TrimSpace(summary.Content), strings.TrimSpace(reflection.Content)), nil
}
