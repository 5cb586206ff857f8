// Package artifact provides the in-memory core.ArtifactStore used to
// accumulate agent outputs for a single request. Artifacts are keyed by
// (role, round) and written at most once; insertion order is preserved so
// final synthesis is deterministic.
package artifact
