// Package agent provides the four role adapters of the swarm pipeline
// (Researcher, Summarizer, Critic and Reflector), built on the model.Model
// abstraction. All four share the same invocation shape (task in, artifact
// out, typed error on failure) so the round controller dispatches and
// handles failures uniformly.
package agent
