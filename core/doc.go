// Package core defines the shared contracts and value types of the swarm:
// the closed Role enumeration with its transition table, the Task and
// Artifact data model, the Agent invocation interface, the typed error
// taxonomy and the per-run call limiter. Concrete implementations live in
// the sibling packages (agent, artifact, queue, swarm); core itself has no
// dependencies beyond the standard library and the id generator.
package core
